package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/LahiruMudith/mack-trading-fn/internal/backend"
	"github.com/LahiruMudith/mack-trading-fn/internal/payhere"
	"github.com/LahiruMudith/mack-trading-fn/internal/wizard"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleWizardError maps wizard and backend failures to HTTP statuses.
func handleWizardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, wizard.ErrClosed):
		respondError(w, http.StatusGone, "session_closed", err.Error())
	case errors.Is(err, wizard.ErrNoAddressSelected):
		respondError(w, http.StatusUnprocessableEntity, "no_address_selected", err.Error())
	case errors.Is(err, wizard.ErrUnknownAddress), errors.Is(err, wizard.ErrUnknownField):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, wizard.ErrPaymentInFlight):
		respondError(w, http.StatusConflict, "payment_in_flight", err.Error())
	case errors.Is(err, wizard.IllegalTransitionError):
		respondError(w, http.StatusConflict, "illegal_transition", err.Error())
	case errors.Is(err, payhere.ErrWidgetUnavailable):
		respondError(w, http.StatusServiceUnavailable, "gateway_unavailable", err.Error())
	default:
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			respondError(w, http.StatusBadGateway, "backend_error", apiErr.Message)
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
