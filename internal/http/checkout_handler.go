package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/LahiruMudith/mack-trading-fn/internal/domain"
	"github.com/LahiruMudith/mack-trading-fn/internal/wizard"
)

type CheckoutHandler struct {
	sessions *wizard.Store
	build    wizard.Factory
	timeout  time.Duration
}

func NewCheckoutHandler(sessions *wizard.Store, build wizard.Factory, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		sessions: sessions,
		build:    build,
		timeout:  timeout,
	}
}

type CheckoutStateDTO struct {
	SessionID         string                   `json:"session_id"`
	Step              int                      `json:"step"`
	StepLabel         string                   `json:"step_label"`
	SelectedAddressID string                   `json:"selected_address_id"`
	Draft             domain.CheckoutDraft     `json:"draft"`
	Addresses         []domain.ShippingAddress `json:"addresses"`
	TotalAmount       float64                  `json:"total_amount"`
	PendingOrderID    string                   `json:"pending_order_id,omitempty"`
	PaymentInFlight   bool                     `json:"payment_in_flight"`
	Error             string                   `json:"error,omitempty"`
}

type AddressUpdateDTO struct {
	Action    string `json:"action"` // "select", "new" or "edit"
	AddressID string `json:"address_id,omitempty"`
	Field     string `json:"field,omitempty"`
	Value     string `json:"value,omitempty"`
}

type PayResponseDTO struct {
	SessionID   string               `json:"session_id"`
	OrderID     string               `json:"order_id"`
	PayhereData domain.PayHereParams `json:"payhere_data"`
}

func stateDTO(sessionID string, state wizard.State) CheckoutStateDTO {
	return CheckoutStateDTO{
		SessionID:         sessionID,
		Step:              int(state.Step),
		StepLabel:         state.Step.String(),
		SelectedAddressID: state.SelectedAddressID,
		Draft:             state.Draft,
		Addresses:         state.Addresses,
		TotalAmount:       state.TotalAmount,
		PendingOrderID:    state.PendingOrderID,
		PaymentInFlight:   state.PayInFlight,
		Error:             state.LastError,
	}
}

// POST /api/v1/checkout
func (h *CheckoutHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	wiz := h.sessions.Create(h.build)
	wiz.Initialize()

	respondJSON(w, http.StatusCreated, stateDTO(wiz.ID(), wiz.Snapshot()))
}

// GET /api/v1/checkout/{session_id}
func (h *CheckoutHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.session(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, stateDTO(wiz.ID(), wiz.Snapshot()))
}

// PUT /api/v1/checkout/{session_id}/address
func (h *CheckoutHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.session(w, r)
	if !ok {
		return
	}

	var req AddressUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	var err error
	switch req.Action {
	case "select":
		err = wiz.SelectAddress(req.AddressID)
	case "new":
		err = wiz.SelectNewAddress()
	case "edit":
		err = wiz.EditField(req.Field, req.Value)
	default:
		respondError(w, http.StatusBadRequest, "invalid_action", "action must be select, new or edit")
		return
	}
	if err != nil {
		handleWizardError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stateDTO(wiz.ID(), wiz.Snapshot()))
}

// POST /api/v1/checkout/{session_id}/advance
func (h *CheckoutHandler) Advance(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := wiz.Advance(); err != nil {
		handleWizardError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stateDTO(wiz.ID(), wiz.Snapshot()))
}

// POST /api/v1/checkout/{session_id}/back
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := wiz.Back(); err != nil {
		handleWizardError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stateDTO(wiz.ID(), wiz.Snapshot()))
}

// POST /api/v1/checkout/{session_id}/pay
func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.session(w, r)
	if !ok {
		return
	}

	pending, err := wiz.Pay()
	if err != nil {
		handleWizardError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, PayResponseDTO{
		SessionID:   wiz.ID(),
		OrderID:     pending.OrderID,
		PayhereData: pending.Params,
	})
}

// DELETE /api/v1/checkout/{session_id}
func (h *CheckoutHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	if _, err := h.sessions.Get(sessionID); err != nil {
		handleWizardError(w, err)
		return
	}
	h.sessions.Remove(sessionID)
	respondJSON(w, http.StatusOK, map[string]string{"status": "closed"})
}

func (h *CheckoutHandler) session(w http.ResponseWriter, r *http.Request) (*wizard.Wizard, bool) {
	sessionID := chi.URLParam(r, "session_id")
	wiz, err := h.sessions.Get(sessionID)
	if err != nil {
		handleWizardError(w, err)
		return nil, false
	}
	return wiz, true
}
