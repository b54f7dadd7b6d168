package http

import (
	"log"
	"net/http"

	"github.com/LahiruMudith/mack-trading-fn/internal/wizard"
)

// PaymentHandler receives the gateway's redirect and server-to-server
// callbacks and forwards the outcome to the owning checkout session.
// Deliveries for unknown sessions or already-resolved attempts are
// acknowledged and dropped; the gateway retries notify callbacks and must
// not see errors for duplicates.
type PaymentHandler struct {
	sessions *wizard.Store
}

func NewPaymentHandler(sessions *wizard.Store) *PaymentHandler {
	return &PaymentHandler{sessions: sessions}
}

// GET /api/v1/payment/return?session_id=...&order_id=...
func (h *PaymentHandler) Return(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	orderID := r.URL.Query().Get("order_id")
	if sessionID == "" || orderID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "session_id and order_id are required")
		return
	}

	wiz, err := h.sessions.Get(sessionID)
	if err != nil {
		handleWizardError(w, err)
		return
	}

	accepted := wiz.CompletePayment(orderID)
	if !accepted {
		log.Printf("dropped completed callback for session %s order %s", sessionID, orderID)
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"accepted": accepted})
}

// GET /api/v1/payment/cancel?session_id=...
func (h *PaymentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "session_id is required")
		return
	}

	wiz, err := h.sessions.Get(sessionID)
	if err != nil {
		handleWizardError(w, err)
		return
	}

	accepted := wiz.DismissPayment()
	respondJSON(w, http.StatusOK, map[string]interface{}{"accepted": accepted})
}

// POST /api/v1/payment/notify
//
// The gateway posts form-encoded fields. status_code 2 is a captured
// payment; anything else is reported as the widget's error outcome.
func (h *PaymentHandler) Notify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid form body")
		return
	}

	sessionID := r.PostFormValue("custom_1")
	orderID := r.PostFormValue("order_id")
	statusCode := r.PostFormValue("status_code")
	if sessionID == "" || orderID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "custom_1 (session) and order_id are required")
		return
	}

	wiz, err := h.sessions.Get(sessionID)
	if err != nil {
		handleWizardError(w, err)
		return
	}

	var accepted bool
	if statusCode == "2" {
		accepted = wiz.CompletePayment(orderID)
	} else {
		accepted = wiz.FailPayment("gateway reported status " + statusCode)
	}
	if !accepted {
		log.Printf("dropped notify callback for session %s order %s status %s", sessionID, orderID, statusCode)
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"accepted": accepted})
}
