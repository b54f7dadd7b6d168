package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// ChatService forwards support-chat messages to the backend assistant.
type ChatService interface {
	SendChatMessage(ctx context.Context, message string) (string, error)
}

type ChatHandler struct {
	chat    ChatService
	timeout time.Duration
}

func NewChatHandler(chat ChatService, timeout time.Duration) *ChatHandler {
	return &ChatHandler{chat: chat, timeout: timeout}
}

type ChatRequestDTO struct {
	Message string `json:"message"`
}

type ChatResponseDTO struct {
	Reply string `json:"reply"`
}

// POST /api/v1/chat/message
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "empty_message", "message is required")
		return
	}

	reply, err := h.chat.SendChatMessage(ctx, req.Message)
	if err != nil {
		handleWizardError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ChatResponseDTO{Reply: reply})
}
