package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type chatStub struct {
	reply string
	err   error
}

func (s chatStub) SendChatMessage(_ context.Context, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestSendMessage_ValidatesBody(t *testing.T) {
	handler := NewChatHandler(chatStub{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/api/v1/chat/message", bytes.NewBufferString(`{"message":""}`))
	handler.SendMessage(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestSendMessage_ReturnsReply(t *testing.T) {
	handler := NewChatHandler(chatStub{reply: "We ship islandwide."}, 5*time.Second)

	recorder := httptest.NewRecorder()
	body := `{"message":"do you deliver to Galle?"}`
	request := httptest.NewRequest("POST", "/api/v1/chat/message", bytes.NewBufferString(body))
	handler.SendMessage(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	var response ChatResponseDTO
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Reply != "We ship islandwide." {
		t.Errorf("unexpected reply %q", response.Reply)
	}
}

func TestSendMessage_ChatOffline(t *testing.T) {
	handler := NewChatHandler(chatStub{err: errors.New("assistant offline")}, 5*time.Second)

	recorder := httptest.NewRecorder()
	body := `{"message":"hello"}`
	request := httptest.NewRequest("POST", "/api/v1/chat/message", bytes.NewBufferString(body))
	handler.SendMessage(recorder, request)

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("expected %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
}
