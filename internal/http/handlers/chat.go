package handlers

import (
	"encoding/json"
	"net/http"

	"server/internal/providers/chat"
)

type chatRequest struct {
	Messages []chat.Message `json:"messages"`
}

// ChatReply forwards the widget history to the assistant model.
func (a *App) ChatReply(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if len(req.Messages) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "messages are required")
		return
	}

	reply, err := a.Chat.Reply(r.Context(), req.Messages)
	if err != nil {
		a.Logger.Error().Err(err).Msg("chat reply failed")
		a.error(w, http.StatusInternalServerError, "chat_failed", "The assistant is unavailable right now. Please try again later.")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"reply": reply})
}
