package handlers

import (
	"encoding/json"
	"net/http"

	"server/internal/domain"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactCreate stores a public contact-form submission.
func (a *App) ContactCreate(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	message, err := domain.NewContactMessage(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		a.fail(w, err)
		return
	}
	if err := a.Contact.Create(r.Context(), &message); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"id":      message.ID,
		"status":  message.Status,
		"message": "Thanks for reaching out. We will get back to you soon.",
	})
}
