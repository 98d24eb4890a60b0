package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"server/internal/domain"
	"server/internal/middleware"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userProfileDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type authResponse struct {
	Token string         `json:"token"`
	User  userProfileDTO `json:"user"`
}

// AuthSignup registers a member and issues a bearer token.
func (a *App) AuthSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email is required")
		return
	}
	if len(req.Password) < 8 {
		a.error(w, http.StatusBadRequest, "bad_request", "password must be at least 8 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		a.fail(w, err)
		return
	}
	user := domain.User{
		Email:        req.Email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
	}
	if err := a.Users.Create(r.Context(), &user); err != nil {
		a.fail(w, err)
		return
	}
	a.issueToken(w, http.StatusCreated, &user)
}

// AuthLogin verifies credentials and issues a bearer token.
func (a *App) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	user, err := a.Users.GetByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
			return
		}
		a.fail(w, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
		return
	}
	a.issueToken(w, http.StatusOK, user)
}

// Me returns the authenticated member's profile.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "not authenticated")
		return
	}
	user, err := a.Users.GetByID(r.Context(), userID)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, profileDTO(user))
}

func (a *App) issueToken(w http.ResponseWriter, code int, user *domain.User) {
	token, err := middleware.SignToken(a.JWTSecret, user.ID, string(user.Role), a.TokenTTL)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, code, authResponse{Token: token, User: profileDTO(user)})
}

func profileDTO(user *domain.User) userProfileDTO {
	return userProfileDTO{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     string(user.Role),
	}
}
