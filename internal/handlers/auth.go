package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mindscape-app/backend/internal/models"
	"github.com/mindscape-app/backend/internal/services"
	"github.com/mindscape-app/backend/internal/store"
	"github.com/mindscape-app/backend/pkg/utils"
)

const storeTimeout = 5 * time.Second

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler serves registration and login.
type AuthHandler struct {
	users  store.UserStore
	tokens *services.TokenService
	log    *logrus.Logger
}

func NewAuthHandler(users store.UserStore, tokens *services.TokenService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, log: log}
}

// Register creates a new user with a hashed password.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not register user")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	user := &models.User{Email: req.Email, Password: hash}
	if err := h.users.Create(ctx, user); err != nil {
		// Duplicate emails get the same generic failure as any other store
		// error; registration does not reveal which addresses exist.
		h.log.WithError(err).Warn("user registration failed")
		writeError(w, http.StatusInternalServerError, "Could not register user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered"})
}

// Login verifies credentials and returns a signed bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	user, err := h.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
