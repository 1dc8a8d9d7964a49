package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindscape-app/backend/internal/middleware"
	"github.com/mindscape-app/backend/internal/services"
)

type CreateEntryRequest struct {
	Content string `json:"content"`
	Mood    string `json:"mood"`
}

// JournalHandler serves the authenticated entry lifecycle. All operations are
// scoped to the identity bound by the auth middleware; any user id in the
// request body is ignored.
type JournalHandler struct {
	journal *services.JournalService
	log     *logrus.Logger
}

func NewJournalHandler(journal *services.JournalService, log *logrus.Logger) *JournalHandler {
	return &JournalHandler{journal: journal, log: log}
}

// CreateEntry persists a new journal entry, annotated with sentiment when the
// classifier produced one.
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// No store timeout here: Create budgets classification and the write
	// separately, so wrapping the whole call would let a slow classifier
	// run down the clock on the insert.
	entry, err := h.journal.Create(r.Context(), userID, req.Content, req.Mood)
	if err != nil {
		if errors.Is(err, services.ErrEmptyContent) {
			writeError(w, http.StatusBadRequest, "Content is required")
			return
		}
		h.log.WithError(err).Error("entry creation failed")
		writeError(w, http.StatusInternalServerError, "Failed to create entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// ListEntries returns the caller's entries, most recent first.
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	entries, err := h.journal.List(ctx, userID)
	if err != nil {
		h.log.WithError(err).Error("entry listing failed")
		writeError(w, http.StatusInternalServerError, "Failed to load entries")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// DeleteEntry removes one of the caller's entries. A missing entry and an
// entry owned by someone else both answer 404.
func (h *JournalHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	entryID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Entry not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	if err := h.journal.Delete(ctx, userID, entryID); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			writeError(w, http.StatusNotFound, "Entry not found")
			return
		}
		h.log.WithError(err).Error("entry deletion failed")
		writeError(w, http.StatusInternalServerError, "Failed to delete entry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
