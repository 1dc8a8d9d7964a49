package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindscape-app/backend/internal/handlers"
	"github.com/mindscape-app/backend/internal/models"
	"github.com/mindscape-app/backend/internal/routes"
	"github.com/mindscape-app/backend/internal/services"
	"github.com/mindscape-app/backend/internal/store"
)

// In-memory stores mirroring the Mongo implementations' contracts.

type memUserStore struct {
	users []models.User
}

func (m *memUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.users = append(m.users, *user)
	return nil
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

type memEntryStore struct {
	entries []models.Entry
}

func (m *memEntryStore) Insert(ctx context.Context, entry *models.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memEntryStore) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Entry, error) {
	out := []models.Entry{}
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memEntryStore) DeleteOwned(_ context.Context, userID, entryID primitive.ObjectID) error {
	for i, e := range m.entries {
		if e.ID == entryID && e.UserID == userID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type stubClassifier struct {
	result *services.Sentiment
}

func (s *stubClassifier) Classify(_ context.Context, _ string) *services.Sentiment {
	return s.result
}

// newTestRouter wires the full route table over in-memory stores.
func newTestRouter(sentiment *services.Sentiment) chi.Router {
	return newTestRouterWithClassifier(&stubClassifier{result: sentiment})
}

// newTestRouterWithClassifier is the same wiring with a caller-supplied
// classifier, for tests that exercise the real sentiment client.
func newTestRouterWithClassifier(cls interface {
	Classify(ctx context.Context, text string) *services.Sentiment
}) chi.Router {
	log := logrus.New()
	log.SetOutput(io.Discard)

	users := &memUserStore{}
	entries := &memEntryStore{}
	tokens := services.NewTokenService("test-secret")
	journal := services.NewJournalService(entries, cls)

	r := chi.NewRouter()
	routes.SetupRoutes(r,
		handlers.NewAuthHandler(users, tokens, log),
		handlers.NewJournalHandler(journal, log),
		tokens,
	)
	return r
}

func jsonDecode(rec *httptest.ResponseRecorder, v interface{}) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}
