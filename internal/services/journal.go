package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindscape-app/backend/internal/models"
	"github.com/mindscape-app/backend/internal/store"
)

// insertTimeout bounds the store write during entry creation. It starts after
// classification finishes, so a slow classifier cannot eat the write's budget.
const insertTimeout = 5 * time.Second

var (
	// ErrEmptyContent indicates the submitted entry body was empty or whitespace.
	ErrEmptyContent = errors.New("entry content is required")
	// ErrEntryNotFound covers both a missing entry and an entry owned by
	// someone else; the two cases are deliberately indistinguishable.
	ErrEntryNotFound = errors.New("entry not found")
)

// classifier is the capability the journal service needs from the sentiment
// client: a best-effort classification that may simply be absent.
type classifier interface {
	Classify(ctx context.Context, text string) *Sentiment
}

// JournalService owns the entry lifecycle: creation with sentiment enrichment,
// owner-scoped listing, and owner-checked deletion.
type JournalService struct {
	entries   store.EntryStore
	sentiment classifier
}

func NewJournalService(entries store.EntryStore, sentiment classifier) *JournalService {
	return &JournalService{entries: entries, sentiment: sentiment}
}

// Create persists a new entry for userID. Sentiment classification is
// best-effort: when it yields nothing the entry is stored without the
// sentiment fields and creation still succeeds.
func (s *JournalService) Create(ctx context.Context, userID primitive.ObjectID, content, mood string) (*models.Entry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	entry := &models.Entry{
		UserID:    userID,
		Content:   content,
		Mood:      mood,
		CreatedAt: time.Now(),
	}

	// Classification runs on a detached context so the classifier's own
	// timeout governs it. A caller deadline must never make enrichment
	// starve the write that follows.
	if result := s.sentiment.Classify(context.WithoutCancel(ctx), content); result != nil {
		entry.SentimentScore = &result.Score
		entry.SentimentLabel = &result.Label
		entry.SentimentConfidence = &result.Confidence
	}

	insertCtx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()
	if err := s.entries.Insert(insertCtx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the user's entries, most recent first. A user with no entries
// gets an empty slice, not an error.
func (s *JournalService) List(ctx context.Context, userID primitive.ObjectID) ([]models.Entry, error) {
	return s.entries.FindByUser(ctx, userID)
}

// Delete removes the entry when it exists and belongs to userID. Deleting a
// missing entry, an already-deleted entry, or another user's entry all yield
// ErrEntryNotFound.
func (s *JournalService) Delete(ctx context.Context, userID, entryID primitive.ObjectID) error {
	err := s.entries.DeleteOwned(ctx, userID, entryID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrEntryNotFound
	}
	return err
}
