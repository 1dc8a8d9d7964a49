package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry represents a single journal entry owned by one user.
// The sentiment fields are either all set (one classification call succeeded
// at creation time) or all nil (classification skipped or failed).
type Entry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`

	Content string `bson:"content" json:"content"`
	Mood    string `bson:"mood,omitempty" json:"mood,omitempty"`

	SentimentScore      *float64 `bson:"sentiment_score,omitempty" json:"sentimentScore,omitempty"`
	SentimentLabel      *string  `bson:"sentiment_label,omitempty" json:"sentimentLabel,omitempty"`
	SentimentConfidence *float64 `bson:"sentiment_confidence,omitempty" json:"sentimentConfidence,omitempty"`
}
