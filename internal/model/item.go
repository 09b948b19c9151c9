package model

import (
	"unicode/utf8"
)

// PendingKeyPoints is shown for an item until its analysis resolves.
const PendingKeyPoints = "Pending…"

// Item is the domain model for an analyzed product review.
// Text never changes after creation; everything else is replaced wholesale on commit.
type Item struct {
	ID         ID        `json:"id" yaml:"id"`
	Text       string    `json:"text" yaml:"text"`
	Sentiment  Sentiment `json:"sentiment" yaml:"sentiment"`
	KeyPoints  string    `json:"key_points" yaml:"key_points"`
	Optimistic bool      `json:"optimistic,omitempty" yaml:"optimistic,omitempty"`
}

// Resolved reports whether the key points carry an analysis result.
func (it Item) Resolved() bool { return it.Sentiment != SentimentPending }

// Excerpt returns at most n runes of the text.
func (it Item) Excerpt(n int) string {
	if n <= 0 || utf8.RuneCountInString(it.Text) <= n {
		return it.Text
	}
	runes := []rune(it.Text)
	return string(runes[:n])
}
