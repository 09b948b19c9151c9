package model

import "encoding/json"

// Sentiment is the closed set of analysis outcomes.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentPending  Sentiment = "pending"
	SentimentUnknown  Sentiment = "unknown"
)

// ParseSentiment maps anything outside the known set to SentimentUnknown.
// Labels match exactly; "Positive" is not "positive".
func ParseSentiment(s string) Sentiment {
	switch v := Sentiment(s); v {
	case SentimentPositive, SentimentNegative, SentimentNeutral, SentimentPending, SentimentUnknown:
		return v
	}
	return SentimentUnknown
}

// UnmarshalJSON accepts null and unrecognised labels as unknown.
func (s *Sentiment) UnmarshalJSON(b []byte) error {
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		*s = SentimentUnknown
		return nil
	}
	*s = ParseSentiment(*raw)
	return nil
}
