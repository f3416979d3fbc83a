// internal/dialogue/sentiment.go
package dialogue

import "strings"

// Sentiment labels. Unanswered is reported only for turns refused by the
// domain scope check.
const (
	SentimentFrustrated = "frustrated"
	SentimentSatisfied  = "satisfied"
	SentimentNeutral    = "neutral"
	SentimentUnanswered = "unanswered"
)

var (
	frustratedMarkers = []string{"not working", "frustrated", "annoyed", "unhappy", "bad", "terrible"}
	satisfiedMarkers  = []string{"thank you", "resolved", "great", "happy", "good", "excellent"}
)

// AnalyzeSentiment labels an utterance by case-insensitive substring
// containment. Frustration markers take precedence over satisfaction
// markers; anything else is neutral.
func AnalyzeSentiment(text string) string {
	textLower := strings.ToLower(text)
	if containsAny(textLower, frustratedMarkers) {
		return SentimentFrustrated
	}
	if containsAny(textLower, satisfiedMarkers) {
		return SentimentSatisfied
	}
	return SentimentNeutral
}
