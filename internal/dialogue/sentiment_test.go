package dialogue

import "testing"

func TestAnalyzeSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"frustrated marker", "this is not working at all", SentimentFrustrated},
		{"uppercase marker", "TERRIBLE experience", SentimentFrustrated},
		{"satisfied marker", "thank you, that fixed it", SentimentSatisfied},
		{"neutral", "I have a question about my plan", SentimentNeutral},
		{"empty text", "", SentimentNeutral},
		// Frustration wins when both marker sets match.
		{"frustration beats gratitude", "not working, but thank you anyway", SentimentFrustrated},
		// "unhappy" contains "happy"; the frustrated set is checked first.
		{"unhappy is not happy", "I am unhappy with this", SentimentFrustrated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeSentiment(tt.text); got != tt.want {
				t.Errorf("AnalyzeSentiment(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
