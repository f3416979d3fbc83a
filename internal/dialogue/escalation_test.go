package dialogue

import "testing"

func TestShouldEscalate(t *testing.T) {
	tests := []struct {
		name             string
		turn             int
		intent           string
		urgency          string
		sentiment        string
		alreadyEscalated bool
		want             bool
	}{
		{"sticky once escalated", 1, IntentGreeting, UrgencyLow, SentimentNeutral, true, true},
		{"high urgency with frustration", 1, IntentGeneralInquiry, UrgencyHigh, SentimentFrustrated, false, true},
		{"high urgency alone is not enough", 1, IntentGeneralInquiry, UrgencyHigh, SentimentNeutral, false, false},
		{"frustration after three turns", 4, IntentGeneralInquiry, UrgencyLow, SentimentFrustrated, false, true},
		{"frustration on turn three holds", 3, IntentGeneralInquiry, UrgencyLow, SentimentFrustrated, false, false},
		{"technical support on turn three", 3, IntentTechnicalSupport, UrgencyLow, SentimentNeutral, false, true},
		{"technical support on turn two holds", 2, IntentTechnicalSupport, UrgencyLow, SentimentNeutral, false, false},
		{"billing inquiry on turn five", 5, IntentBillingInquiry, UrgencyLow, SentimentNeutral, false, true},
		{"order status on turn three", 3, IntentOrderStatus, UrgencyLow, SentimentNeutral, false, true},
		{"travel query on turn three", 3, IntentTravelHospitality, UrgencyLow, SentimentNeutral, false, true},
		{"greeting never escalates on its own", 10, IntentGreeting, UrgencyLow, SentimentNeutral, false, false},
		{"calm general inquiry stays open", 6, IntentGeneralInquiry, UrgencyLow, SentimentSatisfied, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldEscalate(tt.turn, tt.intent, tt.urgency, tt.sentiment, tt.alreadyEscalated)
			if got != tt.want {
				t.Errorf("ShouldEscalate(%d, %q, %q, %q, %v) = %v, want %v",
					tt.turn, tt.intent, tt.urgency, tt.sentiment, tt.alreadyEscalated, got, tt.want)
			}
		})
	}
}
