package dialogue

import "testing"

func TestDetermineIntentGreetings(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"plain hi", "Hi"},
		{"hello with trailing text", "hello, my order number is 12345"},
		{"stretched hey", "heyyy"},
		{"good morning", "Good morning!"},
		{"leading whitespace", "   hey there"},
		// Prefix match, not word-bounded.
		{"hi prefix inside a word", "history of my account"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, urgency, entities := DetermineIntentAndUrgency(tt.query)
			if intent != IntentGreeting {
				t.Errorf("intent = %q, want %q", intent, IntentGreeting)
			}
			if urgency != UrgencyLow {
				t.Errorf("urgency = %q, want %q", urgency, UrgencyLow)
			}
			if len(entities) != 0 {
				t.Errorf("entities = %v, want empty", entities)
			}
		})
	}
}

func TestDetermineIntentShopIDExtraction(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantShopID string
	}{
		{"explicit phrasing", "My order number is #A123", "a123"},
		{"order id phrasing", "order id is 555", "555"},
		{"labelled id", "shopid: XYZ789", "xyz789"},
		{"trailing bare token", "ABC123 order", "abc123"},
		// Patterns fire on embedded matches too: the trailing-token
		// pattern reads "track order" as id "track", and the ref label
		// inside "refund" yields "und".
		{"track order eats its own verb", "track order please", "track"},
		{"refund hits the ref label", "I need a refund", "und"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, _, entities := DetermineIntentAndUrgency(tt.query)
			if intent != IntentOrderStatus {
				t.Errorf("intent = %q, want %q", intent, IntentOrderStatus)
			}
			if got := entities["shopid"]; got != tt.wantShopID {
				t.Errorf("entities[shopid] = %q, want %q", got, tt.wantShopID)
			}
		})
	}
}

func TestDetermineIntentKeywords(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"technical", "the internet is down again", IntentTechnicalSupport},
		{"billing", "question about my bill", IntentBillingInquiry},
		{"installation", "help with installation", IntentInstallation},
		{"plan management", "I want to change plan", IntentPlanManagement},
		{"order keyword without id", "when is the delivery", IntentOrderStatus},
		{"finance", "advice on my mortgage", IntentFinanceQuery},
		{"travel", "book a flight to Mombasa", IntentTravelHospitality},
		{"fallback", "what are your opening hours", IntentGeneralInquiry},
		// Sets are tried in a fixed order, so a billing keyword beats
		// an order keyword in the same utterance.
		{"billing beats order", "payment for my delivery", IntentBillingInquiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, _, entities := DetermineIntentAndUrgency(tt.query)
			if intent != tt.want {
				t.Errorf("intent = %q, want %q", intent, tt.want)
			}
			if len(entities) != 0 {
				t.Errorf("entities = %v, want empty", entities)
			}
		})
	}
}
