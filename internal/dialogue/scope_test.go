package dialogue

import (
	"testing"

	"supportdesk-service/internal/domain/chat"
)

func TestIntentAllowed(t *testing.T) {
	tests := []struct {
		name   string
		intent string
		domain string
		want   bool
	}{
		{"greeting on general", IntentGreeting, chat.DomainGeneral, true},
		{"greeting on technical", IntentGreeting, chat.DomainTechnical, true},
		{"general inquiry on general", IntentGeneralInquiry, chat.DomainGeneral, true},
		{"technical on technical", IntentTechnicalSupport, chat.DomainTechnical, true},
		{"installation on technical", IntentInstallation, chat.DomainTechnical, true},
		{"billing on finance", IntentBillingInquiry, chat.DomainFinance, true},
		{"finance on finance", IntentFinanceQuery, chat.DomainFinance, true},
		{"travel on travel", IntentTravelHospitality, chat.DomainTravel, true},
		{"order status on travel", IntentOrderStatus, chat.DomainTravel, true},

		{"technical on general", IntentTechnicalSupport, chat.DomainGeneral, false},
		{"billing on travel", IntentBillingInquiry, chat.DomainTravel, false},
		{"order status on technical", IntentOrderStatus, chat.DomainTechnical, false},
		{"refund on general", IntentRefundRequest, chat.DomainGeneral, false},
		{"refund on finance", IntentRefundRequest, chat.DomainFinance, false},

		// Overrides.
		{"order status on general", IntentOrderStatus, chat.DomainGeneral, true},
		{"general inquiry on technical", IntentGeneralInquiry, chat.DomainTechnical, true},
		{"general inquiry on travel", IntentGeneralInquiry, chat.DomainTravel, true},

		// Unknown domains have no table; only the general-inquiry
		// override lets anything through.
		{"general inquiry on unknown domain", IntentGeneralInquiry, "gaming", true},
		{"greeting on unknown domain", IntentGreeting, "gaming", false},
		{"order status on unknown domain", IntentOrderStatus, "gaming", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntentAllowed(tt.intent, tt.domain); got != tt.want {
				t.Errorf("IntentAllowed(%q, %q) = %v, want %v", tt.intent, tt.domain, got, tt.want)
			}
		})
	}
}
