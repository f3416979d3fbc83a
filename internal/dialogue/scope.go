// internal/dialogue/scope.go
package dialogue

import (
	"supportdesk-service/internal/domain/chat"
)

// domainIntents pins each chat domain to the intents it may serve.
var domainIntents = map[string][]string{
	chat.DomainGeneral:   {IntentGeneralInquiry, IntentGreeting},
	chat.DomainTechnical: {IntentTechnicalSupport, IntentInstallation, IntentGreeting},
	chat.DomainFinance:   {IntentFinanceQuery, IntentBillingInquiry, IntentGreeting},
	chat.DomainTravel:    {IntentTravelHospitality, IntentGreeting, IntentOrderStatus},
}

// IntentAllowed decides whether an intent may be served on the requested
// domain's desk. Two overrides widen the table: order status is also
// served from the general desk, and general inquiries pass on every
// specialised desk. An unknown domain has an empty table, so only the
// overrides can let anything through.
func IntentAllowed(intent, domain string) bool {
	for _, allowed := range domainIntents[domain] {
		if allowed == intent {
			return true
		}
	}
	if intent == IntentOrderStatus && domain == chat.DomainGeneral {
		return true
	}
	if intent == IntentGeneralInquiry && domain != chat.DomainGeneral {
		return true
	}
	return false
}
