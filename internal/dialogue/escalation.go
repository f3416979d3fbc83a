// internal/dialogue/escalation.go
package dialogue

// escalationIntents hand a case to a human once its conversation runs
// past two turns.
var escalationIntents = []string{
	IntentTechnicalSupport,
	IntentBillingInquiry,
	IntentFinanceQuery,
	IntentTravelHospitality,
	IntentOrderStatus,
}

// ShouldEscalate applies the escalation rules for one turn. The decision
// is sticky: an already-escalated case stays escalated regardless of the
// rest of the inputs.
func ShouldEscalate(currentTurn int, intent, urgency, sentiment string, alreadyEscalated bool) bool {
	if alreadyEscalated {
		return true
	}
	if urgency == UrgencyHigh && sentiment == SentimentFrustrated {
		return true
	}
	if currentTurn > 3 && sentiment == SentimentFrustrated {
		return true
	}
	for _, it := range escalationIntents {
		if intent == it && currentTurn > 2 {
			return true
		}
	}
	return false
}
