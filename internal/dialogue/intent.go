// internal/dialogue/intent.go

// Package dialogue holds the pure decision logic of the support pipeline:
// intent and urgency detection, sentiment labelling, domain scoping,
// escalation rules and prompt composition. Every function here is total
// over string input; nothing in this package can fail.
package dialogue

import (
	"regexp"
	"strings"
)

// Intents produced by DetermineIntentAndUrgency.
const (
	IntentGreeting          = "greeting"
	IntentOrderStatus       = "order_status"
	IntentTechnicalSupport  = "technical_support"
	IntentBillingInquiry    = "billing_inquiry"
	IntentRefundRequest     = "refund_request"
	IntentInstallation      = "installation_support"
	IntentPlanManagement    = "plan_management"
	IntentFinanceQuery      = "finance_query"
	IntentTravelHospitality = "travel_hospitality_query"
	IntentGeneralInquiry    = "general_inquiry"
)

// Urgency levels. No classification path currently raises urgency above
// low; the high level stays because the escalation rules branch on it.
const (
	UrgencyLow  = "low"
	UrgencyHigh = "high"
)

// Greeting detection is a prefix match, so "hi there" and "hiii" both
// count, and it runs before everything else.
var greetingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^hi+`),
	regexp.MustCompile(`^hello+`),
	regexp.MustCompile(`^hey+`),
	regexp.MustCompile(`^good morning`),
	regexp.MustCompile(`^good afternoon`),
	regexp.MustCompile(`^good evening`),
}

// Shop id extraction patterns, tried in order; the first hit wins.
// Explicit phrasing beats labelled ids beats a trailing bare token.
var shopIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:my\s+order\s+number\s+is|order\s+number\s+is|order\s+id\s+is|shopid\s+is|id\s+is)\s*#?([a-zA-Z0-9]+)`),
	regexp.MustCompile(`(?:shopid|orderid|tracking|ref|id)[\s:]*#?([a-zA-Z0-9]+)`),
	regexp.MustCompile(`([a-zA-Z0-9]+)\s+(?:order|shopid|tracking|ref|id)`),
}

// Keyword sets tried in a fixed order; the first set containing any
// matching substring decides the intent.
var intentKeywords = []struct {
	intent   string
	keywords []string
}{
	{IntentTechnicalSupport, []string{"internet", "wifi", "connection", "network", "technical issue", "troubleshoot", "device"}},
	{IntentBillingInquiry, []string{"bill", "invoice", "payment", "charge", "account balance", "billing issue", "cost", "fee"}},
	{IntentRefundRequest, []string{"refund"}},
	{IntentInstallation, []string{"installation", "setup", "install", "new service", "activate"}},
	{IntentPlanManagement, []string{"change plan", "upgrade", "downgrade", "new plan", "service package", "contract"}},
	{IntentOrderStatus, []string{"order status", "track order", "where is my order", "delivery", "shipping", "item arrived"}},
	{IntentFinanceQuery, []string{"loan", "mortgage", "investment", "credit card", "bank account", "financial advice", "money"}},
	{IntentTravelHospitality, []string{"booking", "flight", "hotel", "reservation", "vacation", "tour", "travel plan", "destination", "trip"}},
}

// DetermineIntentAndUrgency classifies a raw utterance. Priority order:
// greeting prefix, then shop id extraction, then the keyword sets; an
// utterance matching nothing is a general inquiry.
func DetermineIntentAndUrgency(query string) (intent, urgency string, entities map[string]string) {
	urgency = UrgencyLow
	entities = map[string]string{}
	queryLower := strings.TrimSpace(strings.ToLower(query))

	for _, p := range greetingPatterns {
		if p.MatchString(queryLower) {
			return IntentGreeting, urgency, entities
		}
	}

	for _, p := range shopIDPatterns {
		if m := p.FindStringSubmatch(queryLower); m != nil {
			entities["shopid"] = m[1]
			return IntentOrderStatus, urgency, entities
		}
	}

	for _, set := range intentKeywords {
		if containsAny(queryLower, set.keywords) {
			return set.intent, urgency, entities
		}
	}

	return IntentGeneralInquiry, urgency, entities
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
