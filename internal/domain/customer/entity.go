// internal/domain/customer/entity.go
package customer

import (
	"github.com/lib/pq"
)

// Profile is the long-term memory kept for a customer across cases.
// It doubles as the wire shape a chat request supplies for first contact.
type Profile struct {
	CustomerID           string                 `json:"customer_id" db:"customer_id" binding:"required"`
	PreviousInteractions pq.StringArray         `json:"previous_interactions" db:"previous_interactions"`
	PurchaseHistory      pq.StringArray         `json:"purchase_history" db:"purchase_history"`
	PreferenceSettings   map[string]interface{} `json:"preference_settings" db:"preference_settings"`
	SentimentHistory     pq.StringArray         `json:"sentiment_history" db:"sentiment_history"`
	ActiveCaseID         *string                `json:"active_case_id,omitempty" db:"active_case_id"`
}
