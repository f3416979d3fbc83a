// internal/domain/chat/entity.go
package chat

import (
	"time"
)

// Case statuses. resolved and closed are terminal: no further turns are
// appended once a case reaches either of them.
const (
	StatusOpen             = "open"
	StatusEscalatedToHuman = "escalated_to_human"
	StatusResolved         = "resolved"
	StatusClosed           = "closed"
)

// Conversation roles as stored in case history.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Chat domains a case can be pinned to at creation.
const (
	DomainGeneral   = "general"
	DomainTechnical = "technical"
	DomainFinance   = "finance"
	DomainTravel    = "travel"
)

// ChatMessage is one stored conversation entry. Timestamps travel as
// RFC 3339 strings because the frontend owns the in-flight transcript.
type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Case is one support session's full record. CaseID equals the session
// identifier supplied by the caller; the two are a single concept.
type Case struct {
	CaseID              string        `json:"case_id" db:"case_id"`
	SessionID           string        `json:"session_id" db:"session_id"`
	CustomerID          string        `json:"customer_id" db:"customer_id"`
	Status              string        `json:"status" db:"status"`
	CreatedAt           time.Time     `json:"created_at" db:"created_at"`
	LastUpdated         time.Time     `json:"last_updated" db:"last_updated"`
	InitialQuery        string        `json:"initial_query" db:"initial_query"`
	ConversationHistory []ChatMessage `json:"conversation_history" db:"conversation_history"`
	Escalated           bool          `json:"escalated" db:"escalated"`
	Summary             *string       `json:"summary,omitempty" db:"summary"`
	Domain              string        `json:"domain" db:"domain"`
}

// Terminal reports whether no further conversation turns may be appended.
func (c *Case) Terminal() bool {
	return c.Status == StatusResolved || c.Status == StatusClosed
}
