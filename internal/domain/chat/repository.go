// internal/domain/chat/repository.go
package chat

import "context"

type Repository interface {
	Create(ctx context.Context, c *Case) error
	FindByID(ctx context.Context, caseID string) (*Case, error)
	FindByIDAndCustomer(ctx context.Context, caseID, customerID string) (*Case, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Case, error)

	// UpdateTurn persists the post-turn snapshot: full history, status,
	// escalated flag and the last_updated stamp.
	UpdateTurn(ctx context.Context, c *Case) error

	// Resolve marks the case resolved and records its summary title.
	Resolve(ctx context.Context, caseID, summary string) error
}
