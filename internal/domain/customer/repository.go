// internal/domain/customer/repository.go
package customer

import "context"

type Repository interface {
	FindByID(ctx context.Context, customerID string) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	SetActiveCase(ctx context.Context, customerID, caseID string) error

	// ResolveInteraction appends one summary line to the long-term memory
	// and clears the active case pointer in a single statement.
	ResolveInteraction(ctx context.Context, customerID, summary string) error
}
