// internal/repository/postgres/customer_repository.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"supportdesk-service/internal/domain/customer"
	xerrors "supportdesk-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// FindByID retrieves a customer profile
func (r *CustomerRepository) FindByID(ctx context.Context, customerID string) (*customer.Profile, error) {
	query := `
		SELECT customer_id, previous_interactions, purchase_history,
		       preference_settings, sentiment_history, active_case_id
		FROM customer_profiles
		WHERE customer_id = $1
	`

	var p customer.Profile
	var preferencesJSON []byte
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&p.CustomerID, &p.PreviousInteractions, &p.PurchaseHistory,
		&preferencesJSON, &p.SentimentHistory, &p.ActiveCaseID,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer profile: %w", err)
	}

	if len(preferencesJSON) > 0 {
		if err := json.Unmarshal(preferencesJSON, &p.PreferenceSettings); err != nil {
			return nil, fmt.Errorf("failed to unmarshal preference_settings: %w", err)
		}
	}

	return &p, nil
}

// Create inserts a new customer profile
func (r *CustomerRepository) Create(ctx context.Context, profile *customer.Profile) error {
	query := `
		INSERT INTO customer_profiles (
			customer_id, previous_interactions, purchase_history,
			preference_settings, sentiment_history, active_case_id
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	var preferencesJSON []byte
	var err error
	if profile.PreferenceSettings != nil {
		preferencesJSON, err = json.Marshal(profile.PreferenceSettings)
		if err != nil {
			return fmt.Errorf("failed to marshal preference_settings: %w", err)
		}
	}

	_, err = r.db.Exec(
		ctx, query,
		profile.CustomerID, profile.PreviousInteractions, profile.PurchaseHistory,
		preferencesJSON, profile.SentimentHistory, profile.ActiveCaseID,
	)
	if err != nil {
		return fmt.Errorf("failed to create customer profile: %w", err)
	}

	return nil
}

// SetActiveCase points the profile at its open case
func (r *CustomerRepository) SetActiveCase(ctx context.Context, customerID, caseID string) error {
	query := `UPDATE customer_profiles SET active_case_id = $2 WHERE customer_id = $1`

	tag, err := r.db.Exec(ctx, query, customerID, caseID)
	if err != nil {
		return fmt.Errorf("failed to set active case: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// ResolveInteraction appends a summary line to the long-term memory and
// clears the active case pointer
func (r *CustomerRepository) ResolveInteraction(ctx context.Context, customerID, summary string) error {
	query := `
		UPDATE customer_profiles
		SET previous_interactions = array_append(previous_interactions, $2),
		    active_case_id = NULL
		WHERE customer_id = $1
	`

	tag, err := r.db.Exec(ctx, query, customerID, summary)
	if err != nil {
		return fmt.Errorf("failed to record resolved interaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
