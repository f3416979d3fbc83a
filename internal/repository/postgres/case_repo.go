// internal/repository/postgres/case_repository.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"supportdesk-service/internal/domain/chat"
	xerrors "supportdesk-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CaseRepository struct {
	db *pgxpool.Pool
}

func NewCaseRepository(db *pgxpool.Pool) *CaseRepository {
	return &CaseRepository{db: db}
}

// Create inserts a new case with its opening state
func (r *CaseRepository) Create(ctx context.Context, c *chat.Case) error {
	query := `
		INSERT INTO cases (
			case_id, session_id, customer_id, status, created_at, last_updated,
			initial_query, conversation_history, escalated, summary, domain
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	historyJSON, err := json.Marshal(c.ConversationHistory)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation history: %w", err)
	}

	_, err = r.db.Exec(
		ctx, query,
		c.CaseID, c.SessionID, c.CustomerID, c.Status, c.CreatedAt, c.LastUpdated,
		c.InitialQuery, historyJSON, c.Escalated, c.Summary, c.Domain,
	)
	if err != nil {
		return fmt.Errorf("failed to create case: %w", err)
	}

	return nil
}

// FindByID retrieves a case by its id
func (r *CaseRepository) FindByID(ctx context.Context, caseID string) (*chat.Case, error) {
	query := `
		SELECT case_id, session_id, customer_id, status, created_at, last_updated,
		       initial_query, conversation_history, escalated, summary, domain
		FROM cases
		WHERE case_id = $1
	`

	return r.scanCase(r.db.QueryRow(ctx, query, caseID))
}

// FindByIDAndCustomer retrieves a case only if it belongs to the customer
func (r *CaseRepository) FindByIDAndCustomer(ctx context.Context, caseID, customerID string) (*chat.Case, error) {
	query := `
		SELECT case_id, session_id, customer_id, status, created_at, last_updated,
		       initial_query, conversation_history, escalated, summary, domain
		FROM cases
		WHERE case_id = $1 AND customer_id = $2
	`

	return r.scanCase(r.db.QueryRow(ctx, query, caseID, customerID))
}

// ListByCustomer retrieves all of a customer's cases, most recently touched first
func (r *CaseRepository) ListByCustomer(ctx context.Context, customerID string) ([]chat.Case, error) {
	query := `
		SELECT case_id, session_id, customer_id, status, created_at, last_updated,
		       initial_query, conversation_history, escalated, summary, domain
		FROM cases
		WHERE customer_id = $1
		ORDER BY last_updated DESC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	defer rows.Close()

	var cases []chat.Case
	for rows.Next() {
		c, err := r.scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cases: %w", err)
	}

	return cases, nil
}

// UpdateTurn persists the post-turn snapshot of a case
func (r *CaseRepository) UpdateTurn(ctx context.Context, c *chat.Case) error {
	query := `
		UPDATE cases
		SET conversation_history = $2, status = $3, escalated = $4, last_updated = $5
		WHERE case_id = $1
	`

	historyJSON, err := json.Marshal(c.ConversationHistory)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation history: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, c.CaseID, historyJSON, c.Status, c.Escalated, c.LastUpdated)
	if err != nil {
		return fmt.Errorf("failed to update case: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// Resolve marks the case resolved and records its summary title.
// last_updated stays on the final conversation turn so history keeps
// its activity ordering.
func (r *CaseRepository) Resolve(ctx context.Context, caseID, summary string) error {
	query := `
		UPDATE cases
		SET status = $2, summary = $3
		WHERE case_id = $1
	`

	tag, err := r.db.Exec(ctx, query, caseID, chat.StatusResolved, summary)
	if err != nil {
		return fmt.Errorf("failed to resolve case: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

func (r *CaseRepository) scanCase(row pgx.Row) (*chat.Case, error) {
	var c chat.Case
	var historyJSON []byte

	err := row.Scan(
		&c.CaseID, &c.SessionID, &c.CustomerID, &c.Status, &c.CreatedAt, &c.LastUpdated,
		&c.InitialQuery, &historyJSON, &c.Escalated, &c.Summary, &c.Domain,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan case: %w", err)
	}

	if len(historyJSON) > 0 {
		if err := json.Unmarshal(historyJSON, &c.ConversationHistory); err != nil {
			return nil, fmt.Errorf("failed to unmarshal conversation history: %w", err)
		}
	}

	return &c, nil
}
