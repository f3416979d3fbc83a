// internal/repository/postgres/order_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"supportdesk-service/internal/domain/order"
	xerrors "supportdesk-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindByShopID retrieves an order by its shop id
func (r *OrderRepository) FindByShopID(ctx context.Context, shopID string) (*order.Order, error) {
	query := `
		SELECT shopid, product_name, payment_status, COALESCE(delivery_date, '')
		FROM orders
		WHERE shopid = $1
	`

	var o order.Order
	err := r.db.QueryRow(ctx, query, shopID).Scan(
		&o.ShopID, &o.ProductName, &o.PaymentStatus, &o.DeliveryDate,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return &o, nil
}
