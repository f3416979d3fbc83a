// internal/domain/order/repository.go
package order

import "context"

type Repository interface {
	FindByShopID(ctx context.Context, shopID string) (*Order, error)
}
