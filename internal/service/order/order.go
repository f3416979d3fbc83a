// internal/usecase/order/order_service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"supportdesk-service/internal/domain/order"
	xerrors "supportdesk-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// shopIDFormat is the canonical id shape after trimming and uppercasing.
var shopIDFormat = regexp.MustCompile(`^[A-Z0-9]+$`)

type OrderService struct {
	orderRepo order.Repository
	logger    *zap.Logger
}

func NewOrderService(orderRepo order.Repository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// GetOrderDetailsByID resolves a shop id to a customer-facing order
// digest. It never returns an error; every failure mode maps to a
// message the assistant can relay verbatim.
func (s *OrderService) GetOrderDetailsByID(ctx context.Context, shopID string) string {
	if s.orderRepo == nil {
		return "I'm so sorry, but the order lookup service is temporarily unavailable. Please try again in a little while!"
	}
	if shopID == "" {
		return "It looks like a Shop ID wasn't included in your message. To check your order, please provide your Shop ID (e.g., 'What's the status of order SHOPID123?')."
	}

	cleaned := strings.ToUpper(strings.TrimSpace(shopID))
	if !shopIDFormat.MatchString(cleaned) {
		return fmt.Sprintf("I couldn't find an order with that ID: '%s'. Could you double-check it for me? Shop IDs usually contain letters and numbers only.", cleaned)
	}

	ord, err := s.orderRepo.FindByShopID(ctx, cleaned)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return fmt.Sprintf("I'm sorry, but I couldn't find an order with the ID '%s'. Please double-check the ID and try again, or contact our support team for more help!", cleaned)
		}
		s.logger.Error("order lookup failed", zap.String("shop_id", cleaned), zap.Error(err))
		return "I'm so sorry, but the order lookup service is temporarily unavailable. Please try again in a little while!"
	}

	product := ord.ProductName
	if product == "" {
		product = "Unknown Product"
	}
	payment := ord.PaymentStatus
	if payment == "" {
		payment = "Unknown"
	}

	return fmt.Sprintf(
		"Order found:\nProduct: %s\nPayment Status: %s\nEstimated Delivery: %s",
		product, payment, formatDelivery(ord.DeliveryDate, time.Now()),
	)
}

// formatDelivery frames a stored delivery date against the current day.
// The stored value is free text; anything that does not parse as
// YYYY-MM-DD is surfaced with a correction note rather than dropped.
func formatDelivery(deliveryDate string, now time.Time) string {
	if deliveryDate == "" {
		return "Not Available"
	}

	parsed, err := time.Parse("2006-01-02", deliveryDate)
	if err != nil {
		return fmt.Sprintf("'%s' (Invalid date format stored. Please contact support to correct this.)", deliveryDate)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	daysLeft := int(parsed.Sub(today).Hours() / 24)
	rendered := parsed.Format("January 02, 2006")

	switch {
	case daysLeft > 0:
		return fmt.Sprintf("%s (expected in %d days)", rendered, daysLeft)
	case daysLeft == 0:
		return fmt.Sprintf("%s (expected today!)", rendered)
	default:
		return fmt.Sprintf("%s (was %d days ago, possibly delivered or completed)", rendered, -daysLeft)
	}
}
