package order

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"supportdesk-service/internal/domain/order"
	xerrors "supportdesk-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type stubOrderRepo struct {
	orders map[string]*order.Order
	err    error
}

func (r *stubOrderRepo) FindByShopID(_ context.Context, shopID string) (*order.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	ord, ok := r.orders[shopID]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return ord, nil
}

func TestGetOrderDetailsByIDDegradedModes(t *testing.T) {
	ctx := context.Background()

	t.Run("nil repository", func(t *testing.T) {
		svc := NewOrderService(nil, zap.NewNop())
		got := svc.GetOrderDetailsByID(ctx, "ABC123")
		if !strings.Contains(got, "temporarily unavailable") {
			t.Errorf("got %q, want unavailable message", got)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		svc := NewOrderService(&stubOrderRepo{}, zap.NewNop())
		got := svc.GetOrderDetailsByID(ctx, "")
		if !strings.Contains(got, "Shop ID wasn't included") {
			t.Errorf("got %q, want missing-id message", got)
		}
	})

	t.Run("malformed id skips the lookup", func(t *testing.T) {
		repo := &stubOrderRepo{err: errors.New("must not be called")}
		svc := NewOrderService(repo, zap.NewNop())
		got := svc.GetOrderDetailsByID(ctx, "abc-123!")
		if !strings.Contains(got, "letters and numbers only") {
			t.Errorf("got %q, want format complaint", got)
		}
		if !strings.Contains(got, "'ABC-123!'") {
			t.Errorf("got %q, want cleaned id echoed", got)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := NewOrderService(&stubOrderRepo{orders: map[string]*order.Order{}}, zap.NewNop())
		got := svc.GetOrderDetailsByID(ctx, "zz999")
		if !strings.Contains(got, "couldn't find an order with the ID 'ZZ999'") {
			t.Errorf("got %q, want not-found message", got)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		svc := NewOrderService(&stubOrderRepo{err: errors.New("conn refused")}, zap.NewNop())
		got := svc.GetOrderDetailsByID(ctx, "ABC123")
		if !strings.Contains(got, "temporarily unavailable") {
			t.Errorf("got %q, want unavailable message", got)
		}
	})
}

func TestGetOrderDetailsByIDFound(t *testing.T) {
	future := time.Now().AddDate(0, 0, 5).Format("2006-01-02")
	repo := &stubOrderRepo{orders: map[string]*order.Order{
		"SHOP42": {
			ShopID:        "SHOP42",
			ProductName:   "Laptop Stand",
			PaymentStatus: "Paid",
			DeliveryDate:  future,
		},
	}}
	svc := NewOrderService(repo, zap.NewNop())

	// Lowercase input with surrounding spaces still resolves.
	got := svc.GetOrderDetailsByID(context.Background(), "  shop42 ")

	if !strings.Contains(got, "Order found:\nProduct: Laptop Stand\nPayment Status: Paid") {
		t.Errorf("got %q, want order digest", got)
	}
	if !strings.Contains(got, "(expected in 5 days)") {
		t.Errorf("got %q, want forward-looking delivery framing", got)
	}
}

func TestGetOrderDetailsByIDDefaultsMissingFields(t *testing.T) {
	repo := &stubOrderRepo{orders: map[string]*order.Order{
		"SHOP7": {ShopID: "SHOP7"},
	}}
	svc := NewOrderService(repo, zap.NewNop())

	got := svc.GetOrderDetailsByID(context.Background(), "SHOP7")

	if !strings.Contains(got, "Product: Unknown Product") {
		t.Errorf("got %q, want product placeholder", got)
	}
	if !strings.Contains(got, "Payment Status: Unknown") {
		t.Errorf("got %q, want payment placeholder", got)
	}
	if !strings.Contains(got, "Estimated Delivery: Not Available") {
		t.Errorf("got %q, want delivery placeholder", got)
	}
}

func TestFormatDelivery(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{"future date", "2025-03-15", "March 15, 2025 (expected in 5 days)"},
		{"same day", "2025-03-10", "March 10, 2025 (expected today!)"},
		{"past date", "2025-03-01", "March 01, 2025 (was 9 days ago, possibly delivered or completed)"},
		{"empty", "", "Not Available"},
		{"unparseable", "next tuesday", "'next tuesday' (Invalid date format stored. Please contact support to correct this.)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDelivery(tt.stored, now); got != tt.want {
				t.Errorf("formatDelivery(%q) = %q, want %q", tt.stored, got, tt.want)
			}
		})
	}
}
