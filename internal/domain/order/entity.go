// internal/domain/order/entity.go
package order

// Order is one shop order record, looked up by its shop id.
// DeliveryDate stays a raw YYYY-MM-DD string: stored values are not
// guaranteed parseable and the lookup must survive bad ones.
type Order struct {
	ShopID        string `json:"shopid" db:"shopid"`
	ProductName   string `json:"product_name" db:"product_name"`
	PaymentStatus string `json:"payment_status" db:"payment_status"`
	DeliveryDate  string `json:"delivery_date" db:"delivery_date"`
}
