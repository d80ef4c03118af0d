package service

import (
	"bytes"
	"text/template"
	"time"

	"ofs-panel/database"
	"ofs-panel/database/model"
	"ofs-panel/util/random"
)

// Tabs for the order history view.
const (
	OrdersReceived = "received" // orders where the user is the seller
	OrdersSent     = "sent"     // orders where the user is the buyer
)

// OrderService runs the manual payment-proof order workflow:
// pending -> approved | rejected, both terminal.
type OrderService struct {
	productService ProductService
	paymentService PaymentService
}

// Checkout creates a pending order for the buyer.
//
// The total amount snapshots the product price at submission time; later
// price edits never touch existing orders. The chosen method must be an
// active method of the product's owner, and a payment proof is mandatory.
func (s *OrderService) Checkout(buyer *model.User, productID, methodID int, proofURL string) (*model.Order, error) {
	product, err := s.productService.Get(productID)
	if err != nil {
		return nil, err
	}
	if product.OwnerId == buyer.Id {
		// Self-purchase is disallowed.
		return nil, ErrForbidden
	}

	method, err := s.paymentService.Get(methodID)
	if err != nil {
		return nil, err
	}
	if method.UserId != product.OwnerId {
		return nil, ErrNotFound
	}

	if proofURL == "" {
		return nil, ErrMissingProof
	}

	order := &model.Order{
		OrderNumber:     "ORD-" + random.NumSeq(8),
		ProductId:       product.Id,
		BuyerId:         buyer.Id,
		SellerId:        product.OwnerId,
		PaymentMethodId: method.Id,
		PaymentProofURL: proofURL,
		Status:          model.OrderPending,
		TotalAmount:     product.Price,
	}

	db := database.GetDB()
	if err := db.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// SetStatus moves a pending order to approved or rejected. Only the order's
// seller may act, and the transition runs as a compare-and-swap on the
// pending state so two concurrent decisions can never both apply.
func (s *OrderService) SetStatus(actor *model.User, orderID int, status string) (*model.Order, error) {
	if status != model.OrderApproved && status != model.OrderRejected {
		return nil, ErrValidation
	}

	db := database.GetDB()
	order := &model.Order{}
	err := db.Model(model.Order{}).First(order, orderID).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	if order.SellerId != actor.Id {
		return nil, ErrForbidden
	}

	res := db.Model(model.Order{}).
		Where("id = ? AND status = ?", orderID, model.OrderPending).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrOrderClosed
	}

	order.Status = status
	return order, nil
}

// ListForUser returns the user's order history for one tab, newest-first,
// with product, buyer and seller resolved.
func (s *OrderService) ListForUser(userID int, tab string) ([]model.Order, error) {
	db := database.GetDB()
	query := db.Model(model.Order{}).
		Preload("Product").
		Preload("Buyer").
		Preload("Seller").
		Order("created_at DESC")

	switch tab {
	case OrdersSent:
		query = query.Where("buyer_id = ?", userID)
	default:
		query = query.Where("seller_id = ?", userID)
	}

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Get loads one order with its relations.
func (s *OrderService) Get(orderID int) (*model.Order, error) {
	db := database.GetDB()
	order := &model.Order{}
	err := db.Model(model.Order{}).
		Preload("Product").
		Preload("Buyer").
		Preload("Seller").
		First(order, orderID).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return order, nil
}

// Receipt is the read-side rendering of an order for printing or export.
// Producing one is not a state transition.
type Receipt struct {
	OrderNumber  string    `json:"orderNumber"`
	ProductName  string    `json:"productName"`
	TargetNumber string    `json:"targetNumber"`
	BuyerName    string    `json:"buyerName"`
	SellerName   string    `json:"sellerName"`
	TotalAmount  float64   `json:"totalAmount"`
	Status       string    `json:"status"`
	Date         time.Time `json:"date"`
}

var receiptTemplate = template.Must(template.New("receipt").Parse(
	`ORDER RECEIPT
Order #{{.OrderNumber}}

Product: {{.ProductName}}
Target #: {{.TargetNumber}}
Price: ${{printf "%.2f" .TotalAmount}}

Buyer: {{.BuyerName}}
Seller: {{.SellerName}}

Status: {{.Status}}
Date: {{.Date.Format "2006-01-02 15:04:05"}}
`))

// Receipt builds the receipt for an order that only the buyer or seller may
// see.
func (s *OrderService) Receipt(actor *model.User, orderID int) (*Receipt, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	if actor.Id != order.BuyerId && actor.Id != order.SellerId {
		return nil, ErrForbidden
	}

	r := &Receipt{
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		Date:        order.CreatedAt,
	}
	if order.Product != nil {
		r.ProductName = order.Product.Name
		r.TargetNumber = order.Product.TargetNumber
	}
	if order.Buyer != nil {
		r.BuyerName = order.Buyer.Name
	}
	if order.Seller != nil {
		r.SellerName = order.Seller.Name
	}
	return r, nil
}

// Render writes the receipt as printable plain text.
func (r *Receipt) Render() (string, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
