package service

import (
	"strings"
	"testing"

	"ofs-panel/database"
	"ofs-panel/database/model"

	"github.com/stretchr/testify/assert"
)

type orderFixture struct {
	buyer   *model.User
	seller  *model.User
	product *model.Product
	method  *model.PaymentMethod
}

func newOrderFixture(t *testing.T) orderFixture {
	productService := ProductService{}
	paymentService := PaymentService{}

	buyer := newUser(t, "buyer", model.RoleUser)
	seller := newUser(t, "seller", model.RoleVIP)

	product, err := productService.Create(seller, &model.Product{
		Name:        "Game Account",
		Description: "Level 80",
		Price:       25,
	})
	assert.NoError(t, err)

	method, err := paymentService.Create(seller, &model.PaymentMethod{
		PaymentName: "KPay",
		Address:     "09123456789",
	})
	assert.NoError(t, err)

	return orderFixture{buyer: buyer, seller: seller, product: product, method: method}
}

func TestOrderCheckout(t *testing.T) {
	setup()
	defer teardown()

	service := OrderService{}
	f := newOrderFixture(t)

	// Proof is mandatory
	_, err := service.Checkout(f.buyer, f.product.Id, f.method.Id, "")
	assert.ErrorIs(t, err, ErrMissingProof)

	// Sellers cannot buy their own listing
	_, err = service.Checkout(f.seller, f.product.Id, f.method.Id, "proof.png")
	assert.ErrorIs(t, err, ErrForbidden)

	// The method must belong to the product's seller
	stranger := newUser(t, "stranger", model.RoleVIP)
	paymentService := PaymentService{}
	foreignMethod, err := paymentService.Create(stranger, &model.PaymentMethod{
		PaymentName: "Wave",
		Address:     "09987654321",
	})
	assert.NoError(t, err)
	_, err = service.Checkout(f.buyer, f.product.Id, foreignMethod.Id, "proof.png")
	assert.ErrorIs(t, err, ErrNotFound)

	order, err := service.Checkout(f.buyer, f.product.Id, f.method.Id, "proof.png")
	assert.NoError(t, err)
	assert.Equal(t, model.OrderPending, order.Status)
	assert.Equal(t, f.buyer.Id, order.BuyerId)
	assert.Equal(t, f.seller.Id, order.SellerId)
	assert.Equal(t, 25.0, order.TotalAmount)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))

	// The amount is a snapshot; a later price edit never touches the order
	database.GetDB().Model(model.Product{}).
		Where("id = ?", f.product.Id).
		Update("price", 99)
	stored, err := service.Get(order.Id)
	assert.NoError(t, err)
	assert.Equal(t, 25.0, stored.TotalAmount)
}

func TestOrderSetStatus(t *testing.T) {
	setup()
	defer teardown()

	service := OrderService{}
	f := newOrderFixture(t)

	order, err := service.Checkout(f.buyer, f.product.Id, f.method.Id, "proof.png")
	assert.NoError(t, err)

	// Only approved and rejected are legal targets
	_, err = service.SetStatus(f.seller, order.Id, "pending")
	assert.ErrorIs(t, err, ErrValidation)

	// Only the seller decides; the buyer's attempt changes nothing
	_, err = service.SetStatus(f.buyer, order.Id, model.OrderApproved)
	assert.ErrorIs(t, err, ErrForbidden)
	stored, err := service.Get(order.Id)
	assert.NoError(t, err)
	assert.Equal(t, model.OrderPending, stored.Status)

	approved, err := service.SetStatus(f.seller, order.Id, model.OrderApproved)
	assert.NoError(t, err)
	assert.Equal(t, model.OrderApproved, approved.Status)

	// Both terminal states are final; a second decision bounces
	_, err = service.SetStatus(f.seller, order.Id, model.OrderRejected)
	assert.ErrorIs(t, err, ErrOrderClosed)
	stored, err = service.Get(order.Id)
	assert.NoError(t, err)
	assert.Equal(t, model.OrderApproved, stored.Status)
}

func TestOrderListForUser(t *testing.T) {
	setup()
	defer teardown()

	service := OrderService{}
	f := newOrderFixture(t)

	order, err := service.Checkout(f.buyer, f.product.Id, f.method.Id, "proof.png")
	assert.NoError(t, err)

	received, err := service.ListForUser(f.seller.Id, OrdersReceived)
	assert.NoError(t, err)
	assert.Len(t, received, 1)
	assert.Equal(t, order.Id, received[0].Id)
	assert.NotNil(t, received[0].Product)
	assert.NotNil(t, received[0].Buyer)

	sent, err := service.ListForUser(f.buyer.Id, OrdersSent)
	assert.NoError(t, err)
	assert.Len(t, sent, 1)

	// The buyer received nothing, the seller sent nothing
	received, err = service.ListForUser(f.buyer.Id, OrdersReceived)
	assert.NoError(t, err)
	assert.Len(t, received, 0)
	sent, err = service.ListForUser(f.seller.Id, OrdersSent)
	assert.NoError(t, err)
	assert.Len(t, sent, 0)
}

func TestOrderReceipt(t *testing.T) {
	setup()
	defer teardown()

	service := OrderService{}
	f := newOrderFixture(t)

	order, err := service.Checkout(f.buyer, f.product.Id, f.method.Id, "proof.png")
	assert.NoError(t, err)

	// Third parties get nothing
	stranger := newUser(t, "stranger", model.RoleUser)
	_, err = service.Receipt(stranger, order.Id)
	assert.ErrorIs(t, err, ErrForbidden)

	receipt, err := service.Receipt(f.buyer, order.Id)
	assert.NoError(t, err)
	assert.Equal(t, order.OrderNumber, receipt.OrderNumber)
	assert.Equal(t, "Game Account", receipt.ProductName)
	assert.Equal(t, f.product.TargetNumber, receipt.TargetNumber)
	assert.Equal(t, 25.0, receipt.TotalAmount)

	text, err := receipt.Render()
	assert.NoError(t, err)
	assert.Contains(t, text, "ORDER RECEIPT")
	assert.Contains(t, text, order.OrderNumber)
	assert.Contains(t, text, "$25.00")
	assert.Contains(t, text, model.OrderPending)

	// The seller may read it too
	_, err = service.Receipt(f.seller, order.Id)
	assert.NoError(t, err)
}
