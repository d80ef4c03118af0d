package service

import (
	"testing"

	"ofs-panel/database/model"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethods(t *testing.T) {
	setup()
	defer teardown()

	service := PaymentService{}
	seller := newUser(t, "seller", model.RoleVIP)
	other := newUser(t, "other", model.RoleVIP)

	// Name and address are required
	_, err := service.Create(seller, &model.PaymentMethod{PaymentName: "KPay"})
	assert.ErrorIs(t, err, ErrValidation)

	kpay, err := service.Create(seller, &model.PaymentMethod{
		PaymentName: "KPay",
		Address:     "09123456789",
	})
	assert.NoError(t, err)
	wave, err := service.Create(seller, &model.PaymentMethod{
		PaymentName: "Wave",
		Address:     "09987654321",
	})
	assert.NoError(t, err)

	methods, err := service.ListActive(seller.Id)
	assert.NoError(t, err)
	assert.Len(t, methods, 2)

	// Other sellers' methods never leak in
	methods, err = service.ListActive(other.Id)
	assert.NoError(t, err)
	assert.Len(t, methods, 0)

	// Only the owner may retire a method
	err = service.Deactivate(other, kpay.Id)
	assert.ErrorIs(t, err, ErrForbidden)

	err = service.Deactivate(seller, kpay.Id)
	assert.NoError(t, err)

	methods, err = service.ListActive(seller.Id)
	assert.NoError(t, err)
	assert.Len(t, methods, 1)
	assert.Equal(t, wave.Id, methods[0].Id)

	// Retired methods are gone for checkout too
	_, err = service.Get(kpay.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentQRPNG(t *testing.T) {
	setup()
	defer teardown()

	service := PaymentService{}
	seller := newUser(t, "seller", model.RoleVIP)

	method, err := service.Create(seller, &model.PaymentMethod{
		PaymentName: "KPay",
		Address:     "09123456789",
	})
	assert.NoError(t, err)

	png, err := service.QRPNG(method.Id, 0)
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	_, err = service.QRPNG(method.Id+100, 256)
	assert.ErrorIs(t, err, ErrNotFound)
}
