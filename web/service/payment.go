package service

import (
	"strings"

	"ofs-panel/database"
	"ofs-panel/database/model"

	qrcode "github.com/skip2/go-qrcode"
)

// PaymentService manages the per-seller payment-method registry. Methods are
// immutable once created: they are offered while active and deactivated when
// retired.
type PaymentService struct{}

// Create registers a receive-payment method for the owner. Payment name and
// receiving address are required.
func (s *PaymentService) Create(owner *model.User, method *model.PaymentMethod) (*model.PaymentMethod, error) {
	if strings.TrimSpace(method.PaymentName) == "" || strings.TrimSpace(method.Address) == "" {
		return nil, ErrValidation
	}

	method.Id = 0
	method.UserId = owner.Id
	method.IsActive = true

	db := database.GetDB()
	if err := db.Create(method).Error; err != nil {
		return nil, err
	}
	return method, nil
}

// ListActive returns the owner's active methods. This is exactly the set a
// buyer is offered at checkout; without at least one, checkout cannot proceed.
func (s *PaymentService) ListActive(ownerID int) ([]model.PaymentMethod, error) {
	db := database.GetDB()
	var methods []model.PaymentMethod
	err := db.Model(model.PaymentMethod{}).
		Where("user_id = ? AND is_active = ?", ownerID, true).
		Order("created_at DESC").
		Find(&methods).Error
	return methods, err
}

// Get loads one active method.
func (s *PaymentService) Get(id int) (*model.PaymentMethod, error) {
	db := database.GetDB()
	method := &model.PaymentMethod{}
	err := db.Model(model.PaymentMethod{}).
		Where("is_active = ?", true).
		First(method, id).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return method, nil
}

// Deactivate retires a method. Only the owner may do this.
func (s *PaymentService) Deactivate(actor *model.User, id int) error {
	db := database.GetDB()
	method := &model.PaymentMethod{}
	err := db.Model(model.PaymentMethod{}).First(method, id).Error
	if database.IsNotFound(err) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	if method.UserId != actor.Id {
		return ErrForbidden
	}
	return db.Model(model.PaymentMethod{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// QRPNG renders a QR code of the method's receiving address for methods
// created without an uploaded QR image.
func (s *PaymentService) QRPNG(id int, size int) ([]byte, error) {
	method, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(method.Address, qrcode.Medium, size)
}
