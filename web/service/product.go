package service

import (
	"strings"

	"ofs-panel/database"
	"ofs-panel/database/model"
	"ofs-panel/util/random"
)

// ProductService manages marketplace listings. Listings are soft-deactivated,
// never deleted, so closed orders keep resolving their product.
type ProductService struct{}

// Create stores a new listing for owner. Only admin and VIP accounts may
// sell; name, description and a non-negative price are required. The target
// number is server-assigned.
func (s *ProductService) Create(owner *model.User, product *model.Product) (*model.Product, error) {
	if owner.Role != model.RoleAdmin && owner.Role != model.RoleVIP {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(product.Name) == "" ||
		strings.TrimSpace(product.Description) == "" ||
		product.Price < 0 {
		return nil, ErrValidation
	}

	product.Id = 0
	product.OwnerId = owner.Id
	product.Owner = nil
	product.TargetNumber = random.NumSeq(8)
	product.IsActive = true

	db := database.GetDB()
	if err := db.Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Search returns active listings newest-first. A non-empty term filters by
// case-insensitive substring match on the name; an empty term returns all
// active listings. Debouncing is the client's business, not a semantic here.
func (s *ProductService) Search(term string) ([]model.Product, error) {
	db := database.GetDB()
	query := db.Model(model.Product{}).
		Where("is_active = ?", true).
		Preload("Owner").
		Order("created_at DESC")

	term = strings.TrimSpace(term)
	if term != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Get loads an active listing with its owner.
func (s *ProductService) Get(id int) (*model.Product, error) {
	db := database.GetDB()
	product := &model.Product{}
	err := db.Model(model.Product{}).
		Where("is_active = ?", true).
		Preload("Owner").
		First(product, id).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return product, nil
}

// ListForOwner returns all of an owner's listings, active or not,
// newest-first.
func (s *ProductService) ListForOwner(ownerID int) ([]model.Product, error) {
	db := database.GetDB()
	var products []model.Product
	err := db.Model(model.Product{}).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// Deactivate soft-deletes a listing. Only the owner may do this.
func (s *ProductService) Deactivate(actor *model.User, id int) error {
	db := database.GetDB()
	product := &model.Product{}
	err := db.Model(model.Product{}).First(product, id).Error
	if database.IsNotFound(err) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	if product.OwnerId != actor.Id {
		return ErrForbidden
	}
	return db.Model(model.Product{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
