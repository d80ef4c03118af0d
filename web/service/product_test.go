package service

import (
	"testing"

	"ofs-panel/database"
	"ofs-panel/database/model"

	"github.com/stretchr/testify/assert"
)

func TestProductCreate(t *testing.T) {
	setup()
	defer teardown()

	service := ProductService{}
	buyer := newUser(t, "buyer", model.RoleUser)
	seller := newUser(t, "seller", model.RoleVIP)

	// Standard accounts cannot sell
	_, err := service.Create(buyer, &model.Product{
		Name:        "Game Account",
		Description: "Level 80",
		Price:       25,
	})
	assert.ErrorIs(t, err, ErrForbidden)

	// Missing fields
	_, err = service.Create(seller, &model.Product{Name: "Game Account"})
	assert.ErrorIs(t, err, ErrValidation)

	// Negative price
	_, err = service.Create(seller, &model.Product{
		Name:        "Game Account",
		Description: "Level 80",
		Price:       -1,
	})
	assert.ErrorIs(t, err, ErrValidation)

	product, err := service.Create(seller, &model.Product{
		Name:        "Game Account",
		Description: "Level 80",
		Price:       25,
		Images:      []string{"a.png", "b.png"},
	})
	assert.NoError(t, err)
	assert.Equal(t, seller.Id, product.OwnerId)
	assert.Len(t, product.TargetNumber, 8)
	assert.True(t, product.IsActive)

	// Image order survives the round trip through the database
	stored, err := service.Get(product.Id)
	assert.NoError(t, err)
	assert.Equal(t, model.StringList{"a.png", "b.png"}, stored.Images)
	assert.NotNil(t, stored.Owner)
	assert.Equal(t, "seller", stored.Owner.Username)
}

func TestProductSearch(t *testing.T) {
	setup()
	defer teardown()

	service := ProductService{}
	seller := newUser(t, "seller", model.RoleVIP)

	first, err := service.Create(seller, &model.Product{
		Name:        "Mobile Legends Account",
		Description: "Mythic rank",
		Price:       40,
	})
	assert.NoError(t, err)
	_, err = service.Create(seller, &model.Product{
		Name:        "PUBG Account",
		Description: "Conqueror",
		Price:       60,
	})
	assert.NoError(t, err)

	// Empty term returns everything active
	products, err := service.Search("")
	assert.NoError(t, err)
	assert.Len(t, products, 2)

	// Substring match is case-insensitive
	products, err = service.Search("mobile")
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Mobile Legends Account", products[0].Name)

	// No match is an empty list, not an error
	products, err = service.Search("fortnite")
	assert.NoError(t, err)
	assert.Len(t, products, 0)

	// Deactivated listings disappear from search
	err = service.Deactivate(seller, first.Id)
	assert.NoError(t, err)
	products, err = service.Search("")
	assert.NoError(t, err)
	assert.Len(t, products, 1)

	// But the owner still sees them
	mine, err := service.ListForOwner(seller.Id)
	assert.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestProductDeactivate(t *testing.T) {
	setup()
	defer teardown()

	service := ProductService{}
	seller := newUser(t, "seller", model.RoleVIP)
	other := newUser(t, "other", model.RoleVIP)

	product, err := service.Create(seller, &model.Product{
		Name:        "Game Account",
		Description: "Level 80",
		Price:       25,
	})
	assert.NoError(t, err)

	// Only the owner may deactivate
	err = service.Deactivate(other, product.Id)
	assert.ErrorIs(t, err, ErrForbidden)

	err = service.Deactivate(seller, product.Id)
	assert.NoError(t, err)

	_, err = service.Get(product.Id)
	assert.ErrorIs(t, err, ErrNotFound)

	var stored model.Product
	assert.NoError(t, database.GetDB().First(&stored, product.Id).Error)
	assert.False(t, stored.IsActive)
}
