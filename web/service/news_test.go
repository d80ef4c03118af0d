package service

import (
	"testing"

	"ofs-panel/database/model"

	"github.com/stretchr/testify/assert"
)

func TestNewsCreate(t *testing.T) {
	setup()
	defer teardown()

	service := NewsService{}
	user := newUser(t, "reader", model.RoleUser)
	admin := newUser(t, "staff", model.RoleAdmin)
	vip := newUser(t, "author", model.RoleVIP)

	// Only VIP accounts may post, admin included is not enough
	_, err := service.Create(user, &model.News{Title: "Hello", Content: "World"})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = service.Create(admin, &model.News{Title: "Hello", Content: "World"})
	assert.ErrorIs(t, err, ErrForbidden)

	// Missing fields
	_, err = service.Create(vip, &model.News{Title: "Hello"})
	assert.ErrorIs(t, err, ErrValidation)

	news, err := service.Create(vip, &model.News{
		Title:        "Promo week",
		Content:      "All accounts half price",
		ProductLinks: []string{"/products/1"},
		SocialLinks:  []model.SocialLink{{Platform: "telegram", URL: "https://t.me/shop"}},
	})
	assert.NoError(t, err)
	assert.Equal(t, vip.Id, news.AuthorId)
	assert.True(t, news.IsActive)

	stored, err := service.Get(news.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Promo week", stored.Title)
	assert.Len(t, stored.SocialLinks, 1)
	assert.Equal(t, "telegram", stored.SocialLinks[0].Platform)
	assert.NotNil(t, stored.Author)
	assert.Equal(t, "author", stored.Author.Username)
}

func TestNewsListAndDeactivate(t *testing.T) {
	setup()
	defer teardown()

	service := NewsService{}
	vip := newUser(t, "author", model.RoleVIP)
	otherVip := newUser(t, "rival", model.RoleVIP)

	first, err := service.Create(vip, &model.News{Title: "First", Content: "one"})
	assert.NoError(t, err)
	_, err = service.Create(vip, &model.News{Title: "Second", Content: "two"})
	assert.NoError(t, err)

	news, err := service.List()
	assert.NoError(t, err)
	assert.Len(t, news, 2)

	// Another VIP cannot take down someone else's post
	err = service.Deactivate(otherVip, first.Id)
	assert.ErrorIs(t, err, ErrForbidden)

	err = service.Deactivate(vip, first.Id)
	assert.NoError(t, err)

	news, err = service.List()
	assert.NoError(t, err)
	assert.Len(t, news, 1)
	assert.Equal(t, "Second", news[0].Title)

	_, err = service.Get(first.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}
