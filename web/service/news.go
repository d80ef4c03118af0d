package service

import (
	"strings"

	"ofs-panel/database"
	"ofs-panel/database/model"
)

// NewsService manages the VIP-authored news feed.
type NewsService struct{}

// Create stores a news post. Only VIP accounts may author news; title and
// content are required.
func (s *NewsService) Create(author *model.User, news *model.News) (*model.News, error) {
	if author.Role != model.RoleVIP {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(news.Title) == "" || strings.TrimSpace(news.Content) == "" {
		return nil, ErrValidation
	}

	news.Id = 0
	news.AuthorId = author.Id
	news.Author = nil
	news.IsActive = true

	db := database.GetDB()
	if err := db.Create(news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

// List returns active posts newest-first with their authors.
func (s *NewsService) List() ([]model.News, error) {
	db := database.GetDB()
	var news []model.News
	err := db.Model(model.News{}).
		Where("is_active = ?", true).
		Preload("Author").
		Order("created_at DESC").
		Find(&news).Error
	return news, err
}

// Get loads one active post.
func (s *NewsService) Get(id int) (*model.News, error) {
	db := database.GetDB()
	news := &model.News{}
	err := db.Model(model.News{}).
		Where("is_active = ?", true).
		Preload("Author").
		First(news, id).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return news, nil
}

// Deactivate hides a post. The check is enforced here, not just in the UI:
// only the author may deactivate their own post.
func (s *NewsService) Deactivate(actor *model.User, id int) error {
	db := database.GetDB()
	news := &model.News{}
	err := db.Model(model.News{}).First(news, id).Error
	if database.IsNotFound(err) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	if news.AuthorId != actor.Id {
		return ErrForbidden
	}
	return db.Model(model.News{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
