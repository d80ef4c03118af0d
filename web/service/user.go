package service

import (
	"strings"

	"ofs-panel/database"
	"ofs-panel/database/model"
	"ofs-panel/logger"
	"ofs-panel/util/crypto"
)

// UserService handles sign-up, sign-in and profile maintenance.
type UserService struct{}

// Register creates a standard account. Username and email are unique across
// all accounts; a clash returns ErrDuplicateIdentity and writes nothing.
func (s *UserService) Register(name, username, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if name == "" || username == "" || email == "" || password == "" {
		return nil, ErrValidation
	}

	db := database.GetDB()

	var count int64
	err := db.Model(model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateIdentity
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Username: username,
		Email:    email,
		Password: hash,
		Role:     model.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		// The pre-check races with concurrent sign-ups; the unique indexes
		// are the real guard.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email and password. Wrong email, wrong password and
// banned accounts all return the same ErrInvalidCredentials so the cases
// cannot be told apart from the outside.
func (s *UserService) Authenticate(email, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", strings.TrimSpace(email)).
		First(user).Error
	if database.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		logger.Warning("authenticate query err:", err)
		return nil, err
	}

	if user.IsBanned {
		return nil, ErrInvalidCredentials
	}
	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser loads an account by id.
func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).First(user, id).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile updates a user's own name, username and avatar and returns the
// fresh row. The caller is expected to rewrite its session snapshot from the
// returned value.
func (s *UserService) UpdateProfile(id int, name, username, profileImageURL string) (*model.User, error) {
	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	if name == "" || username == "" {
		return nil, ErrValidation
	}

	db := database.GetDB()

	var count int64
	err := db.Model(model.User{}).
		Where("username = ? AND id != ?", username, id).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateIdentity
	}

	err = db.Model(model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":              name,
			"username":          username,
			"profile_image_url": profileImageURL,
		}).Error
	if err != nil {
		return nil, err
	}
	return s.GetUser(id)
}

// ChangePassword sets a new password after verifying the current one.
func (s *UserService) ChangePassword(id int, currentPassword, newPassword string) error {
	if newPassword == "" {
		return ErrValidation
	}

	user, err := s.GetUser(id)
	if err != nil {
		return err
	}
	if !crypto.CheckPasswordHash(user.Password, currentPassword) {
		return ErrInvalidCredentials
	}

	hash, err := crypto.HashPasswordAsBcrypt(newPassword)
	if err != nil {
		return err
	}
	db := database.GetDB()
	return db.Model(model.User{}).
		Where("id = ?", id).
		Update("password", hash).Error
}
