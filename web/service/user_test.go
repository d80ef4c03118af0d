package service

import (
	"os"
	"testing"

	"ofs-panel/database"
	"ofs-panel/database/model"
	"ofs-panel/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func setup() {
	logger.InitLogger(logging.DEBUG)
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

// newUser registers an account and optionally promotes it.
func newUser(t *testing.T, username, role string) *model.User {
	service := UserService{}
	user, err := service.Register(username, username, username+"@example.com", "secret123")
	assert.NoError(t, err)
	if role != model.RoleUser {
		err = database.GetDB().Model(model.User{}).
			Where("id = ?", user.Id).
			Update("role", role).Error
		assert.NoError(t, err)
		user.Role = role
	}
	return user
}

func TestRegister(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	user, err := service.Register("Alice", "alice", "alice@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.Password)

	// Missing fields
	_, err = service.Register("", "bob", "bob@example.com", "secret123")
	assert.ErrorIs(t, err, ErrValidation)

	// Duplicate username writes nothing
	_, err = service.Register("Other", "alice", "other@example.com", "secret123")
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	// Duplicate email writes nothing
	_, err = service.Register("Other", "other", "alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	var count int64
	database.GetDB().Model(model.User{}).
		Where("username = ?", "alice").
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAuthenticate(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	user := newUser(t, "alice", model.RoleUser)

	got, err := service.Authenticate("alice@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, user.Id, got.Id)

	// Wrong password
	_, err = service.Authenticate("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email
	_, err = service.Authenticate("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Banned accounts get the same answer as a wrong password
	database.GetDB().Model(model.User{}).
		Where("id = ?", user.Id).
		Update("is_banned", true)
	_, err = service.Authenticate("alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	alice := newUser(t, "alice", model.RoleUser)
	newUser(t, "bob", model.RoleUser)

	updated, err := service.UpdateProfile(alice.Id, "Alice Doe", "alice2", "https://cdn/avatar.png")
	assert.NoError(t, err)
	assert.Equal(t, "Alice Doe", updated.Name)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "https://cdn/avatar.png", updated.ProfileImageURL)

	// Taking another user's username is rejected
	_, err = service.UpdateProfile(alice.Id, "Alice Doe", "bob", "")
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	// Keeping your own username is fine
	_, err = service.UpdateProfile(alice.Id, "Alice Doe", "alice2", "")
	assert.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	alice := newUser(t, "alice", model.RoleUser)

	err := service.ChangePassword(alice.Id, "wrong", "newsecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = service.ChangePassword(alice.Id, "secret123", "newsecret")
	assert.NoError(t, err)

	_, err = service.Authenticate("alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = service.Authenticate("alice@example.com", "newsecret")
	assert.NoError(t, err)
}
