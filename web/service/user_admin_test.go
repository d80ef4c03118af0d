package service

import (
	"testing"

	"ofs-panel/database/model"

	"github.com/stretchr/testify/assert"
)

func TestUserAdminSetRole(t *testing.T) {
	setup()
	defer teardown()

	service := UserAdminService{}
	vip := newUser(t, "chief", model.RoleVIP)
	target := newUser(t, "member", model.RoleUser)

	// Non-VIP actors are rejected, admin included
	admin := newUser(t, "staff", model.RoleAdmin)
	_, err := service.SetRole(admin, target.Id, model.RoleVIP)
	assert.ErrorIs(t, err, ErrForbidden)

	// VIPs never change their own account here
	_, err = service.SetRole(vip, vip.Id, model.RoleUser)
	assert.ErrorIs(t, err, ErrForbidden)

	// Unknown roles are rejected
	_, err = service.SetRole(vip, target.Id, "superuser")
	assert.ErrorIs(t, err, ErrValidation)

	updated, err := service.SetRole(vip, target.Id, model.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)

	userService := UserService{}
	stored, err := userService.GetUser(target.Id)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, stored.Role)
}

func TestUserAdminToggleBan(t *testing.T) {
	setup()
	defer teardown()

	service := UserAdminService{}
	userService := UserService{}
	vip := newUser(t, "chief", model.RoleVIP)
	target := newUser(t, "member", model.RoleUser)

	_, err := service.ToggleBan(vip, vip.Id)
	assert.ErrorIs(t, err, ErrForbidden)

	banned, err := service.ToggleBan(vip, target.Id)
	assert.NoError(t, err)
	assert.True(t, banned.IsBanned)

	// The ban bites on the next sign-in attempt
	_, err = userService.Authenticate("member@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Toggling again lifts it
	unbanned, err := service.ToggleBan(vip, target.Id)
	assert.NoError(t, err)
	assert.False(t, unbanned.IsBanned)
	_, err = userService.Authenticate("member@example.com", "secret123")
	assert.NoError(t, err)
}

func TestUserAdminList(t *testing.T) {
	setup()
	defer teardown()

	service := UserAdminService{}
	newUser(t, "alice", model.RoleUser)
	newUser(t, "bob", model.RoleUser)

	users, err := service.List()
	assert.NoError(t, err)
	// The seeded administrator plus the two created above
	assert.Len(t, users, 3)
}
