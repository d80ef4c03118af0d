package service

import (
	"testing"
	"time"

	"ofs-panel/database"
	"ofs-panel/database/model"

	"github.com/stretchr/testify/assert"
)

func TestSettingDefaultsAndPersistence(t *testing.T) {
	setup()
	defer teardown()

	service := SettingService{}

	// Unsaved keys fall back to compiled-in defaults
	port, err := service.GetPort()
	assert.NoError(t, err)
	assert.Equal(t, 8080, port)

	basePath, err := service.GetBasePath()
	assert.NoError(t, err)
	assert.Equal(t, "/", basePath)

	// Saved values win over defaults
	assert.NoError(t, service.SetPort(9090))
	port, err = service.GetPort()
	assert.NoError(t, err)
	assert.Equal(t, 9090, port)

	// The cookie secret is persisted on first read and stable afterwards
	first, err := service.GetSecret()
	assert.NoError(t, err)
	assert.Len(t, first, 32)
	second, err := service.GetSecret()
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSessionTrackPrune(t *testing.T) {
	setup()
	defer teardown()

	service := SessionTrackService{}
	user := newUser(t, "alice", model.RoleUser)

	db := database.GetDB()
	old := &model.UserSession{
		UserId:    user.Id,
		IPAddress: "203.0.113.7",
		CreatedAt: time.Now().Add(-100 * 24 * time.Hour),
	}
	fresh := &model.UserSession{
		UserId:    user.Id,
		IPAddress: "203.0.113.8",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, db.Create(old).Error)
	assert.NoError(t, db.Create(fresh).Error)

	removed, err := service.Prune(90 * 24 * time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	sessions, err := service.ListForUser(user.Id)
	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.Equal(t, "203.0.113.8", sessions[0].IPAddress)
}
