package service

import (
	"testing"

	"ofs-panel/database/model"

	"github.com/stretchr/testify/assert"
)

func TestTgbotNotifyWhileStopped(t *testing.T) {
	setup()
	defer teardown()

	tgbot := Tgbot{}
	assert.False(t, tgbot.IsRunning())

	// Notifications while the bot is down must be silent no-ops; they must
	// never start the bot or disturb the caller.
	tgbot.UserLoginNotify("admin", "203.0.113.9")
	tgbot.NewOrderNotify(&model.Order{OrderNumber: "12345678", TotalAmount: 25}, "Demo product")
	assert.False(t, tgbot.IsRunning())
}

func TestTgbotStartDisabled(t *testing.T) {
	setup()
	defer teardown()

	// tgBotEnable defaults to false, so Start must return without connecting.
	tgbot := Tgbot{}
	assert.NoError(t, tgbot.Start())
	assert.False(t, tgbot.IsRunning())
}
