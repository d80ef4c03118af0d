package service

import (
	"context"
	"strconv"
	"strings"

	"ofs-panel/database/model"
	"ofs-panel/logger"
	"ofs-panel/util/common"
	"ofs-panel/web/locale"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"go.uber.org/atomic"
)

var (
	bot       *telego.Bot
	isRunning = atomic.NewBool(false)
	chatIds   []int64
)

// Tgbot sends optional Telegram notifications for panel sign-ins and new
// orders. Everything here is best-effort; a dead bot never blocks the panel.
type Tgbot struct {
	settingService SettingService
}

// Start connects the bot when notifications are enabled and configured.
func (t *Tgbot) Start() error {
	enabled, err := t.settingService.GetTgbotEnabled()
	if err != nil || !enabled {
		return err
	}

	token, err := t.settingService.GetTgBotToken()
	if err != nil || token == "" {
		return err
	}

	rawIds, err := t.settingService.GetTgBotChatId()
	if err != nil {
		return err
	}
	chatIds = chatIds[:0]
	for _, raw := range strings.Split(rawIds, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			logger.Warning("invalid telegram chat id:", raw)
			continue
		}
		chatIds = append(chatIds, id)
	}

	bot, err = telego.NewBot(token)
	if err != nil {
		logger.Warning("telegram bot init failed:", err)
		return err
	}

	isRunning.Store(true)
	logger.Info("telegram notifications enabled")
	return nil
}

// Stop disables sending. Safe to call when never started.
func (t *Tgbot) Stop() {
	isRunning.Store(false)
	bot = nil
}

func (t *Tgbot) IsRunning() bool {
	return isRunning.Load()
}

// UserLoginNotify reports a successful panel sign-in.
func (t *Tgbot) UserLoginNotify(username, ip string) {
	if notify, err := t.settingService.GetTgBotLoginNotify(); err != nil || !notify {
		return
	}
	msg := locale.I18n(locale.Bot, "tgbot.loginNotify",
		"Username=="+username, "IP=="+ip)
	t.sendToAll(msg)
}

// NewOrderNotify reports a freshly submitted order to the configured chats.
func (t *Tgbot) NewOrderNotify(order *model.Order, productName string) {
	msg := locale.I18n(locale.Bot, "tgbot.orderNotify",
		"OrderNumber=="+order.OrderNumber,
		"Product=="+productName,
		"Amount=="+common.FormatAmount(order.TotalAmount))
	t.sendToAll(msg)
}

func (t *Tgbot) sendToAll(msg string) {
	defer common.Recover("send telegram notification")

	if !isRunning.Load() || msg == "" {
		return
	}
	for _, chatId := range chatIds {
		params := telego.SendMessageParams{
			ChatID: tu.ID(chatId),
			Text:   msg,
		}
		if _, err := bot.SendMessage(context.Background(), &params); err != nil {
			logger.Warning("error sending telegram message:", err)
		}
	}
}
