// Package locale provides localization for the panel. English is the default
// language; any key missing from the alternate language falls back to the
// English string.
package locale

import (
	"embed"
	"io/fs"
	"strings"

	"ofs-panel/logger"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

var (
	i18nBundle   *i18n.Bundle
	LocalizerBot *i18n.Localizer
)

type I18nType string

const (
	Bot I18nType = "bot"
	Web I18nType = "web"
)

type SettingService interface {
	GetBotLang() (string, error)
}

func InitLocalizer(i18nFS embed.FS, settingService SettingService) error {
	i18nBundle = i18n.NewBundle(language.MustParse("en-US"))
	i18nBundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if err := parseTranslationFiles(i18nFS, i18nBundle); err != nil {
		return err
	}

	return initBotLocalizer(settingService)
}

func parseTranslationFiles(i18nFS embed.FS, i18nBundle *i18n.Bundle) error {
	return fs.WalkDir(i18nFS, "translation",
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			data, err := i18nFS.ReadFile(path)
			if err != nil {
				return err
			}
			_, err = i18nBundle.ParseMessageFileBytes(data, path)
			return err
		})
}

func initBotLocalizer(settingService SettingService) error {
	botLang, err := settingService.GetBotLang()
	if err != nil {
		return err
	}

	LocalizerBot = i18n.NewLocalizer(i18nBundle, botLang)
	return nil
}

func createTemplateData(params []string, seperator ...string) map[string]any {
	var sep string = "=="
	if len(seperator) > 0 {
		sep = seperator[0]
	}

	templateData := make(map[string]any)
	for _, param := range params {
		parts := strings.SplitN(param, sep, 2)
		templateData[parts[0]] = parts[1]
	}

	return templateData
}

// I18n localizes a bot-facing message. Web messages resolve their language
// per request through the localizer LocalizerMiddleware stores in the gin
// context.
func I18n(i18nType I18nType, key string, params ...string) string {
	switch i18nType {
	case Bot:
		return localize(LocalizerBot, key, params...)
	default:
		logger.Errorf("Invalid type for I18n: %s", i18nType)
		return ""
	}
}

func localize(localizer *i18n.Localizer, key string, params ...string) string {
	if localizer == nil {
		// Localizer not ready; the key is still more useful than nothing.
		return key
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: createTemplateData(params),
	})
	if err != nil {
		logger.Errorf("Failed to localize message: %v", err)
		return ""
	}

	return msg
}

// LocalizerMiddleware selects the request language from the "lang" cookie,
// falling back to the Accept-Language header. The localizer lives only in the
// request context, so concurrent requests never share one.
func LocalizerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if cookie, err := c.Request.Cookie("lang"); err == nil {
			lang = cookie.Value
		} else {
			lang = c.GetHeader("Accept-Language")
		}

		localizer := i18n.NewLocalizer(i18nBundle, lang)

		c.Set("localizer", localizer)
		c.Set("I18n", func(i18nType I18nType, key string, params ...string) string {
			if i18nType == Web {
				return localize(localizer, key, params...)
			}
			return I18n(i18nType, key, params...)
		})
		c.Next()
	}
}
