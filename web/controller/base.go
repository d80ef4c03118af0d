// Package controller provides the HTTP handlers of the full-service panel:
// authentication, marketplace, news, payment methods, orders and the VIP
// management panel.
package controller

import (
	"net/http"

	"ofs-panel/logger"
	"ofs-panel/web/locale"
	"ofs-panel/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers, including
// authentication checks.
type BaseController struct{}

// checkLogin is a middleware that verifies user authentication and rejects
// unauthenticated requests.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		pureJsonMsg(c, http.StatusUnauthorized, false, I18nWeb(c, "auth.toasts.invalidCredentials"))
		c.Abort()
	} else {
		c.Next()
	}
}

// I18nWeb retrieves a localized message for the web interface based on the
// current request locale.
func I18nWeb(c *gin.Context, name string, params ...string) string {
	anyfunc, funcExists := c.Get("I18n")
	if !funcExists {
		logger.Warning("I18n function not exists in gin context!")
		return ""
	}
	i18nFunc, _ := anyfunc.(func(i18nType locale.I18nType, key string, keyParams ...string) string)
	return i18nFunc(locale.Web, name, params...)
}
