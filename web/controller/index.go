package controller

import (
	"errors"
	"net/http"

	"ofs-panel/database/model"
	"ofs-panel/logger"
	"ofs-panel/web/service"
	"ofs-panel/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the sign-in request structure.
type LoginForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// SignUpForm represents the sign-up request structure.
type SignUpForm struct {
	Name     string `json:"name" form:"name"`
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// IndexController handles sign-up, sign-in and sign-out.
type IndexController struct {
	BaseController

	settingService service.SettingService
	userService    service.UserService
	trackService   service.SessionTrackService
	tgbot          service.Tgbot
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.POST("/signup", a.signUp)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

// signUp creates a new standard account and signs it in.
func (a *IndexController) signUp(c *gin.Context) {
	var form SignUpForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	user, err := a.userService.Register(form.Name, form.Username, form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.fillAllFields"))
		case errors.Is(err, service.ErrDuplicateIdentity):
			pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.duplicateIdentity"))
		default:
			jsonMsg(c, I18nWeb(c, "fail"), err)
		}
		return
	}

	a.startSession(c, user)
	jsonMsgObj(c, I18nWeb(c, "auth.toasts.successSignUp"), user, nil)
}

// login authenticates the user and creates the cookie session.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}
	if form.Email == "" || form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.fillAllFields"))
		return
	}

	user, err := a.userService.Authenticate(form.Email, form.Password)
	if err != nil {
		// Banned accounts and wrong passwords are deliberately the same
		// message here.
		logger.Warningf("failed login for %q, IP: %q", form.Email, getRemoteIp(c))
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidCredentials"))
		return
	}

	a.startSession(c, user)

	logger.Infof("%s logged in successfully, IP: %s", user.Username, getRemoteIp(c))
	jsonMsgObj(c, I18nWeb(c, "auth.toasts.successLogin"), user, nil)
}

// startSession writes the session cookie and fires the best-effort audit
// record. Audit failures never reach the user.
func (a *IndexController) startSession(c *gin.Context, user *model.User) {
	sessionMaxAge, err := a.settingService.GetSessionMaxAge()
	if err != nil {
		logger.Warning("unable to get session max age:", err)
	}
	if sessionMaxAge > 0 {
		if err := session.SetMaxAge(c, sessionMaxAge*60); err != nil {
			logger.Warning("unable to set session max age:", err)
		}
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}

	ip := getRemoteIp(c)
	userAgent := c.GetHeader("User-Agent")
	platform := c.GetHeader("Sec-CH-UA-Platform")
	go a.trackService.Record(user.Id, ip, userAgent, platform)
	go a.tgbot.UserLoginNotify(user.Username, ip)
}

// logout clears the cookie session. There is no server-side token to revoke.
func (a *IndexController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	jsonMsg(c, I18nWeb(c, "ok"), nil)
}
