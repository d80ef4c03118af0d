package controller

import (
	"errors"
	"net/http"

	"ofs-panel/web/service"
	"ofs-panel/web/session"

	"github.com/gin-gonic/gin"
)

// ProfileForm carries a user's own profile edits.
type ProfileForm struct {
	Name            string `json:"name" form:"name"`
	Username        string `json:"username" form:"username"`
	ProfileImageURL string `json:"profileImageUrl" form:"profileImageUrl"`
}

// PasswordForm carries a password change request.
type PasswordForm struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword"`
	NewPassword     string `json:"newPassword" form:"newPassword"`
}

// ProfileController lets a signed-in user read and edit their own account.
type ProfileController struct {
	BaseController

	userService  service.UserService
	trackService service.SessionTrackService
}

func NewProfileController(g *gin.RouterGroup) *ProfileController {
	a := &ProfileController{}
	a.initRouter(g)
	return a
}

func (a *ProfileController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/profile")
	g.Use(a.checkLogin)

	g.GET("/", a.me)
	g.POST("/update", a.update)
	g.POST("/password", a.changePassword)
	g.GET("/sessions", a.sessions)
}

// me returns the session snapshot of the signed-in user.
func (a *ProfileController) me(c *gin.Context) {
	jsonObj(c, session.GetLoginUser(c), nil)
}

// update edits the profile and rewrites the session snapshot wholesale from
// the fresh row, so snapshot and database cannot drift apart.
func (a *ProfileController) update(c *gin.Context) {
	user := session.GetLoginUser(c)

	var form ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	updated, err := a.userService.UpdateProfile(user.Id, form.Name, form.Username, form.ProfileImageURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.fillAllFields"))
		case errors.Is(err, service.ErrDuplicateIdentity):
			pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.usernameExists"))
		default:
			jsonMsg(c, I18nWeb(c, "fail"), err)
		}
		return
	}

	if err := session.SetLoginUser(c, updated); err != nil {
		jsonMsg(c, I18nWeb(c, "fail"), err)
		return
	}
	jsonObj(c, updated, nil)
}

// changePassword verifies the current password before setting the new one.
func (a *ProfileController) changePassword(c *gin.Context) {
	user := session.GetLoginUser(c)

	var form PasswordForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	err := a.userService.ChangePassword(user.Id, form.CurrentPassword, form.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.fillAllFields"))
		case errors.Is(err, service.ErrInvalidCredentials):
			pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.wrongCurrentPassword"))
		default:
			jsonMsg(c, I18nWeb(c, "fail"), err)
		}
		return
	}
	jsonMsg(c, I18nWeb(c, "ok"), nil)
}

// sessions returns the user's own sign-in audit trail.
func (a *ProfileController) sessions(c *gin.Context) {
	user := session.GetLoginUser(c)
	sessions, err := a.trackService.ListForUser(user.Id)
	jsonObj(c, sessions, err)
}
