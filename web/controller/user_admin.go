package controller

import (
	"errors"
	"net/http"
	"strconv"

	"ofs-panel/database/model"
	"ofs-panel/web/service"
	"ofs-panel/web/session"

	"github.com/gin-gonic/gin"
)

// RoleForm carries a role change for another account.
type RoleForm struct {
	Role string `json:"role" form:"role"`
}

// UserAdminController backs the VIP management panel. The VIP-only and
// self-change guards live in the service; the controller only translates
// them into responses.
type UserAdminController struct {
	BaseController

	userAdminService service.UserAdminService
}

func NewUserAdminController(g *gin.RouterGroup) *UserAdminController {
	a := &UserAdminController{}
	a.initRouter(g)
	return a
}

func (a *UserAdminController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/users")
	g.Use(a.checkLogin)

	g.GET("/", a.list)
	g.POST("/:id/role", a.setRole)
	g.POST("/:id/ban", a.toggleBan)
}

// list returns all accounts. The name filter in the panel is a client-side
// concern; no search parameter exists here.
func (a *UserAdminController) list(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user.Role != model.RoleVIP {
		pureJsonMsg(c, http.StatusForbidden, false, I18nWeb(c, "admin.toasts.vipOnly"))
		return
	}
	users, err := a.userAdminService.List()
	jsonObj(c, users, err)
}

func (a *UserAdminController) setRole(c *gin.Context) {
	user := session.GetLoginUser(c)
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	var form RoleForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	target, err := a.userAdminService.SetRole(user, targetID, form.Role)
	if err != nil {
		a.adminError(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "admin.roleUpdated"), target, nil)
}

func (a *UserAdminController) toggleBan(c *gin.Context) {
	user := session.GetLoginUser(c)
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	target, err := a.userAdminService.ToggleBan(user, targetID)
	if err != nil {
		a.adminError(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "admin.banUpdated"), target, nil)
}

func (a *UserAdminController) adminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		user := session.GetLoginUser(c)
		if user != nil && user.Role == model.RoleVIP {
			pureJsonMsg(c, http.StatusForbidden, false, I18nWeb(c, "admin.toasts.selfChange"))
		} else {
			pureJsonMsg(c, http.StatusForbidden, false, I18nWeb(c, "admin.toasts.vipOnly"))
		}
	case errors.Is(err, service.ErrValidation):
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
	case errors.Is(err, service.ErrNotFound):
		pureJsonMsg(c, http.StatusNotFound, false, I18nWeb(c, "fail"))
	default:
		jsonMsg(c, I18nWeb(c, "fail"), err)
	}
}
