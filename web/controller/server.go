package controller

import (
	"strconv"
	"time"

	"ofs-panel/database/model"
	"ofs-panel/web/middleware"
	"ofs-panel/web/service"

	"github.com/gin-gonic/gin"
)

// ServerController exposes host status and panel logs to admin and VIP
// accounts.
type ServerController struct {
	BaseController

	serverService service.ServerService

	lastStatus        *service.Status
	lastGetStatusTime time.Time
}

func NewServerController(g *gin.RouterGroup) *ServerController {
	a := &ServerController{
		lastGetStatusTime: time.Now(),
	}
	a.initRouter(g)
	return a
}

func (a *ServerController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/server")
	g.Use(a.checkLogin)
	// The dashboard is staff-only.
	g.Use(middleware.RoleRequired(model.RoleAdmin, model.RoleVIP))

	g.POST("/status", a.status)
	g.POST("/logs/:count", a.getLogs)
}

func (a *ServerController) status(c *gin.Context) {
	a.lastStatus = a.serverService.GetStatus(a.lastStatus)
	a.lastGetStatusTime = time.Now()
	jsonObj(c, a.lastStatus, nil)
}

func (a *ServerController) getLogs(c *gin.Context) {
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil {
		count = 50
	}
	logs := a.serverService.GetLogs(count, c.PostForm("level"))
	jsonObj(c, logs, nil)
}
