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

// NewsForm carries a new news post.
type NewsForm struct {
	Title        string             `json:"title" form:"title"`
	Content      string             `json:"content" form:"content"`
	Images       []string           `json:"images" form:"images"`
	VideoURL     string             `json:"videoUrl" form:"videoUrl"`
	ProductLinks []string           `json:"productLinks" form:"productLinks"`
	SocialLinks  []model.SocialLink `json:"socialLinks" form:"socialLinks"`
}

// NewsController serves the news feed. Everyone signed in can read; only VIP
// accounts can post.
type NewsController struct {
	BaseController

	newsService service.NewsService
}

func NewNewsController(g *gin.RouterGroup) *NewsController {
	a := &NewsController{}
	a.initRouter(g)
	return a
}

func (a *NewsController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/news")
	g.Use(a.checkLogin)

	g.GET("/", a.list)
	g.GET("/:id", a.get)
	g.POST("/create", a.create)
	g.POST("/:id/deactivate", a.deactivate)
}

func (a *NewsController) list(c *gin.Context) {
	news, err := a.newsService.List()
	jsonObj(c, news, err)
}

func (a *NewsController) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}
	news, err := a.newsService.Get(id)
	if errors.Is(err, service.ErrNotFound) {
		pureJsonMsg(c, http.StatusNotFound, false, I18nWeb(c, "fail"))
		return
	}
	jsonObj(c, news, err)
}

func (a *NewsController) create(c *gin.Context) {
	user := session.GetLoginUser(c)

	var form NewsForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	news := &model.News{
		Title:        form.Title,
		Content:      form.Content,
		Images:       form.Images,
		VideoURL:     form.VideoURL,
		ProductLinks: form.ProductLinks,
		SocialLinks:  form.SocialLinks,
	}

	created, err := a.newsService.Create(user, news)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			pureJsonMsg(c, http.StatusForbidden, false, I18nWeb(c, "news.toasts.vipOnly"))
		case errors.Is(err, service.ErrValidation):
			pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "news.toasts.missingFields"))
		default:
			jsonMsg(c, I18nWeb(c, "fail"), err)
		}
		return
	}
	jsonMsgObj(c, I18nWeb(c, "news.created"), created, nil)
}

func (a *NewsController) deactivate(c *gin.Context) {
	user := session.GetLoginUser(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	err = a.newsService.Deactivate(user, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			pureJsonMsg(c, http.StatusForbidden, false, I18nWeb(c, "news.toasts.authorOnly"))
		case errors.Is(err, service.ErrNotFound):
			pureJsonMsg(c, http.StatusNotFound, false, I18nWeb(c, "fail"))
		default:
			jsonMsg(c, I18nWeb(c, "fail"), err)
		}
		return
	}
	jsonMsg(c, I18nWeb(c, "news.deactivated"), nil)
}
