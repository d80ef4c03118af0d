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

// ProductForm carries a new listing.
type ProductForm struct {
	Name            string   `json:"name" form:"name"`
	Description     string   `json:"description" form:"description"`
	Price           float64  `json:"price" form:"price"`
	IconURL         string   `json:"iconUrl" form:"iconUrl"`
	Images          []string `json:"images" form:"images"`
	VideoURL        string   `json:"videoUrl" form:"videoUrl"`
	ContactPlatform string   `json:"contactPlatform" form:"contactPlatform"`
	ContactInfo     string   `json:"contactInfo" form:"contactInfo"`
}

// ProductController serves the marketplace: search, detail, create and
// deactivate.
type ProductController struct {
	BaseController

	productService service.ProductService
}

func NewProductController(g *gin.RouterGroup) *ProductController {
	a := &ProductController{}
	a.initRouter(g)
	return a
}

func (a *ProductController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/products")
	g.Use(a.checkLogin)

	g.GET("/", a.search)
	g.GET("/mine", a.mine)
	g.GET("/:id", a.get)
	g.POST("/create", a.create)
	g.POST("/:id/deactivate", a.deactivate)
}

// search lists active products, optionally filtered by a name substring.
func (a *ProductController) search(c *gin.Context) {
	products, err := a.productService.Search(c.Query("q"))
	jsonObj(c, products, err)
}

// mine lists the caller's own listings, including deactivated ones.
func (a *ProductController) mine(c *gin.Context) {
	user := session.GetLoginUser(c)
	products, err := a.productService.ListForOwner(user.Id)
	jsonObj(c, products, err)
}

func (a *ProductController) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}
	product, err := a.productService.Get(id)
	if errors.Is(err, service.ErrNotFound) {
		pureJsonMsg(c, http.StatusNotFound, false, I18nWeb(c, "fail"))
		return
	}
	jsonObj(c, product, err)
}

func (a *ProductController) create(c *gin.Context) {
	user := session.GetLoginUser(c)

	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	product := &model.Product{
		Name:            form.Name,
		Description:     form.Description,
		Price:           form.Price,
		IconURL:         form.IconURL,
		Images:          form.Images,
		VideoURL:        form.VideoURL,
		ContactPlatform: form.ContactPlatform,
		ContactInfo:     form.ContactInfo,
	}

	created, err := a.productService.Create(user, product)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			pureJsonMsg(c, http.StatusForbidden, false, I18nWeb(c, "product.toasts.notAllowed"))
		case errors.Is(err, service.ErrValidation):
			pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "product.toasts.missingFields"))
		default:
			jsonMsg(c, I18nWeb(c, "fail"), err)
		}
		return
	}
	jsonMsgObj(c, I18nWeb(c, "product.created"), created, nil)
}

func (a *ProductController) deactivate(c *gin.Context) {
	user := session.GetLoginUser(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	err = a.productService.Deactivate(user, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			pureJsonMsg(c, http.StatusForbidden, false, I18nWeb(c, "fail"))
		case errors.Is(err, service.ErrNotFound):
			pureJsonMsg(c, http.StatusNotFound, false, I18nWeb(c, "fail"))
		default:
			jsonMsg(c, I18nWeb(c, "fail"), err)
		}
		return
	}
	jsonMsg(c, I18nWeb(c, "product.deactivated"), nil)
}
