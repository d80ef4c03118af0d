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

// PaymentMethodForm carries a new receive-payment method.
type PaymentMethodForm struct {
	PaymentName    string `json:"paymentName" form:"paymentName"`
	Address        string `json:"address" form:"address"`
	PaymentIconURL string `json:"paymentIconUrl" form:"paymentIconUrl"`
	Description    string `json:"description" form:"description"`
	QRCodeURL      string `json:"qrCodeUrl" form:"qrCodeUrl"`
}

// PaymentController manages a seller's receive-payment methods and exposes
// the ones a buyer sees at checkout.
type PaymentController struct {
	BaseController

	paymentService service.PaymentService
}

func NewPaymentController(g *gin.RouterGroup) *PaymentController {
	a := &PaymentController{}
	a.initRouter(g)
	return a
}

func (a *PaymentController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/payment-methods")
	g.Use(a.checkLogin)

	g.GET("/", a.mine)
	g.GET("/seller/:userId", a.forSeller)
	g.GET("/:id/qr", a.qr)
	g.POST("/create", a.create)
	g.POST("/:id/deactivate", a.deactivate)
}

// mine lists the caller's own active methods.
func (a *PaymentController) mine(c *gin.Context) {
	user := session.GetLoginUser(c)
	methods, err := a.paymentService.ListActive(user.Id)
	jsonObj(c, methods, err)
}

// forSeller lists a seller's active methods for the checkout dialog.
func (a *PaymentController) forSeller(c *gin.Context) {
	sellerID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}
	methods, err := a.paymentService.ListActive(sellerID)
	if err != nil {
		jsonMsg(c, I18nWeb(c, "fail"), err)
		return
	}
	if len(methods) == 0 {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "payment.toasts.noMethods"))
		return
	}
	jsonObj(c, methods, nil)
}

// qr renders the method's receiving address as a PNG QR code.
func (a *PaymentController) qr(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}
	size, _ := strconv.Atoi(c.Query("size"))
	png, err := a.paymentService.QRPNG(id, size)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			pureJsonMsg(c, http.StatusNotFound, false, I18nWeb(c, "fail"))
			return
		}
		jsonMsg(c, I18nWeb(c, "fail"), err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (a *PaymentController) create(c *gin.Context) {
	user := session.GetLoginUser(c)

	var form PaymentMethodForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	method := &model.PaymentMethod{
		PaymentName:    form.PaymentName,
		Address:        form.Address,
		PaymentIconURL: form.PaymentIconURL,
		Description:    form.Description,
		QRCodeURL:      form.QRCodeURL,
	}

	created, err := a.paymentService.Create(user, method)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "payment.toasts.missingFields"))
			return
		}
		jsonMsg(c, I18nWeb(c, "fail"), err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "payment.created"), created, nil)
}

func (a *PaymentController) deactivate(c *gin.Context) {
	user := session.GetLoginUser(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	err = a.paymentService.Deactivate(user, id)
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
	jsonMsg(c, I18nWeb(c, "payment.deactivated"), nil)
}
