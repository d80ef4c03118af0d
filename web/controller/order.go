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

// CheckoutForm carries an order submission.
type CheckoutForm struct {
	ProductId       int    `json:"productId" form:"productId"`
	PaymentMethodId int    `json:"paymentMethodId" form:"paymentMethodId"`
	PaymentProofURL string `json:"paymentProofUrl" form:"paymentProofUrl"`
}

// StatusForm carries a seller's decision on a pending order.
type StatusForm struct {
	Status string `json:"status" form:"status"`
}

// OrderController runs the order workflow: checkout, the received/sent
// history tabs, the seller's approve/reject decision and the receipt.
type OrderController struct {
	BaseController

	orderService   service.OrderService
	productService service.ProductService
	tgbot          service.Tgbot
}

func NewOrderController(g *gin.RouterGroup) *OrderController {
	a := &OrderController{}
	a.initRouter(g)
	return a
}

func (a *OrderController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/orders")
	g.Use(a.checkLogin)

	g.GET("/", a.list)
	g.GET("/:id", a.get)
	g.GET("/:id/receipt", a.receipt)
	g.POST("/checkout", a.checkout)
	g.POST("/:id/status", a.setStatus)
}

// list returns one history tab, "received" by default or "sent" via ?tab=sent.
func (a *OrderController) list(c *gin.Context) {
	user := session.GetLoginUser(c)
	orders, err := a.orderService.ListForUser(user.Id, c.Query("tab"))
	jsonObj(c, orders, err)
}

func (a *OrderController) get(c *gin.Context) {
	user := session.GetLoginUser(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}
	order, err := a.orderService.Get(id)
	if errors.Is(err, service.ErrNotFound) {
		pureJsonMsg(c, http.StatusNotFound, false, I18nWeb(c, "fail"))
		return
	}
	if err == nil && user.Id != order.BuyerId && user.Id != order.SellerId {
		pureJsonMsg(c, http.StatusForbidden, false, I18nWeb(c, "fail"))
		return
	}
	jsonObj(c, order, err)
}

func (a *OrderController) checkout(c *gin.Context) {
	user := session.GetLoginUser(c)

	var form CheckoutForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	order, err := a.orderService.Checkout(user, form.ProductId, form.PaymentMethodId, form.PaymentProofURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingProof):
			pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "order.toasts.missingProof"))
		case errors.Is(err, service.ErrForbidden):
			pureJsonMsg(c, http.StatusForbidden, false, I18nWeb(c, "order.toasts.selfPurchase"))
		case errors.Is(err, service.ErrNotFound):
			pureJsonMsg(c, http.StatusNotFound, false, I18nWeb(c, "fail"))
		default:
			jsonMsg(c, I18nWeb(c, "fail"), err)
		}
		return
	}

	productName := ""
	if product, perr := a.productService.Get(order.ProductId); perr == nil {
		productName = product.Name
	}
	go a.tgbot.NewOrderNotify(order, productName)

	jsonMsgObj(c, I18nWeb(c, "order.created"), order, nil)
}

// setStatus applies the seller's approve or reject decision.
func (a *OrderController) setStatus(c *gin.Context) {
	user := session.GetLoginUser(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	var form StatusForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	order, err := a.orderService.SetStatus(user, id, form.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		case errors.Is(err, service.ErrForbidden):
			pureJsonMsg(c, http.StatusForbidden, false, I18nWeb(c, "order.toasts.sellerOnly"))
		case errors.Is(err, service.ErrOrderClosed):
			pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "order.toasts.closed"))
		case errors.Is(err, service.ErrNotFound):
			pureJsonMsg(c, http.StatusNotFound, false, I18nWeb(c, "fail"))
		default:
			jsonMsg(c, I18nWeb(c, "fail"), err)
		}
		return
	}

	msg := I18nWeb(c, "order.approved")
	if order.Status == model.OrderRejected {
		msg = I18nWeb(c, "order.rejected")
	}
	jsonMsgObj(c, msg, order, nil)
}

// receipt returns the printable receipt. ?format=text yields plain text,
// anything else the JSON structure.
func (a *OrderController) receipt(c *gin.Context) {
	user := session.GetLoginUser(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "auth.toasts.invalidFormData"))
		return
	}

	receipt, err := a.orderService.Receipt(user, id)
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

	if c.Query("format") == "text" {
		text, err := receipt.Render()
		if err != nil {
			jsonMsg(c, I18nWeb(c, "fail"), err)
			return
		}
		c.String(http.StatusOK, text)
		return
	}
	jsonObj(c, receipt, nil)
}
