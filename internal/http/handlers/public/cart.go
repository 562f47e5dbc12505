package public

import (
	"github.com/toybox-next/internal/http/response"
	"github.com/toybox-next/internal/i18n"
	"github.com/toybox-next/internal/service"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type removeCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetCart 获取当前购物车内容
func (h *Handler) GetCart(c *gin.Context) {
	cartKey, ok := getCartKey(c)
	if !ok {
		return
	}

	summary, err := h.CartService.List(cartKey)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, summary)
}

// AddCartItem 加入购物车，数量默认为 1，重复加入时累加
func (h *Handler) AddCartItem(c *gin.Context) {
	cartKey, ok := getCartKey(c)
	if !ok {
		return
	}

	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CartService.AddItem(service.AddCartItemInput{
		CartKey:   cartKey,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}); err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
			{target: service.ErrInvalidCartItem, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
		}, response.CodeInternal, "error.internal")
		return
	}

	summary, err := h.CartService.List(cartKey)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "msg.added_to_cart"), summary)
}

// RemoveCartItem 从购物车移除商品
func (h *Handler) RemoveCartItem(c *gin.Context) {
	cartKey, ok := getCartKey(c)
	if !ok {
		return
	}

	var req removeCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CartService.RemoveItem(cartKey, req.ProductID); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	summary, err := h.CartService.List(cartKey)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "msg.removed_from_cart"), summary)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	cartKey, ok := getCartKey(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(cartKey); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

// WhatsAppCheckout 生成带购物车内容的 WhatsApp 下单链接
func (h *Handler) WhatsAppCheckout(c *gin.Context) {
	cartKey, ok := getCartKey(c)
	if !ok {
		return
	}

	locale := i18n.ResolveLocale(c)
	link, err := h.CartService.BuildWhatsAppLink(cartKey, locale)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
		}, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, gin.H{"link": link})
}
