package public

import (
	"strconv"

	handlershared "github.com/toybox-next/internal/http/handlers/shared"
	"github.com/toybox-next/internal/http/response"
	"github.com/toybox-next/internal/i18n"
	"github.com/toybox-next/internal/service"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

// Checkout 结算当前购物车并生成订单
func (h *Handler) Checkout(c *gin.Context) {
	cartKey, ok := getCartKey(c)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	order, err := h.OrderService.Checkout(service.CheckoutInput{
		CartKey:      cartKey,
		CustomerID:   optionalCustomerID(c),
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Locale:       locale,
	})
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
			{target: service.ErrShippingInfoRequired, code: response.CodeBadRequest, key: "error.shipping_fields_required"},
			{target: service.ErrProductNotFound, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
		}, response.CodeInternal, "error.order_create_failed")
		return
	}

	response.SuccessWithMsg(c, i18n.T(locale, "msg.order_created"), order)
}

// GetOrder 下单成功页的订单查询，游客通过订单 ID 访问
func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetByID(uint(id))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
		}, response.CodeInternal, "error.order_fetch_failed")
		return
	}
	response.Success(c, order)
}

// ListMyOrders 当前客户的订单列表
func (h *Handler) ListMyOrders(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListByCustomer(customerID, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"items": orders}, response.BuildPagination(page, pageSize, total))
}

// GetMyOrder 当前客户的订单详情，仅允许查看本人订单
func (h *Handler) GetMyOrder(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetCustomerOrder(uint(id), customerID)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
		}, response.CodeInternal, "error.order_fetch_failed")
		return
	}
	response.Success(c, order)
}
