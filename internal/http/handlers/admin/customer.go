package admin

import (
	"strconv"

	"github.com/toybox-next/internal/constants"
	handlershared "github.com/toybox-next/internal/http/handlers/shared"
	"github.com/toybox-next/internal/http/response"
	"github.com/toybox-next/internal/i18n"
	"github.com/toybox-next/internal/models"
	"github.com/toybox-next/internal/repository"
	"github.com/toybox-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCustomers 客户列表，支持关键字与启用状态过滤
func (h *Handler) ListCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.CustomerListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
	}
	if raw := c.Query("is_active"); raw != "" {
		active := raw == "1" || raw == "true"
		filter.IsActive = &active
	}

	customers, total, err := h.CustomerRepo.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	rows, err := h.buildCustomerRows(customers)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"items": rows}, response.BuildPagination(page, pageSize, total))
}

type customerRow struct {
	models.Customer
	OrderCount     int64        `json:"order_count"`
	DeliveredSpend models.Money `json:"delivered_spend"`
}

// buildCustomerRows 给客户列表补上订单数与已签收消费额
func (h *Handler) buildCustomerRows(customers []models.Customer) ([]customerRow, error) {
	ids := make([]uint, 0, len(customers))
	for _, customer := range customers {
		ids = append(ids, customer.ID)
	}

	orders, err := h.OrderRepo.ListByCustomerIDs(ids)
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(customers))
	spends := make(map[uint]models.Money, len(customers))
	for _, order := range orders {
		if order.CustomerID == nil {
			continue
		}
		id := *order.CustomerID
		counts[id]++
		if order.Status == constants.OrderStatusDelivered {
			spend, ok := spends[id]
			if !ok {
				spend = models.ZeroMoney()
			}
			spends[id] = spend.AddMoney(order.Total)
		}
	}

	rows := make([]customerRow, 0, len(customers))
	for _, customer := range customers {
		spend, ok := spends[customer.ID]
		if !ok {
			spend = models.ZeroMoney()
		}
		rows = append(rows, customerRow{
			Customer:       customer,
			OrderCount:     counts[customer.ID],
			DeliveredSpend: spend,
		})
	}
	return rows, nil
}

// GetCustomer 客户详情
func (h *Handler) GetCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	customer, err := h.CustomerAuthService.GetProfile(uint(id))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.customer_not_found"},
		}, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, customer)
}

// SetCustomerActive 启用或停用客户账号
func (h *Handler) SetCustomerActive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	customer, err := h.CustomerAuthService.GetProfile(uint(id))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.customer_not_found"},
		}, response.CodeInternal, "error.internal")
		return
	}

	if err := h.CustomerRepo.SetActive(customer.ID, *req.IsActive); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	customer.IsActive = *req.IsActive

	requestLog(c).Infow("customer_active_updated",
		"customer_id", customer.ID,
		"is_active", customer.IsActive,
	)

	locale := i18n.ResolveLocale(c)
	msgKey := "msg.customer_enabled"
	if !customer.IsActive {
		msgKey = "msg.customer_disabled"
	}
	response.SuccessWithMsg(c, i18n.T(locale, msgKey), customer)
}
