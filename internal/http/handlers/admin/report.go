package admin

import (
	"github.com/toybox-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Dashboard 运营看板：订单、营收、利润与近七日趋势
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.ReportService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, stats)
}

// SalesReport 按商品与分类汇总销量、收入与利润
func (h *Handler) SalesReport(c *gin.Context) {
	report, err := h.ReportService.SalesReport()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, report)
}
