package service

import (
	"context"
	"time"

	"github.com/toybox-next/internal/cache"
	"github.com/toybox-next/internal/constants"
	"github.com/toybox-next/internal/logger"
	"github.com/toybox-next/internal/models"
	"github.com/toybox-next/internal/repository"
)

const (
	dashboardCacheKey = "report:dashboard"
	dashboardCacheTTL = 45 * time.Second

	dailyRevenueDays = 7
	topProductLimit  = 5
	recentOrderLimit = 10
)

// DailyRevenuePoint 单日营收
type DailyRevenuePoint struct {
	Date    string       `json:"date"`
	Revenue models.Money `json:"revenue"`
}

// DashboardStats 运营总览
type DashboardStats struct {
	TotalOrders    int64               `json:"total_orders"`
	PendingOrders  int64               `json:"pending_orders"`
	Revenue        models.Money        `json:"revenue"`
	Profit         models.Money        `json:"profit"`
	TotalCustomers int64               `json:"total_customers"`
	TotalProducts  int64               `json:"total_products"`
	DailyRevenue   []DailyRevenuePoint `json:"daily_revenue"`
	TopProducts    []models.Product    `json:"top_products"`
	RecentOrders   []models.Order      `json:"recent_orders"`
}

// CategoryProfitRow 分类利润行
type CategoryProfitRow struct {
	Category  string       `json:"category"`
	UnitsSold int          `json:"units_sold"`
	Revenue   models.Money `json:"revenue"`
	Profit    models.Money `json:"profit"`
}

// ProductReportRow 商品销售行
type ProductReportRow struct {
	ProductID  uint         `json:"product_id"`
	Name       string       `json:"name"`
	Category   string       `json:"category"`
	SalesCount int          `json:"sales_count"`
	Revenue    models.Money `json:"revenue"`
	Profit     models.Money `json:"profit"`
}

// SalesReport 销售报表（按累计销量与当前价差计算）
type SalesReport struct {
	TotalUnitsSold int                 `json:"total_units_sold"`
	TotalRevenue   models.Money        `json:"total_revenue"`
	TotalCost      models.Money        `json:"total_cost"`
	TotalProfit    models.Money        `json:"total_profit"`
	Categories     []CategoryProfitRow `json:"categories"`
	Products       []ProductReportRow  `json:"products"`
}

// ReportService 报表服务
type ReportService struct {
	reportRepo  repository.ReportRepository
	productRepo repository.ProductRepository
}

// NewReportService 创建报表服务
func NewReportService(reportRepo repository.ReportRepository, productRepo repository.ProductRepository) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		productRepo: productRepo,
	}
}

// revenueStatuses 计入营收的状态：已发货与已签收
var revenueStatuses = []string{constants.OrderStatusShipped, constants.OrderStatusDelivered}

func isRevenueStatus(status string) bool {
	for _, s := range revenueStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Dashboard 运营总览。结果短暂缓存，避免每次刷新都全表扫描。
func (s *ReportService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	if hit, err := cache.GetJSON(ctx, dashboardCacheKey, &cached); err != nil {
		logger.Warnw("dashboard_cache_read_failed", "error", err)
	} else if hit {
		return &cached, nil
	}

	stats, err := s.buildDashboard()
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, dashboardCacheKey, stats, dashboardCacheTTL); err != nil {
		logger.Warnw("dashboard_cache_write_failed", "error", err)
	}
	return stats, nil
}

func (s *ReportService) buildDashboard() (*DashboardStats, error) {
	stats := &DashboardStats{
		Revenue: models.ZeroMoney(),
		Profit:  models.ZeroMoney(),
	}

	var err error
	if stats.TotalOrders, err = s.reportRepo.CountOrders(); err != nil {
		return nil, err
	}
	if stats.PendingOrders, err = s.reportRepo.CountOrdersByStatus(constants.OrderStatusPending); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = s.reportRepo.CountCustomers(); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = s.reportRepo.CountProducts(); err != nil {
		return nil, err
	}

	// 营收统计已发货与已签收的订单，利润只统计已签收的
	revenueOrders, err := s.reportRepo.ListOrdersByStatuses(revenueStatuses)
	if err != nil {
		return nil, err
	}
	for _, order := range revenueOrders {
		stats.Revenue = stats.Revenue.AddMoney(order.Total)
		if order.Status == constants.OrderStatusDelivered {
			stats.Profit = stats.Profit.AddMoney(order.Profit())
		}
	}

	// 近 7 天曲线按时间窗取数，老订单不参与逐日聚合
	now := time.Now()
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(dailyRevenueDays - 1))
	windowOrders, err := s.reportRepo.ListOrdersSince(windowStart)
	if err != nil {
		return nil, err
	}
	daily := make([]models.Order, 0, len(windowOrders))
	for _, order := range windowOrders {
		if isRevenueStatus(order.Status) {
			daily = append(daily, order)
		}
	}
	stats.DailyRevenue = buildDailyRevenue(daily, now, dailyRevenueDays)

	if stats.TopProducts, err = s.reportRepo.ListTopProducts(topProductLimit); err != nil {
		return nil, err
	}
	if stats.RecentOrders, err = s.reportRepo.ListRecentOrders(recentOrderLimit); err != nil {
		return nil, err
	}

	return stats, nil
}

// buildDailyRevenue 按天聚合最近 days 天的营收，时间从旧到新
func buildDailyRevenue(orders []models.Order, now time.Time, days int) []DailyRevenuePoint {
	points := make([]DailyRevenuePoint, 0, days)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	byDate := make(map[string]models.Money, days)
	for _, order := range orders {
		date := order.CreatedAt.In(now.Location()).Format("2006-01-02")
		byDate[date] = byDate[date].AddMoney(order.Total)
	}
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		revenue, ok := byDate[date]
		if !ok {
			revenue = models.ZeroMoney()
		}
		points = append(points, DailyRevenuePoint{Date: date, Revenue: revenue})
	}
	return points
}

// SalesReport 销售报表。按商品累计销量与当前价差做分类汇总，
// 反映目录口径的毛利，与订单口径的利润互为参照。
func (s *ReportService) SalesReport() (*SalesReport, error) {
	products, err := s.productRepo.ListAll()
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		TotalRevenue: models.ZeroMoney(),
		TotalCost:    models.ZeroMoney(),
		TotalProfit:  models.ZeroMoney(),
	}
	byCategory := make(map[string]*CategoryProfitRow)
	order := make([]string, 0)

	for _, product := range products {
		revenue := product.TotalRevenue()
		profit := product.TotalProfit()

		report.TotalUnitsSold += product.SalesCount
		report.TotalRevenue = report.TotalRevenue.AddMoney(revenue)
		report.TotalCost = report.TotalCost.AddMoney(product.TotalCost())
		report.TotalProfit = report.TotalProfit.AddMoney(profit)

		report.Products = append(report.Products, ProductReportRow{
			ProductID:  product.ID,
			Name:       product.Name,
			Category:   product.Category,
			SalesCount: product.SalesCount,
			Revenue:    revenue,
			Profit:     profit,
		})

		category := product.Category
		if category == "" {
			category = "uncategorized"
		}
		row, ok := byCategory[category]
		if !ok {
			row = &CategoryProfitRow{
				Category: category,
				Revenue:  models.ZeroMoney(),
				Profit:   models.ZeroMoney(),
			}
			byCategory[category] = row
			order = append(order, category)
		}
		row.UnitsSold += product.SalesCount
		row.Revenue = row.Revenue.AddMoney(revenue)
		row.Profit = row.Profit.AddMoney(profit)
	}

	for _, category := range order {
		report.Categories = append(report.Categories, *byCategory[category])
	}
	return report, nil
}
