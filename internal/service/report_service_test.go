package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/toybox-next/internal/constants"
	"github.com/toybox-next/internal/models"
	"github.com/toybox-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupReportServiceTest(t *testing.T) (*ReportService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:report_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Customer{}, &models.Order{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewReportService(repository.NewReportRepository(db), repository.NewProductRepository(db)), db
}

func createReportOrder(t *testing.T, db *gorm.DB, status string, total, cost int64, quantity int, createdAt time.Time) {
	t.Helper()
	unitPrice := total / int64(quantity)
	unitCost := cost / int64(quantity)
	order := &models.Order{
		OrderNo: fmt.Sprintf("TB-test-%s-%d", status, time.Now().UnixNano()),
		Lines: models.OrderLines{
			{
				ProductID: 1,
				Name:      "دمية باربي",
				Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(unitPrice)),
				Cost:      models.NewMoneyFromDecimal(decimal.NewFromInt(unitCost)),
				Quantity:  quantity,
			},
		},
		Total:     models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
}

func TestDashboardRevenueAndProfit(t *testing.T) {
	svc, db := setupReportServiceTest(t)
	now := time.Now()

	// pending 不计营收；shipped 计营收不计利润；delivered 两者都计
	createReportOrder(t, db, constants.OrderStatusPending, 100, 50, 1, now)
	createReportOrder(t, db, constants.OrderStatusShipped, 300, 180, 2, now)
	createReportOrder(t, db, constants.OrderStatusDelivered, 150, 80, 1, now)
	createReportOrder(t, db, constants.OrderStatusCanceled, 500, 250, 1, now)

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}

	if stats.TotalOrders != 4 {
		t.Fatalf("expected 4 orders, got %d", stats.TotalOrders)
	}
	if stats.PendingOrders != 1 {
		t.Fatalf("expected 1 pending order, got %d", stats.PendingOrders)
	}
	if !stats.Revenue.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("expected revenue 450, got %s", stats.Revenue.String())
	}
	if !stats.Profit.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("expected profit 70, got %s", stats.Profit.String())
	}
	if len(stats.DailyRevenue) != 7 {
		t.Fatalf("expected 7 daily points, got %d", len(stats.DailyRevenue))
	}
	last := stats.DailyRevenue[len(stats.DailyRevenue)-1]
	if !last.Revenue.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("expected today revenue 450, got %s", last.Revenue.String())
	}
	if len(stats.RecentOrders) != 4 {
		t.Fatalf("expected 4 recent orders, got %d", len(stats.RecentOrders))
	}
}

func TestDashboardDailySeriesExcludesOldOrders(t *testing.T) {
	svc, db := setupReportServiceTest(t)
	now := time.Now()

	// 窗口外的老订单计入总营收，但不进 7 天曲线
	createReportOrder(t, db, constants.OrderStatusShipped, 200, 100, 1, now.AddDate(0, 0, -10))
	createReportOrder(t, db, constants.OrderStatusShipped, 100, 50, 1, now)
	createReportOrder(t, db, constants.OrderStatusPending, 500, 250, 1, now)

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}

	if !stats.Revenue.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected revenue 300, got %s", stats.Revenue.String())
	}
	seriesTotal := models.ZeroMoney()
	for _, point := range stats.DailyRevenue {
		seriesTotal = seriesTotal.AddMoney(point.Revenue)
	}
	if !seriesTotal.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected series total 100, got %s", seriesTotal.String())
	}
}

func TestBuildDailyRevenueZeroFill(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{Total: models.NewMoneyFromDecimal(decimal.NewFromInt(100)), CreatedAt: now.AddDate(0, 0, -2)},
		{Total: models.NewMoneyFromDecimal(decimal.NewFromInt(50)), CreatedAt: now.AddDate(0, 0, -2)},
		{Total: models.NewMoneyFromDecimal(decimal.NewFromInt(30)), CreatedAt: now},
	}
	points := buildDailyRevenue(orders, now, 7)
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	if points[0].Date != "2026-08-26" || points[6].Date != "2026-09-01" {
		t.Fatalf("unexpected date range: %s .. %s", points[0].Date, points[6].Date)
	}
	if !points[4].Revenue.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected 150 two days ago, got %s", points[4].Revenue.String())
	}
	if !points[5].Revenue.Equal(decimal.Zero) {
		t.Fatalf("expected zero-filled day, got %s", points[5].Revenue.String())
	}
	if !points[6].Revenue.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("expected 30 today, got %s", points[6].Revenue.String())
	}
}

func TestDashboardTopProducts(t *testing.T) {
	svc, db := setupReportServiceTest(t)
	names := []string{"a", "b", "c", "d", "e", "f"}
	for i, name := range names {
		product := &models.Product{
			Name:       name,
			Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
			Cost:       models.NewMoneyFromDecimal(decimal.NewFromInt(60)),
			SalesCount: (i + 1) * 10,
		}
		if err := db.Create(product).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if len(stats.TopProducts) != 5 {
		t.Fatalf("expected top 5 products, got %d", len(stats.TopProducts))
	}
	if stats.TopProducts[0].Name != "f" || stats.TopProducts[0].SalesCount != 60 {
		t.Fatalf("unexpected top product: %+v", stats.TopProducts[0])
	}
}

func TestSalesReportCategoryRollup(t *testing.T) {
	svc, db := setupReportServiceTest(t)
	products := []models.Product{
		{Name: "دمية باربي", Category: "دمى", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(150)), Cost: models.NewMoneyFromDecimal(decimal.NewFromInt(80)), SalesCount: 2},
		{Name: "دمية أخرى", Category: "دمى", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(100)), Cost: models.NewMoneyFromDecimal(decimal.NewFromInt(60)), SalesCount: 1},
		{Name: "كرة قدم", Category: "رياضية", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(120)), Cost: models.NewMoneyFromDecimal(decimal.NewFromInt(70)), SalesCount: 3},
		{Name: "غير مصنف", Category: "", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(10)), Cost: models.NewMoneyFromDecimal(decimal.NewFromInt(5)), SalesCount: 1},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	report, err := svc.SalesReport()
	if err != nil {
		t.Fatalf("sales report failed: %v", err)
	}

	if report.TotalUnitsSold != 7 {
		t.Fatalf("expected 7 units sold, got %d", report.TotalUnitsSold)
	}
	// 2*150 + 1*100 + 3*120 + 1*10 = 770
	if !report.TotalRevenue.Equal(decimal.NewFromInt(770)) {
		t.Fatalf("expected revenue 770, got %s", report.TotalRevenue.String())
	}
	// 2*80 + 1*60 + 3*70 + 1*5 = 435
	if !report.TotalCost.Equal(decimal.NewFromInt(435)) {
		t.Fatalf("expected cost 435, got %s", report.TotalCost.String())
	}
	// 2*70 + 1*40 + 3*50 + 1*5 = 335
	if !report.TotalProfit.Equal(decimal.NewFromInt(335)) {
		t.Fatalf("expected profit 335, got %s", report.TotalProfit.String())
	}

	byCategory := make(map[string]CategoryProfitRow, len(report.Categories))
	for _, row := range report.Categories {
		byCategory[row.Category] = row
	}
	dolls, ok := byCategory["دمى"]
	if !ok || dolls.UnitsSold != 3 || !dolls.Profit.Equal(decimal.NewFromInt(180)) {
		t.Fatalf("unexpected dolls rollup: %+v", dolls)
	}
	if _, ok := byCategory["uncategorized"]; !ok {
		t.Fatalf("expected uncategorized bucket, got %+v", report.Categories)
	}
}
