package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/toybox-next/internal/config"
	"github.com/toybox-next/internal/constants"
	"github.com/toybox-next/internal/models"
	"github.com/toybox-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.Order{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderService := NewOrderService(orderRepo, cartRepo, productRepo, nil)

	cfg := &config.Config{}
	cfg.Store.Currency = "EGP"
	cfg.Store.WhatsAppNumber = "201234567890"
	cartService := NewCartService(cfg, cartRepo, productRepo)
	return orderService, cartService, db
}

func createOrderTestProduct(t *testing.T, db *gorm.DB, name string, price, cost int64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Cost:     models.NewMoneyFromDecimal(decimal.NewFromInt(cost)),
		Stock:    stock,
		Category: "دمى",
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCheckoutCreatesOrderAndAdjustsStock(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "دمية باربي", 150, 80, 10)

	if err := cartService.AddItem(AddCartItemInput{CartKey: "co-a", ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	order, err := orderService.Checkout(CheckoutInput{
		CartKey:      "co-a",
		CustomerName: "أحمد",
		Phone:        "0100000000",
		Email:        "Ahmed@Example.com",
		Address:      "القاهرة",
		Locale:       "ar-EG",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if !order.Total.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected total 300, got %s", order.Total.String())
	}
	if order.Email != "ahmed@example.com" {
		t.Fatalf("expected lowercased email, got %s", order.Email)
	}
	if !strings.HasPrefix(order.OrderNo, "TB") {
		t.Fatalf("unexpected order no: %s", order.OrderNo)
	}
	byNo, err := repository.NewOrderRepository(db).GetByOrderNo(order.OrderNo)
	if err != nil {
		t.Fatalf("get by order no failed: %v", err)
	}
	if byNo == nil || byNo.ID != order.ID {
		t.Fatalf("order no %s should resolve to order %d", order.OrderNo, order.ID)
	}
	if missing, err := repository.NewOrderRepository(db).GetByOrderNo("TB00000000000000000000"); err != nil || missing != nil {
		t.Fatalf("unknown order no should resolve to nil, got %+v err=%v", missing, err)
	}
	if len(order.Lines) != 1 || order.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected order lines: %+v", order.Lines)
	}
	if !order.Lines[0].Cost.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("expected cost snapshot 80, got %s", order.Lines[0].Cost.String())
	}

	var after models.Product
	if err := db.First(&after, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if after.Stock != 8 {
		t.Fatalf("expected stock 8, got %d", after.Stock)
	}
	if after.SalesCount != 2 {
		t.Fatalf("expected sales count 2, got %d", after.SalesCount)
	}

	var cartCount int64
	if err := db.Model(&models.CartItem{}).Where("cart_key = ?", "co-a").Count(&cartCount).Error; err != nil {
		t.Fatalf("count cart items failed: %v", err)
	}
	if cartCount != 0 {
		t.Fatalf("expected cart cleared, got %d items", cartCount)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	orderService, _, _ := setupOrderServiceTest(t)
	_, err := orderService.Checkout(CheckoutInput{
		CartKey:      "co-empty",
		CustomerName: "أحمد",
		Phone:        "0100000000",
		Address:      "القاهرة",
	})
	if err != ErrCartEmpty {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestCheckoutRequiresShippingFields(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "كرة قدم", 120, 70, 5)
	if err := cartService.AddItem(AddCartItemInput{CartKey: "co-b", ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	cases := []CheckoutInput{
		{CartKey: "co-b", Phone: "0100000000", Address: "القاهرة"},
		{CartKey: "co-b", CustomerName: "أحمد", Address: "القاهرة"},
		{CartKey: "co-b", CustomerName: "أحمد", Phone: "0100000000"},
		{CartKey: "co-b", CustomerName: "   ", Phone: "0100000000", Address: "القاهرة"},
	}
	for i, input := range cases {
		if _, err := orderService.Checkout(input); err != ErrShippingInfoRequired {
			t.Fatalf("case %d: expected ErrShippingInfoRequired, got %v", i, err)
		}
	}
}

// collidingOrderRepository 前 collisions 次编号查询都命中已有订单，用于验证重试。
type collidingOrderRepository struct {
	repository.OrderRepository
	collisions int
}

func (r *collidingOrderRepository) GetByOrderNo(orderNo string) (*models.Order, error) {
	if r.collisions > 0 {
		r.collisions--
		return &models.Order{ID: 1, OrderNo: orderNo}, nil
	}
	return nil, nil
}

func TestOrderNoRetriesOnCollision(t *testing.T) {
	orderService, _, db := setupOrderServiceTest(t)

	orderService.orderRepo = &collidingOrderRepository{
		OrderRepository: repository.NewOrderRepository(db),
		collisions:      2,
	}
	orderNo, err := orderService.nextOrderNo()
	if err != nil {
		t.Fatalf("next order no failed: %v", err)
	}
	if !strings.HasPrefix(orderNo, "TB") {
		t.Fatalf("unexpected order no: %s", orderNo)
	}

	orderService.orderRepo = &collidingOrderRepository{
		OrderRepository: repository.NewOrderRepository(db),
		collisions:      orderNoMaxAttempts,
	}
	if _, err := orderService.nextOrderNo(); err == nil {
		t.Fatalf("expected exhaustion error when every attempt collides")
	}
}

// failingOrderRepository 在事务内创建订单时报错，用于验证回滚。
type failingOrderRepository struct {
	repository.OrderRepository
}

func (r *failingOrderRepository) WithTx(tx *gorm.DB) repository.OrderRepository {
	return &failingCreateOrderRepository{OrderRepository: r.OrderRepository.WithTx(tx)}
}

type failingCreateOrderRepository struct {
	repository.OrderRepository
}

func (r *failingCreateOrderRepository) Create(order *models.Order) error {
	return errors.New("create order failed")
}

func TestCheckoutRollsBackStockOnFailure(t *testing.T) {
	_, cartService, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "دمية باربي", 150, 80, 10)
	if err := cartService.AddItem(AddCartItemInput{CartKey: "co-c", ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := &failingOrderRepository{OrderRepository: repository.NewOrderRepository(db)}
	orderService := NewOrderService(orderRepo, cartRepo, productRepo, nil)

	if _, err := orderService.Checkout(CheckoutInput{
		CartKey:      "co-c",
		CustomerName: "أحمد",
		Phone:        "0100000000",
		Address:      "القاهرة",
	}); err == nil {
		t.Fatalf("expected checkout to fail")
	}

	var after models.Product
	if err := db.First(&after, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if after.Stock != 10 || after.SalesCount != 0 {
		t.Fatalf("expected stock untouched after rollback, got stock=%d sales=%d", after.Stock, after.SalesCount)
	}

	var cartCount int64
	if err := db.Model(&models.CartItem{}).Where("cart_key = ?", "co-c").Count(&cartCount).Error; err != nil {
		t.Fatalf("count cart items failed: %v", err)
	}
	if cartCount != 1 {
		t.Fatalf("expected cart preserved after rollback, got %d items", cartCount)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{constants.OrderStatusPending, constants.OrderStatusShipped, true},
		{constants.OrderStatusPending, constants.OrderStatusDelivered, true},
		{constants.OrderStatusPending, constants.OrderStatusCanceled, true},
		{constants.OrderStatusShipped, constants.OrderStatusDelivered, true},
		{constants.OrderStatusShipped, constants.OrderStatusCanceled, true},
		{constants.OrderStatusShipped, constants.OrderStatusPending, false},
		{constants.OrderStatusDelivered, constants.OrderStatusShipped, false},
		{constants.OrderStatusDelivered, constants.OrderStatusCanceled, false},
		{constants.OrderStatusCanceled, constants.OrderStatusPending, false},
	}
	for _, tc := range cases {
		if got := CanTransitionOrderStatus(tc.from, tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestUpdateStatusRejectsUnknownAndTerminal(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "دمية باربي", 150, 80, 10)
	if err := cartService.AddItem(AddCartItemInput{CartKey: "co-d", ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	order, err := orderService.Checkout(CheckoutInput{
		CartKey:      "co-d",
		CustomerName: "أحمد",
		Phone:        "0100000000",
		Address:      "القاهرة",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := orderService.UpdateStatus(order.ID, "refunded"); err != ErrInvalidOrderStatus {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}
	if _, err := orderService.UpdateStatus(order.ID+100, constants.OrderStatusShipped); err != ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	updated, err := orderService.UpdateStatus(order.ID, "Shipped")
	if err != nil {
		t.Fatalf("update to shipped failed: %v", err)
	}
	if updated.Status != constants.OrderStatusShipped {
		t.Fatalf("expected shipped, got %s", updated.Status)
	}

	if _, err := orderService.UpdateStatus(order.ID, constants.OrderStatusDelivered); err != nil {
		t.Fatalf("update to delivered failed: %v", err)
	}
	if _, err := orderService.UpdateStatus(order.ID, constants.OrderStatusCanceled); err != ErrOrderStatusTransition {
		t.Fatalf("expected ErrOrderStatusTransition, got %v", err)
	}

	// 同状态更新为空操作
	same, err := orderService.UpdateStatus(order.ID, constants.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("same status update failed: %v", err)
	}
	if same.Status != constants.OrderStatusDelivered {
		t.Fatalf("unexpected status %s", same.Status)
	}
}

func TestCancelDoesNotRestock(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "دمية باربي", 150, 80, 10)
	if err := cartService.AddItem(AddCartItemInput{CartKey: "co-e", ProductID: product.ID, Quantity: 3}); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	order, err := orderService.Checkout(CheckoutInput{
		CartKey:      "co-e",
		CustomerName: "أحمد",
		Phone:        "0100000000",
		Address:      "القاهرة",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := orderService.UpdateStatus(order.ID, constants.OrderStatusCanceled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	var after models.Product
	if err := db.First(&after, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if after.Stock != 7 {
		t.Fatalf("expected stock to stay at 7 after cancel, got %d", after.Stock)
	}
}

func TestOrderProfitFromSnapshot(t *testing.T) {
	order := models.Order{
		Lines: models.OrderLines{
			{ProductID: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(150)), Cost: models.NewMoneyFromDecimal(decimal.NewFromInt(80)), Quantity: 2},
			{ProductID: 2, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(50)), Cost: models.NewMoneyFromDecimal(decimal.NewFromInt(25)), Quantity: 1},
		},
	}
	if !order.Profit().Equal(decimal.NewFromInt(165)) {
		t.Fatalf("expected profit 165, got %s", order.Profit().String())
	}
}

func TestGetCustomerOrderOwnership(t *testing.T) {
	orderService, cartService, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "دمية باربي", 150, 80, 10)
	if err := cartService.AddItem(AddCartItemInput{CartKey: "co-f", ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	customerID := uint(7)
	order, err := orderService.Checkout(CheckoutInput{
		CartKey:      "co-f",
		CustomerID:   &customerID,
		CustomerName: "أحمد",
		Phone:        "0100000000",
		Address:      "القاهرة",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := orderService.GetCustomerOrder(order.ID, 7); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if _, err := orderService.GetCustomerOrder(order.ID, 8); err != ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound for other customer, got %v", err)
	}
}
