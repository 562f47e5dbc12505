package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/toybox-next/internal/constants"
	"github.com/toybox-next/internal/logger"
	"github.com/toybox-next/internal/models"
	"github.com/toybox-next/internal/queue"
	"github.com/toybox-next/internal/repository"

	"gorm.io/gorm"
)

// CheckoutInput 下单输入
type CheckoutInput struct {
	CartKey      string
	CustomerID   *uint
	CustomerName string
	Phone        string
	Email        string
	Address      string
	Locale       string
}

// orderNoMaxAttempts 订单编号重试上限
const orderNoMaxAttempts = 5

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		queueClient: queueClient,
	}
}

// 订单状态流转表。pending 可发货、直接签收或取消，shipped 可签收或取消，
// delivered 与 canceled 为终态。
var orderStatusTransitions = map[string][]string{
	constants.OrderStatusPending:   {constants.OrderStatusShipped, constants.OrderStatusDelivered, constants.OrderStatusCanceled},
	constants.OrderStatusShipped:   {constants.OrderStatusDelivered, constants.OrderStatusCanceled},
	constants.OrderStatusDelivered: {},
	constants.OrderStatusCanceled:  {},
}

// IsValidOrderStatus 判断是否为已知订单状态
func IsValidOrderStatus(status string) bool {
	_, ok := orderStatusTransitions[status]
	return ok
}

// CanTransitionOrderStatus 判断状态流转是否允许
func CanTransitionOrderStatus(from, to string) bool {
	for _, next := range orderStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Checkout 将购物车结转为订单。
// 订单行固化下单时的名称、售价与成本，后续改价不影响历史订单；
// 库存扣减、销量累加与清空购物车在同一事务内完成。
func (s *OrderService) Checkout(input CheckoutInput) (*models.Order, error) {
	name := strings.TrimSpace(input.CustomerName)
	phone := strings.TrimSpace(input.Phone)
	address := strings.TrimSpace(input.Address)
	if name == "" || phone == "" || address == "" {
		return nil, ErrShippingInfoRequired
	}

	items, err := s.cartRepo.ListByCartKey(input.CartKey)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	productIDs := make([]uint, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.productRepo.ListByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	costByID := make(map[uint]models.Money, len(products))
	for _, product := range products {
		costByID[product.ID] = product.Cost
	}

	lines := make(models.OrderLines, 0, len(items))
	total := models.ZeroMoney()
	for _, item := range items {
		line := models.OrderLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Cost:      costByID[item.ProductID],
			Image:     item.Image,
			Quantity:  item.Quantity,
		}
		lines = append(lines, line)
		total = total.AddMoney(line.Subtotal())
	}

	orderNo, err := s.nextOrderNo()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &models.Order{
		OrderNo:      orderNo,
		CustomerID:   input.CustomerID,
		CustomerName: name,
		Phone:        phone,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Address:      address,
		Lines:        lines,
		Total:        total,
		Status:       constants.OrderStatusPending,
		Locale:       strings.TrimSpace(input.Locale),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)

		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, line := range lines {
			if _, err := productRepo.RecordSale(line.ProductID, line.Quantity); err != nil {
				return err
			}
		}
		return cartRepo.ClearByCartKey(input.CartKey)
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatus(order, order.Status, true)

	logger.Infow("order_created",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"total", order.Total.String(),
		"item_count", order.ItemCount(),
	)
	return order, nil
}

// GetByID 获取订单
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetCustomerOrder 获取顾客本人的订单
func (s *OrderService) GetCustomerOrder(id, customerID uint) (*models.Order, error) {
	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order.CustomerID == nil || *order.CustomerID != customerID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListByCustomer 顾客订单列表
func (s *OrderService) ListByCustomer(customerID uint, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.ListByCustomer(customerID, page, pageSize)
}

// ListAdmin 后台订单列表
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// UpdateStatus 更新订单状态。只允许流转表内的变更；取消不回补库存，
// 误击穿库存由运营在商品管理中修正。
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !IsValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == status {
		return order, nil
	}
	if !CanTransitionOrderStatus(order.Status, status) {
		return nil, ErrOrderStatusTransition
	}

	if err := s.orderRepo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	previous := order.Status
	order.Status = status

	s.notifyStatus(order, status, false)

	logger.Infow("order_status_updated",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"from", previous,
		"to", status,
	)
	return order, nil
}

func (s *OrderService) notifyStatus(order *models.Order, status string, created bool) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	payload := queue.OrderStatusEmailPayload{
		OrderID: order.ID,
		Status:  status,
		Created: created,
	}
	if err := s.queueClient.EnqueueOrderStatusEmail(payload); err != nil {
		logger.Warnw("order_status_email_enqueue_failed",
			"order_id", order.ID,
			"status", status,
			"error", err,
		)
	}
}

// nextOrderNo 生成未被占用的订单编号，同秒撞号时重试
func (s *OrderService) nextOrderNo() (string, error) {
	for i := 0; i < orderNoMaxAttempts; i++ {
		orderNo := generateOrderNo()
		existing, err := s.orderRepo.GetByOrderNo(orderNo)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return orderNo, nil
		}
	}
	return "", fmt.Errorf("order no generation exhausted after %d attempts", orderNoMaxAttempts)
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("TB%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
