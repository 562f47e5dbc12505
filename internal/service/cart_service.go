package service

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/toybox-next/internal/config"
	"github.com/toybox-next/internal/i18n"
	"github.com/toybox-next/internal/models"
	"github.com/toybox-next/internal/repository"
)

// CartSummary 购物车汇总（用于响应）
type CartSummary struct {
	Items     []models.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Total     models.Money      `json:"total"`
}

// AddCartItemInput 加车输入
type AddCartItemInput struct {
	CartKey   string
	ProductID uint
	Quantity  int
}

// CartService 购物车服务
type CartService struct {
	cfg         *config.Config
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cfg *config.Config, cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cfg:         cfg,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// List 获取购物车汇总，总额按快照价格计算
func (s *CartService) List(cartKey string) (*CartSummary, error) {
	if strings.TrimSpace(cartKey) == "" {
		return nil, ErrInvalidCartItem
	}
	items, err := s.cartRepo.ListByCartKey(cartKey)
	if err != nil {
		return nil, err
	}
	summary := &CartSummary{
		Items: items,
		Total: models.ZeroMoney(),
	}
	for _, item := range items {
		summary.ItemCount += item.Quantity
		summary.Total = summary.Total.AddMoney(item.Subtotal())
	}
	return summary, nil
}

// AddItem 加入购物车。已存在时累加数量，否则以当前商品快照新建一行。
// 加车后商品改价不影响已在购物车中的快照价格。
func (s *CartService) AddItem(input AddCartItemInput) error {
	if strings.TrimSpace(input.CartKey) == "" || input.ProductID == 0 {
		return ErrInvalidCartItem
	}
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	existing, err := s.cartRepo.GetByCartKeyAndProduct(input.CartKey, input.ProductID)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.cartRepo.UpdateQuantity(existing.ID, existing.Quantity+quantity)
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	now := time.Now()
	item := &models.CartItem{
		CartKey:   input.CartKey,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.cartRepo.Create(item)
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(cartKey string, productID uint) error {
	if strings.TrimSpace(cartKey) == "" || productID == 0 {
		return ErrInvalidCartItem
	}
	return s.cartRepo.DeleteByCartKeyAndProduct(cartKey, productID)
}

// Clear 清空购物车
func (s *CartService) Clear(cartKey string) error {
	if strings.TrimSpace(cartKey) == "" {
		return ErrInvalidCartItem
	}
	return s.cartRepo.ClearByCartKey(cartKey)
}

// BuildWhatsAppLink 生成整车下单的 WhatsApp 深链
func (s *CartService) BuildWhatsAppLink(cartKey, locale string) (string, error) {
	summary, err := s.List(cartKey)
	if err != nil {
		return "", err
	}
	if len(summary.Items) == 0 {
		return "", ErrCartEmpty
	}

	currency := s.cfg.Store.Currency
	var b strings.Builder
	b.WriteString(i18n.T(locale, "whatsapp.greeting"))
	b.WriteString("\n\n")
	for _, item := range summary.Items {
		b.WriteString(i18n.Sprintf(locale, "whatsapp.line", item.Name, item.Quantity, item.Price.String(), currency))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(i18n.Sprintf(locale, "whatsapp.total", summary.Total.String(), currency))

	number := strings.TrimSpace(s.cfg.Store.WhatsAppNumber)
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(b.String())), nil
}
