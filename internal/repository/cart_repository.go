package repository

import (
	"errors"

	"github.com/toybox-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByCartKey(cartKey string) ([]models.CartItem, error)
	GetByCartKeyAndProduct(cartKey string, productID uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(id uint, quantity int) error
	DeleteByCartKeyAndProduct(cartKey string, productID uint) error
	ClearByCartKey(cartKey string) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByCartKey 获取购物车项
func (r *GormCartRepository) ListByCartKey(cartKey string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("cart_key = ?", cartKey).Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByCartKeyAndProduct 获取单个购物车项
func (r *GormCartRepository) GetByCartKeyAndProduct(cartKey string, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_key = ? AND product_id = ?", cartKey, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create 新增购物车项
func (r *GormCartRepository) Create(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Create(item).Error
}

// UpdateQuantity 修改购物车项数量
func (r *GormCartRepository) UpdateQuantity(id uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity).Error
}

// DeleteByCartKeyAndProduct 删除购物车项
func (r *GormCartRepository) DeleteByCartKeyAndProduct(cartKey string, productID uint) error {
	return r.db.Where("cart_key = ? AND product_id = ?", cartKey, productID).Delete(&models.CartItem{}).Error
}

// ClearByCartKey 清空购物车
func (r *GormCartRepository) ClearByCartKey(cartKey string) error {
	return r.db.Where("cart_key = ?", cartKey).Delete(&models.CartItem{}).Error
}
