package repository

import (
	"github.com/toybox-next/internal/models"

	"gorm.io/gorm"
)

// WishlistRepository 收藏数据访问接口
type WishlistRepository interface {
	ListByCustomer(customerID uint) ([]models.WishlistEntry, error)
	CountByCustomerAndProduct(customerID, productID uint) (int64, error)
	Create(entry *models.WishlistEntry) error
	DeleteByCustomerAndProduct(customerID, productID uint) error
}

// GormWishlistRepository GORM 实现
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository 创建收藏仓库
func NewWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// ListByCustomer 顾客收藏列表
func (r *GormWishlistRepository) ListByCustomer(customerID uint) ([]models.WishlistEntry, error) {
	var entries []models.WishlistEntry
	if err := r.db.Preload("Product").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// CountByCustomerAndProduct 统计顾客对某商品的收藏数量
func (r *GormWishlistRepository) CountByCustomerAndProduct(customerID, productID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.WishlistEntry{}).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create 创建收藏
func (r *GormWishlistRepository) Create(entry *models.WishlistEntry) error {
	return r.db.Create(entry).Error
}

// DeleteByCustomerAndProduct 取消收藏
func (r *GormWishlistRepository) DeleteByCustomerAndProduct(customerID, productID uint) error {
	return r.db.Where("customer_id = ? AND product_id = ?", customerID, productID).Delete(&models.WishlistEntry{}).Error
}
