package repository

import (
	"errors"

	"github.com/toybox-next/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository 商品评价数据访问接口
type ReviewRepository interface {
	GetByID(id uint) (*models.Review, error)
	ListByProduct(productID uint) ([]models.Review, error)
	CountByCustomerAndProduct(customerID, productID uint) (int64, error)
	CountByProduct(productID uint) (int64, error)
	SumRatingByProduct(productID uint) (int64, error)
	Create(review *models.Review) error
	Delete(id uint) error
}

// GormReviewRepository GORM 实现
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓库
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// GetByID 根据 ID 获取评价
func (r *GormReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// ListByProduct 商品评价列表（新评价在前）
func (r *GormReviewRepository) ListByProduct(productID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Preload("Customer").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// CountByCustomerAndProduct 统计顾客对某商品的评价数量
func (r *GormReviewRepository) CountByCustomerAndProduct(customerID, productID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Review{}).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByProduct 统计商品评价数量
func (r *GormReviewRepository) CountByProduct(productID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumRatingByProduct 商品评分总和（用于计算平均分）
func (r *GormReviewRepository) SumRatingByProduct(productID uint) (int64, error) {
	var sum int64
	if err := r.db.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(rating), 0)").
		Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}

// Create 创建评价
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// Delete 删除评价
func (r *GormReviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.Review{}, id).Error
}
