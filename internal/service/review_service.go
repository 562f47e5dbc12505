package service

import (
	"strings"

	"github.com/toybox-next/internal/constants"
	"github.com/toybox-next/internal/models"
	"github.com/toybox-next/internal/repository"
)

// AddReviewInput 评价输入
type AddReviewInput struct {
	CustomerID uint
	ProductID  uint
	Rating     int
	Comment    string
}

// ReviewService 商品评价服务
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// Add 新增评价。评分限定 1-5，同一顾客对同一商品仅可评价一次。
func (s *ReviewService) Add(input AddReviewInput) (*models.Review, error) {
	if input.CustomerID == 0 || input.ProductID == 0 {
		return nil, ErrNotFound
	}
	if input.Rating < constants.ReviewRatingMin || input.Rating > constants.ReviewRatingMax {
		return nil, ErrInvalidRating
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	count, err := s.reviewRepo.CountByCustomerAndProduct(input.CustomerID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrReviewExists
	}

	review := &models.Review{
		CustomerID: input.CustomerID,
		ProductID:  input.ProductID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListByProduct 商品评价列表
func (s *ReviewService) ListByProduct(productID uint) ([]models.Review, error) {
	return s.reviewRepo.ListByProduct(productID)
}

// Remove 后台删除评价，未知 ID 返回 ErrNotFound
func (s *ReviewService) Remove(id uint) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrNotFound
	}
	return s.reviewRepo.Delete(id)
}
