package service

import (
	"github.com/toybox-next/internal/models"
	"github.com/toybox-next/internal/repository"
)

// WishlistService 收藏服务
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistService 创建收藏服务
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// List 顾客收藏列表
func (s *WishlistService) List(customerID uint) ([]models.WishlistEntry, error) {
	return s.wishlistRepo.ListByCustomer(customerID)
}

// Add 收藏商品，重复收藏返回 ErrWishlistDuplicate
func (s *WishlistService) Add(customerID, productID uint) (*models.WishlistEntry, error) {
	if customerID == 0 || productID == 0 {
		return nil, ErrNotFound
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	count, err := s.wishlistRepo.CountByCustomerAndProduct(customerID, productID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrWishlistDuplicate
	}
	entry := &models.WishlistEntry{
		CustomerID: customerID,
		ProductID:  productID,
	}
	if err := s.wishlistRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Has 判断商品是否已在顾客收藏中
func (s *WishlistService) Has(customerID, productID uint) (bool, error) {
	if customerID == 0 || productID == 0 {
		return false, nil
	}
	count, err := s.wishlistRepo.CountByCustomerAndProduct(customerID, productID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Remove 取消收藏
func (s *WishlistService) Remove(customerID, productID uint) error {
	return s.wishlistRepo.DeleteByCustomerAndProduct(customerID, productID)
}
