package service

import (
	"strings"

	"github.com/toybox-next/internal/models"
	"github.com/toybox-next/internal/repository"
)

// ProductDetail 商品详情（含评价汇总）
type ProductDetail struct {
	Product       *models.Product `json:"product"`
	Reviews       []models.Review `json:"reviews"`
	ReviewCount   int64           `json:"review_count"`
	AverageRating float64         `json:"average_rating"`
	InWishlist    bool            `json:"in_wishlist"`
}

// CatalogHome 店铺首页数据
type CatalogHome struct {
	Featured    []models.Product `json:"featured"`
	BestSellers []models.Product `json:"best_sellers"`
	Categories  []string         `json:"categories"`
}

// ProductInput 商品创建/更新输入
type ProductInput struct {
	Name        string
	Description string
	Price       models.Money
	Cost        models.Money
	Stock       int
	Category    string
	Image       string
	IsFeatured  bool
}

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, reviewRepo repository.ReviewRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

// List 商品列表（支持搜索、分类、精选过滤）
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Home 首页数据：精选、热销与分类
func (s *ProductService) Home(featuredLimit, bestSellerLimit int) (*CatalogHome, error) {
	featured, err := s.productRepo.ListFeatured(featuredLimit)
	if err != nil {
		return nil, err
	}
	bestSellers, err := s.productRepo.ListBestSellers(bestSellerLimit)
	if err != nil {
		return nil, err
	}
	categories, err := s.productRepo.ListCategories()
	if err != nil {
		return nil, err
	}
	return &CatalogHome{
		Featured:    featured,
		BestSellers: bestSellers,
		Categories:  categories,
	}, nil
}

// GetDetail 商品详情，附带评价与平均分
func (s *ProductService) GetDetail(id uint) (*ProductDetail, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	reviews, err := s.reviewRepo.ListByProduct(product.ID)
	if err != nil {
		return nil, err
	}
	count, err := s.reviewRepo.CountByProduct(product.ID)
	if err != nil {
		return nil, err
	}
	avg := 0.0
	if count > 0 {
		sum, err := s.reviewRepo.SumRatingByProduct(product.ID)
		if err != nil {
			return nil, err
		}
		avg = float64(sum) / float64(count)
	}

	return &ProductDetail{
		Product:       product,
		Reviews:       reviews,
		ReviewCount:   count,
		AverageRating: avg,
	}, nil
}

// GetByID 根据 ID 获取商品
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListCategories 分类列表
func (s *ProductService) ListCategories() ([]string, error) {
	return s.productRepo.ListCategories()
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	product := &models.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Cost:        input.Cost,
		Stock:       input.Stock,
		Category:    strings.TrimSpace(input.Category),
		Image:       strings.TrimSpace(input.Image),
		IsFeatured:  input.IsFeatured,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 更新商品（不回写累计销量）
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Price = input.Price
	product.Cost = input.Cost
	product.Stock = input.Stock
	product.Category = strings.TrimSpace(input.Category)
	if image := strings.TrimSpace(input.Image); image != "" {
		product.Image = image
	}
	product.IsFeatured = input.IsFeatured
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// ToggleFeatured 切换精选状态
func (s *ProductService) ToggleFeatured(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	product.IsFeatured = !product.IsFeatured
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}

func validateProductInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrProductNameRequired
	}
	if input.Price.IsNegative() || input.Cost.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}
