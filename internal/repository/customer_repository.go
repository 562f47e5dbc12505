package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/toybox-next/internal/models"

	"gorm.io/gorm"
)

// CustomerRepository 顾客数据访问接口
type CustomerRepository interface {
	GetByID(id uint) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	CountByEmail(email string) (int64, error)
	List(filter CustomerListFilter) ([]models.Customer, int64, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	SetActive(id uint, active bool) error
	TouchLastLogin(id uint, at time.Time) error
}

// GormCustomerRepository GORM 实现
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建顾客仓库
func NewCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// GetByID 根据 ID 获取顾客
func (r *GormCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// GetByEmail 根据邮箱获取顾客
func (r *GormCustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// CountByEmail 统计邮箱占用数量
func (r *GormCustomerRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Customer{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// List 顾客列表
func (r *GormCustomerRepository) List(filter CustomerListFilter) ([]models.Customer, int64, error) {
	var customers []models.Customer

	query := r.db.Model(&models.Customer{})
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// Create 创建顾客
func (r *GormCustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// Update 更新顾客
func (r *GormCustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// SetActive 启用或停用顾客账号
func (r *GormCustomerRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&models.Customer{}).Where("id = ?", id).Update("is_active", active).Error
}

// TouchLastLogin 记录最后登录时间
func (r *GormCustomerRepository) TouchLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.Customer{}).Where("id = ?", id).Update("last_login_at", at).Error
}
