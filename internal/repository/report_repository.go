package repository

import (
	"time"

	"github.com/toybox-next/internal/models"

	"gorm.io/gorm"
)

// ReportRepository 报表数据访问接口。
// 金额汇总在服务层用 decimal 计算，这里只负责取数，避免各数据库对
// decimal 列做 SUM 时的精度差异。
type ReportRepository interface {
	CountOrders() (int64, error)
	CountOrdersByStatus(status string) (int64, error)
	CountCustomers() (int64, error)
	CountProducts() (int64, error)
	ListOrdersByStatuses(statuses []string) ([]models.Order, error)
	ListOrdersSince(from time.Time) ([]models.Order, error)
	ListRecentOrders(limit int) ([]models.Order, error)
	ListTopProducts(limit int) ([]models.Product, error)
}

// GormReportRepository GORM 实现
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository 创建报表仓库
func NewReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// CountOrders 订单总数
func (r *GormReportRepository) CountOrders() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountOrdersByStatus 指定状态的订单数
func (r *GormReportRepository) CountOrdersByStatus(status string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountCustomers 顾客总数
func (r *GormReportRepository) CountCustomers() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountProducts 商品总数
func (r *GormReportRepository) CountProducts() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListOrdersByStatuses 按状态集合取订单
func (r *GormReportRepository) ListOrdersByStatuses(statuses []string) ([]models.Order, error) {
	if len(statuses) == 0 {
		return []models.Order{}, nil
	}
	var orders []models.Order
	if err := r.db.Where("status IN ?", statuses).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOrdersSince 取某时间之后创建的订单
func (r *GormReportRepository) ListOrdersSince(from time.Time) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("created_at >= ?", from).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListRecentOrders 取最近创建的订单
func (r *GormReportRepository) ListRecentOrders(limit int) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListTopProducts 按累计销量取热销商品
func (r *GormReportRepository) ListTopProducts(limit int) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Model(&models.Product{}).Order("sales_count DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
