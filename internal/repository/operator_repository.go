package repository

import (
	"errors"
	"time"

	"github.com/toybox-next/internal/models"

	"gorm.io/gorm"
)

// OperatorRepository 运营账号数据访问接口
type OperatorRepository interface {
	GetByID(id uint) (*models.Operator, error)
	GetByUsername(username string) (*models.Operator, error)
	Create(operator *models.Operator) error
	UpdatePasswordHash(id uint, hash string) error
	TouchLastLogin(id uint, at time.Time) error
}

// GormOperatorRepository GORM 实现
type GormOperatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository 创建运营账号仓库
func NewOperatorRepository(db *gorm.DB) *GormOperatorRepository {
	return &GormOperatorRepository{db: db}
}

// GetByID 根据 ID 获取运营账号
func (r *GormOperatorRepository) GetByID(id uint) (*models.Operator, error) {
	var operator models.Operator
	if err := r.db.First(&operator, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &operator, nil
}

// GetByUsername 根据账号获取运营账号
func (r *GormOperatorRepository) GetByUsername(username string) (*models.Operator, error) {
	var operator models.Operator
	err := r.db.Where("username = ?", username).First(&operator).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &operator, nil
}

// Create 创建运营账号
func (r *GormOperatorRepository) Create(operator *models.Operator) error {
	return r.db.Create(operator).Error
}

// UpdatePasswordHash 更新密码哈希
func (r *GormOperatorRepository) UpdatePasswordHash(id uint, hash string) error {
	return r.db.Model(&models.Operator{}).Where("id = ?", id).Update("password_hash", hash).Error
}

// TouchLastLogin 记录最后登录时间
func (r *GormOperatorRepository) TouchLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.Operator{}).Where("id = ?", id).Update("last_login_at", at).Error
}
