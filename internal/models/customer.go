package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer 顾客账号表
type Customer struct {
	ID           uint           `gorm:"primarykey" json:"id"`               // 主键
	Name         string         `gorm:"not null" json:"name"`               // 姓名
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`  // 邮箱
	PasswordHash string         `gorm:"not null" json:"-"`                  // 密码哈希（不返回给前端）
	Phone        string         `gorm:"type:varchar(32)" json:"phone"`      // 联系电话
	Address      string         `gorm:"type:text" json:"address"`           // 收货地址
	Locale       string         `gorm:"default:'ar-EG'" json:"locale"`      // 语言偏好
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"` // 账号是否可用
	LastLoginAt  *time.Time     `json:"last_login_at"`                      // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`            // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                         // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                     // 软删除时间
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
