package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem 购物车项（加车时快照商品名称、价格与图片）
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                          // 主键
	CartKey   string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_key_product" json:"-"` // 购物车标识
	ProductID uint           `gorm:"not null;uniqueIndex:idx_cart_key_product" json:"product_id"`   // 商品ID
	Name      string         `gorm:"not null" json:"name"`                                          // 商品名称快照
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`            // 价格快照
	Image     string         `gorm:"type:varchar(255)" json:"image"`                                // 图片快照
	Quantity  int            `gorm:"not null" json:"quantity"`                                      // 数量
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                       // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                                    // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                                // 软删除时间
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}

// Subtotal 行小计（快照价格 × 数量）
func (i *CartItem) Subtotal() Money {
	return i.Price.MulInt(i.Quantity)
}
