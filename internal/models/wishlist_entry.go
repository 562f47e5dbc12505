package models

import (
	"time"

	"gorm.io/gorm"
)

// WishlistEntry 顾客收藏表
type WishlistEntry struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                                // 主键
	CustomerID uint           `gorm:"not null;uniqueIndex:idx_wishlist_customer_product" json:"customer_id"` // 顾客ID
	ProductID  uint           `gorm:"not null;uniqueIndex:idx_wishlist_customer_product" json:"product_id"`  // 商品ID
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                             // 创建时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                                      // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (WishlistEntry) TableName() string {
	return "wishlist_entries"
}
