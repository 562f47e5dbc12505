package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                // 主键
	Name        string         `gorm:"not null;index" json:"name"`                          // 商品名称
	Description string         `gorm:"type:text" json:"description"`                        // 商品描述
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`  // 售价
	Cost        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"cost"`   // 成本价
	Stock       int            `gorm:"not null;default:0" json:"stock"`                     // 库存数量
	Category    string         `gorm:"type:varchar(100);index" json:"category"`             // 分类（自由文本）
	Image       string         `gorm:"type:varchar(255)" json:"image"`                      // 主图路径
	IsFeatured  bool           `gorm:"not null;default:false;index" json:"is_featured"`     // 是否精选
	SalesCount  int            `gorm:"not null;default:0;index" json:"sales_count"`         // 累计销量
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                          // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// UnitProfit 单件利润（售价 - 成本）
func (p *Product) UnitProfit() Money {
	return p.Price.SubMoney(p.Cost)
}

// TotalProfit 按累计销量计算的利润
func (p *Product) TotalProfit() Money {
	return p.UnitProfit().MulInt(p.SalesCount)
}

// TotalRevenue 按累计销量计算的营收
func (p *Product) TotalRevenue() Money {
	return p.Price.MulInt(p.SalesCount)
}

// TotalCost 按累计销量计算的成本
func (p *Product) TotalCost() Money {
	return p.Cost.MulInt(p.SalesCount)
}
