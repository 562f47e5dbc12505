package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// OrderLine 订单行快照（下单时固化名称、售价与成本）
type OrderLine struct {
	ProductID uint   `json:"product_id"` // 商品ID
	Name      string `json:"name"`       // 商品名称快照
	Price     Money  `json:"price"`      // 售价快照
	Cost      Money  `json:"cost"`       // 成本快照
	Image     string `json:"image"`      // 图片快照
	Quantity  int    `json:"quantity"`   // 数量
}

// Subtotal 行小计
func (l OrderLine) Subtotal() Money {
	return l.Price.MulInt(l.Quantity)
}

// LineProfit 行利润（按快照价差计算，后续改价不影响历史订单）
func (l OrderLine) LineProfit() Money {
	return l.Price.SubMoney(l.Cost).MulInt(l.Quantity)
}

// OrderLines 订单行集合，整体以 JSON 存储
type OrderLines []OrderLine

// Value 用于数据库写入
func (ls OrderLines) Value() (driver.Value, error) {
	if ls == nil {
		ls = OrderLines{}
	}
	return json.Marshal(ls)
}

// Scan 用于数据库读取
func (ls *OrderLines) Scan(value interface{}) error {
	if value == nil {
		*ls = OrderLines{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, ls)
	case string:
		return json.Unmarshal([]byte(v), ls)
	default:
		return errors.New("unsupported type for OrderLines")
	}
}

// Order 订单表
type Order struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                // 主键
	OrderNo      string         `gorm:"uniqueIndex;not null" json:"order_no"`                // 订单编号
	CustomerID   *uint          `gorm:"index" json:"customer_id,omitempty"`                  // 顾客ID（游客下单为空）
	CustomerName string         `gorm:"not null" json:"customer_name"`                       // 收货人姓名
	Phone        string         `gorm:"type:varchar(32);not null" json:"phone"`              // 联系电话
	Email        string         `gorm:"index" json:"email,omitempty"`                        // 联系邮箱
	Address      string         `gorm:"type:text;not null" json:"address"`                   // 收货地址
	Lines        OrderLines     `gorm:"type:json;not null" json:"lines"`                     // 订单行快照
	Total        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"`  // 订单总额
	Status       string         `gorm:"index;not null" json:"status"`                        // 订单状态
	Locale       string         `gorm:"type:varchar(20)" json:"locale,omitempty"`            // 下单语言
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                             // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// ItemCount 订单内商品总件数
func (o *Order) ItemCount() int {
	total := 0
	for _, line := range o.Lines {
		total += line.Quantity
	}
	return total
}

// Profit 订单利润（仅基于快照，后续改价不影响）
func (o *Order) Profit() Money {
	profit := ZeroMoney()
	for _, line := range o.Lines {
		profit = profit.AddMoney(line.LineProfit())
	}
	return profit
}
