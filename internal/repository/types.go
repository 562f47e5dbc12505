package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	Category     string
	Search       string
	FeaturedOnly bool
	InStockOnly  bool
	OrderBy      string
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	CustomerID  uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// CustomerListFilter 查询顾客列表的过滤条件
type CustomerListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	IsActive *bool
}
