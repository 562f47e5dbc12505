package public

import (
	"errors"
	"strconv"

	handlershared "github.com/toybox-next/internal/http/handlers/shared"
	"github.com/toybox-next/internal/http/response"
	"github.com/toybox-next/internal/repository"
	"github.com/toybox-next/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	homeFeaturedLimit   = 4
	homeBestSellerLimit = 6
)

// Home 店铺首页：精选商品、热销榜与分类
func (h *Handler) Home(c *gin.Context) {
	home, err := h.ProductService.Home(homeFeaturedLimit, homeBestSellerLimit)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, home)
}

// ListProducts 商品列表，支持搜索、分类与精选过滤
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		Search:       c.Query("search"),
		Category:     c.Query("category"),
		FeaturedOnly: c.Query("featured") == "1" || c.Query("featured") == "true",
		InStockOnly:  c.Query("in_stock") == "1" || c.Query("in_stock") == "true",
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"items": products}, response.BuildPagination(page, pageSize, total))
}

// GetProduct 商品详情（含评价与平均分）
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	detail, err := h.ProductService.GetDetail(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	if customerID := optionalCustomerID(c); customerID != nil {
		inWishlist, err := h.WishlistService.Has(*customerID, uint(id))
		if err != nil {
			respondError(c, response.CodeInternal, "error.internal", err)
			return
		}
		detail.InWishlist = inWishlist
	}
	response.Success(c, detail)
}

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.ProductService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}
