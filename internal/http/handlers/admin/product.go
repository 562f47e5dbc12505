package admin

import (
	"strconv"

	handlershared "github.com/toybox-next/internal/http/handlers/shared"
	"github.com/toybox-next/internal/http/response"
	"github.com/toybox-next/internal/models"
	"github.com/toybox-next/internal/repository"
	"github.com/toybox-next/internal/service"

	"github.com/gin-gonic/gin"
)

type productRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	Cost        string `json:"cost"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	IsFeatured  bool   `json:"is_featured"`
}

func (h *Handler) bindProductInput(c *gin.Context, req productRequest) (service.ProductInput, bool) {
	price, err := models.NewMoneyFromString(req.Price)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.price_invalid", err)
		return service.ProductInput{}, false
	}
	cost := models.ZeroMoney()
	if req.Cost != "" {
		if cost, err = models.NewMoneyFromString(req.Cost); err != nil {
			respondError(c, response.CodeBadRequest, "error.price_invalid", err)
			return service.ProductInput{}, false
		}
	}
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Cost:        cost,
		Stock:       req.Stock,
		Category:    req.Category,
		Image:       req.Image,
		IsFeatured:  req.IsFeatured,
	}, true
}

func productErrorRules() []mappedHandlerError {
	return []mappedHandlerError{
		{target: service.ErrProductNameRequired, code: response.CodeBadRequest, key: "error.bad_request"},
		{target: service.ErrInvalidPrice, code: response.CodeBadRequest, key: "error.price_invalid"},
		{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	}
}

// ListProducts 商品管理列表，含缺货与未上架精选商品
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	filter := repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"items": products}, response.BuildPagination(page, pageSize, total))
}

// CreateProduct 新增商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input, ok := h.bindProductInput(c, req)
	if !ok {
		return
	}

	product, err := h.ProductService.Create(input)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules(), response.CodeInternal, "error.internal")
		return
	}

	requestLog(c).Infow("product_created",
		"product_id", product.ID,
		"name", product.Name,
	)
	response.Success(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input, ok := h.bindProductInput(c, req)
	if !ok {
		return
	}

	product, err := h.ProductService.Update(uint(id), input)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules(), response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, product)
}

// ToggleProductFeatured 切换商品精选状态
func (h *Handler) ToggleProductFeatured(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	product, err := h.ProductService.ToggleFeatured(uint(id))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
		}, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.ProductService.Delete(uint(id)); err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
		}, response.CodeInternal, "error.internal")
		return
	}

	requestLog(c).Infow("product_deleted", "product_id", id)
	response.Success(c, gin.H{"deleted": true})
}
