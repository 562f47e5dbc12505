package public

import (
	"strconv"

	"github.com/toybox-next/internal/http/response"
	"github.com/toybox-next/internal/i18n"
	"github.com/toybox-next/internal/service"

	"github.com/gin-gonic/gin"
)

type addWishlistRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// ListWishlist 当前客户的心愿单
func (h *Handler) ListWishlist(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	entries, err := h.WishlistService.List(customerID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"items": entries})
}

// AddWishlistEntry 收藏商品，重复收藏返回冲突
func (h *Handler) AddWishlistEntry(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	var req addWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	entry, err := h.WishlistService.Add(customerID, req.ProductID)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
			{target: service.ErrWishlistDuplicate, code: response.CodeConflict, key: "error.wishlist_duplicate"},
		}, response.CodeInternal, "error.internal")
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "msg.added_to_wishlist"), entry)
}

// RemoveWishlistEntry 取消收藏
func (h *Handler) RemoveWishlistEntry(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.WishlistService.Remove(customerID, uint(productID)); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "msg.removed_from_wishlist"), gin.H{"removed": true})
}
