package public

import (
	"strconv"

	"github.com/toybox-next/internal/http/response"
	"github.com/toybox-next/internal/i18n"
	"github.com/toybox-next/internal/service"

	"github.com/gin-gonic/gin"
)

type addReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ListReviews 商品评价列表
func (h *Handler) ListReviews(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	reviews, err := h.ReviewService.ListByProduct(uint(productID))
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"items": reviews})
}

// AddReview 发表商品评价，每个客户对同一商品仅一条
func (h *Handler) AddReview(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	review, err := h.ReviewService.Add(service.AddReviewInput{
		CustomerID: customerID,
		ProductID:  uint(productID),
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrInvalidRating, code: response.CodeBadRequest, key: "error.review_rating_invalid"},
			{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
			{target: service.ErrReviewExists, code: response.CodeConflict, key: "error.review_exists"},
		}, response.CodeInternal, "error.internal")
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "msg.review_added"), review)
}
