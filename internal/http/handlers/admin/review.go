package admin

import (
	"strconv"

	"github.com/toybox-next/internal/http/response"
	"github.com/toybox-next/internal/service"

	"github.com/gin-gonic/gin"
)

// DeleteReview 删除违规或无效评价
func (h *Handler) DeleteReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.ReviewService.Remove(uint(id)); err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.review_not_found"},
		}, response.CodeInternal, "error.internal")
		return
	}

	requestLog(c).Infow("review_deleted", "review_id", id)
	response.Success(c, gin.H{"deleted": true})
}
