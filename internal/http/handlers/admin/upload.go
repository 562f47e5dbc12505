package admin

import (
	"github.com/toybox-next/internal/http/response"
	"github.com/toybox-next/internal/service"

	"github.com/gin-gonic/gin"
)

// Upload 上传商品图片等静态资源
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	scene := c.DefaultPostForm("scene", "common")
	path, err := h.UploadService.SaveFile(file, scene)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrUploadTooLarge, code: response.CodeBadRequest, key: "error.upload_too_large"},
			{target: service.ErrUploadExtensionDenied, code: response.CodeBadRequest, key: "error.upload_extension_denied"},
			{target: service.ErrUploadTypeDenied, code: response.CodeBadRequest, key: "error.upload_type_denied"},
		}, response.CodeInternal, "error.internal")
		return
	}

	requestLog(c).Infow("file_uploaded",
		"scene", scene,
		"path", path,
	)
	response.Success(c, gin.H{"path": path})
}
