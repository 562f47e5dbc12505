package public

import (
	"github.com/toybox-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GenerateCaptcha 生成图形验证码，返回验证码 ID 与 base64 图片
func (h *Handler) GenerateCaptcha(c *gin.Context) {
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, challenge)
}
