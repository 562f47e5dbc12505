package admin

import (
	"github.com/toybox-next/internal/http/response"
	"github.com/toybox-next/internal/i18n"
	"github.com/toybox-next/internal/service"

	"github.com/gin-gonic/gin"
)

type testEmailRequest struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendTestEmail 用当前 SMTP 配置发送一封测试邮件
func (h *Handler) SendTestEmail(c *gin.Context) {
	var req testEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.EmailService.SendCustomEmail(req.To, req.Subject, req.Body); err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrEmailServiceDisabled, code: response.CodeBadRequest, key: "error.email_disabled"},
			{target: service.ErrEmailServiceNotConfigured, code: response.CodeBadRequest, key: "error.email_not_configured"},
			{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
		}, response.CodeInternal, "error.email_send_failed")
		return
	}

	requestLog(c).Infow("test_email_sent", "to", req.To)
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "msg.email_test_sent"), gin.H{"sent": true})
}
