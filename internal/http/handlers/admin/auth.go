package admin

import (
	"errors"

	"github.com/toybox-next/internal/constants"
	"github.com/toybox-next/internal/http/response"
	"github.com/toybox-next/internal/i18n"
	"github.com/toybox-next/internal/service"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Login 运营后台登录，按配置校验图形验证码
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CaptchaService.Verify(constants.CaptchaSceneAdminLogin, service.CaptchaVerifyPayload{
		CaptchaID:   req.CaptchaID,
		CaptchaCode: req.CaptchaCode,
	}); err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrCaptchaRequired, code: response.CodeBadRequest, key: "error.captcha_required"},
			{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, key: "error.captcha_invalid"},
		}, response.CodeInternal, "error.internal")
		return
	}

	operator, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.invalid_credentials"},
		}, response.CodeInternal, "error.internal")
		return
	}

	requestLog(c).Infow("admin_login",
		"operator_id", operator.ID,
		"username", operator.Username,
	)
	response.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"operator":   operator,
	})
}

// Me 当前运营账号信息
func (h *Handler) Me(c *gin.Context) {
	operatorID, ok := getOperatorID(c)
	if !ok {
		return
	}

	operator, err := h.AuthService.GetByID(operatorID)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
		}, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, operator)
}

// ChangePassword 修改运营账号密码
func (h *Handler) ChangePassword(c *gin.Context) {
	operatorID, ok := getOperatorID(c)
	if !ok {
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthService.ChangePassword(operatorID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrPasswordPolicy) {
			respondError(c, response.CodeBadRequest, "error.password_policy", nil)
			return
		}
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrInvalidPassword, code: response.CodeBadRequest, key: "error.invalid_credentials"},
			{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
		}, response.CodeInternal, "error.internal")
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "msg.password_changed"), nil)
}
