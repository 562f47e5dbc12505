package public

import (
	"errors"

	"github.com/toybox-next/internal/constants"
	"github.com/toybox-next/internal/http/response"
	"github.com/toybox-next/internal/i18n"
	"github.com/toybox-next/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Locale   string `json:"locale"`
}

type customerLoginRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

type updateProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Register 客户注册
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	customer, err := h.CustomerAuthService.Register(service.RegisterCustomerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
		Locale:   req.Locale,
	})
	if err != nil {
		if errors.Is(err, service.ErrPasswordPolicy) {
			respondPasswordPolicyError(c, err)
			return
		}
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrEmailExists, code: response.CodeConflict, key: "error.email_exists"},
		}, response.CodeInternal, "error.internal")
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "msg.register_success"), customer)
}

// Login 客户登录，按配置校验图形验证码
func (h *Handler) Login(c *gin.Context) {
	var req customerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CaptchaService.Verify(constants.CaptchaSceneCustomerLogin, service.CaptchaVerifyPayload{
		CaptchaID:   req.CaptchaID,
		CaptchaCode: req.CaptchaCode,
	}); err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrCaptchaRequired, code: response.CodeBadRequest, key: "error.captcha_required"},
			{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, key: "error.captcha_invalid"},
		}, response.CodeInternal, "error.internal")
		return
	}

	customer, token, expiresAt, err := h.CustomerAuthService.Login(req.Email, req.Password)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.invalid_credentials"},
			{target: service.ErrAccountDisabled, code: response.CodeForbidden, key: "error.account_disabled"},
		}, response.CodeInternal, "error.internal")
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.Sprintf(locale, "msg.login_success", customer.Name), gin.H{
		"token":      token,
		"expires_at": expiresAt,
		"customer":   customer,
	})
}

// Profile 当前客户资料
func (h *Handler) Profile(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	customer, err := h.CustomerAuthService.GetProfile(customerID)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.customer_not_found"},
		}, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, customer)
}

// UpdateProfile 更新当前客户资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	customerID, ok := getCustomerID(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	customer, err := h.CustomerAuthService.UpdateProfile(customerID, req.Name, req.Phone, req.Address)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.customer_not_found"},
		}, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, customer)
}

// respondPasswordPolicyError 把密码策略错误翻译成带参数的提示
func respondPasswordPolicyError(c *gin.Context, err error) {
	var policyErr interface {
		Key() string
		Args() []interface{}
	}
	if errors.As(err, &policyErr) {
		locale := i18n.ResolveLocale(c)
		response.Error(c, response.CodeBadRequest, i18n.Sprintf(locale, policyErr.Key(), policyErr.Args()...))
		return
	}
	respondError(c, response.CodeBadRequest, "error.password_policy", err)
}
