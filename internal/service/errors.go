package service

import "errors"

// 服务层哨兵错误，处理器通过 errors.Is 映射为响应码
var (
	ErrNotFound                  = errors.New("resource not found")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrInvalidPassword           = errors.New("invalid password")
	ErrAccountDisabled           = errors.New("account disabled")
	ErrEmailExists               = errors.New("email already registered")
	ErrPasswordPolicy            = errors.New("password does not meet policy")
	ErrProductNotFound           = errors.New("product not found")
	ErrInvalidCartItem           = errors.New("invalid cart item")
	ErrCartEmpty                 = errors.New("cart is empty")
	ErrShippingInfoRequired      = errors.New("shipping info required")
	ErrOrderNotFound             = errors.New("order not found")
	ErrInvalidOrderStatus        = errors.New("invalid order status")
	ErrOrderStatusTransition     = errors.New("order status transition not allowed")
	ErrReviewExists              = errors.New("review already exists")
	ErrInvalidRating             = errors.New("invalid rating")
	ErrWishlistDuplicate         = errors.New("already in wishlist")
	ErrInvalidPrice              = errors.New("invalid price")
	ErrProductNameRequired       = errors.New("product name required")
	ErrCaptchaRequired           = errors.New("captcha required")
	ErrCaptchaInvalid            = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid      = errors.New("captcha config invalid")
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrUploadTooLarge            = errors.New("upload too large")
	ErrUploadExtensionDenied     = errors.New("upload extension denied")
	ErrUploadTypeDenied          = errors.New("upload type denied")
)
