package public

import (
	"github.com/toybox-next/internal/constants"
	"github.com/toybox-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetStoreConfig 店铺公开配置
func (h *Handler) GetStoreConfig(c *gin.Context) {
	store := h.Config.Store
	response.Success(c, gin.H{
		"name":            store.Name,
		"currency":        store.Currency,
		"whatsapp_number": store.WhatsAppNumber,
		"default_locale":  store.DefaultLocale,
		"captcha": gin.H{
			"customer_login": h.CaptchaService.Required(constants.CaptchaSceneCustomerLogin),
		},
	})
}
