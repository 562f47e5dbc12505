package public

import (
	"strings"

	handlershared "github.com/toybox-next/internal/http/handlers/shared"
	"github.com/toybox-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

func getContextUintWithKeys(c *gin.Context, key, invalidKey, typeInvalidKey string) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, key, invalidKey, typeInvalidKey)
}

func getCustomerID(c *gin.Context) (uint, bool) {
	return getContextUintWithKeys(c, "customer_id", "error.bad_request", "error.internal")
}

// optionalCustomerID 读取可能不存在的顾客身份（游客返回 nil）
func optionalCustomerID(c *gin.Context) *uint {
	value, exists := c.Get("customer_id")
	if !exists {
		return nil
	}
	if id, ok := value.(uint); ok && id > 0 {
		return &id
	}
	return nil
}

// getCartKey 读取中间件下发的购物车标识
func getCartKey(c *gin.Context) (string, bool) {
	value, exists := c.Get("cart_key")
	if !exists {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return "", false
	}
	key, ok := value.(string)
	if !ok || strings.TrimSpace(key) == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return "", false
	}
	return key, true
}
