package admin

import (
	handlershared "github.com/toybox-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getOperatorID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "operator_id", "error.bad_request", "error.internal")
}
