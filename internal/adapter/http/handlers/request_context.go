package handlers

import (
	"strings"

	"cardpay/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	headerUserID    = "X-User-ID"
	headerUserLogin = "X-User-Login"
	headerUserEmail = "X-User-Email"
	headerSessionID = "X-Session-ID"
)

// requestContextFrom reads the identity headers injected by the storefront
// edge. Missing headers produce a guest context, which is still a valid
// checkout caller.
func requestContextFrom(c *gin.Context) entities.RequestContext {
	return entities.RequestContext{
		UserID:    strings.TrimSpace(c.GetHeader(headerUserID)),
		UserLogin: strings.TrimSpace(c.GetHeader(headerUserLogin)),
		UserEmail: strings.TrimSpace(c.GetHeader(headerUserEmail)),
		SessionID: strings.TrimSpace(c.GetHeader(headerSessionID)),
	}
}
