package router

import (
	"crypto/subtle"
	"net/http"

	"wabiz/controllers"

	"github.com/gin-gonic/gin"
)

const ApiKeyHeader = "X-API-Key"

// APIKeyGate blocks every request whose X-API-Key differs from secret.
// The secret comes from configuration; there is no package-level copy.
func APIKeyGate(secret string) gin.HandlerFunc {
	expected := []byte(secret)
	return func(c *gin.Context) {
		given := c.GetHeader(ApiKeyHeader)
		if given == "" {
			controllers.RespondError(c, "acesso negado: API Key ausente", http.StatusForbidden)
			c.Abort()
			return
		}
		if subtle.ConstantTimeCompare([]byte(given), expected) != 1 {
			controllers.RespondError(c, "acesso negado: API Key inválida", http.StatusForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
