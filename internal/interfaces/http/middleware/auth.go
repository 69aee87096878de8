package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wallet-manager.backend/pkg/crypto"
)

// APIKeyHeader is the header carrying the service API key
const APIKeyHeader = "X-API-Key"

// APIKeyAuth verifies the X-API-Key header against the configured bcrypt
// hash. The service has a single operator-facing key, not user accounts.
func APIKeyAuth(apiKeyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" || apiKeyHash == "" || !crypto.CheckAPIKey(key, apiKeyHash) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Missing or invalid API key",
			})
			return
		}
		c.Next()
	}
}
