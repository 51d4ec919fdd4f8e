package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GouravKumar19/slooze/configs"
	"github.com/GouravKumar19/slooze/pkg/resp"
	"github.com/GouravKumar19/slooze/utils"
)

// AuthMiddleware verifies the bearer token and (when given) enforces a role
// allow-list. Claims end up on the gin context for handlers downstream.
func AuthMiddleware(cfg *configs.Config, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.VerifyToken(tokenStr, cfg.JWTSecret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		utils.SetClaims(c, claims)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
