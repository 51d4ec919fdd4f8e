package utils

import "github.com/gin-gonic/gin"

const claimsKey = "claims"

// SetClaims stashes verified session claims on the request context.
func SetClaims(c *gin.Context, claims *Claims) {
	c.Set(claimsKey, claims)
}

// CurrentClaims returns the verified session claims, or nil when the
// request was not authenticated.
func CurrentClaims(c *gin.Context) *Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

func CurrentUserID(c *gin.Context) uint {
	if claims := CurrentClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}
