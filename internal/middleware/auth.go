package middleware

import (
	"strings"

	"ossu_arabic_backend/internal/config"
	"ossu_arabic_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// TryAuth resolves a bearer token into session claims when one is present.
// Requests without a token, or with a stale one, continue anonymously since
// most endpoints accept an explicit userId instead.
func TryAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString != "" {
			if claims, err := util.ParseSessionToken(tokenString, cfg.JWT.Secret); err == nil {
				c.Set(identityKey, claims)
			}
		}

		c.Next()
	}
}

// IdentityFromContext returns the session claims set by TryAuth, or nil.
func IdentityFromContext(c *gin.Context) *util.Claims {
	if v, ok := c.Get(identityKey); ok {
		if claims, ok := v.(*util.Claims); ok {
			return claims
		}
	}
	return nil
}
