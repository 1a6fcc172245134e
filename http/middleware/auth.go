package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tnqbao/gau-photo-service/config"
	"github.com/tnqbao/gau-photo-service/utils"
)

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(cfg *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := utils.ExtractToken(c)
		if tokenStr == "" {
			utils.JSON401(c, "Authorization required")
			c.Abort()
			return
		}

		token, err := utils.ParseToken(tokenStr, cfg)
		if err != nil || !token.Valid {
			utils.JSON401(c, "Invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSON401(c, "Invalid token claims")
			c.Abort()
			return
		}

		if err := utils.InjectClaimsToContext(c, claims); err != nil {
			utils.JSON401(c, err.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuthMiddleware injects the user when a valid token is present and
// stays silent otherwise. Read endpoints use it for the liked_by_user field.
func OptionalAuthMiddleware(cfg *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := utils.ExtractToken(c)
		if tokenStr == "" {
			c.Next()
			return
		}

		token, err := utils.ParseToken(tokenStr, cfg)
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			_ = utils.InjectClaimsToContext(c, claims)
		}

		c.Next()
	}
}
