package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rmacedo/hoje-e-onde/internal/helpers"
	"github.com/rmacedo/hoje-e-onde/internal/models"
)

// Identity is the authenticated caller, carried explicitly in the request
// context instead of ambient session state.
type Identity struct {
	UserID uint
	Role   string
}

// ParseIdentity extracts and validates the bearer token, if any. The second
// return value is false for anonymous or invalid requests.
func ParseIdentity(c *gin.Context) (Identity, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return Identity{}, false
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, false
	}
	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return Identity{}, false
	}
	role, _ := claims["role"].(string)

	return Identity{UserID: uint(userID), Role: role}, true
}

func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := ParseIdentity(c)
		if !ok {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Missing or invalid token.")
			c.Abort()
			return
		}
		c.Set("user_id", identity.UserID)
		c.Set("role", identity.Role)
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != models.RoleAdmin {
			helpers.RespondWithError(c, http.StatusForbidden, "Acesso restrito a administradores.")
			c.Abort()
			return
		}
		c.Next()
	}
}
