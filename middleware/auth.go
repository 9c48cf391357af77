package middleware

import (
	"net/http"
	"strings"
	"time"

	"hotel-booking/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxUserID  = "user_id"
	ctxIsStaff = "is_staff"
	tokenTTL   = 24 * time.Hour
)

// GenerateToken signs a 24h JWT carrying the user identity.
func GenerateToken(secret string, user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  float64(user.ID),
		"username": user.Username,
		"is_staff": user.IsStaff,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseToken(secret, raw string) (jwt.MapClaims, bool) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func setIdentity(c *gin.Context, claims jwt.MapClaims) {
	if id, ok := claims["user_id"].(float64); ok {
		c.Set(ctxUserID, uint(id))
	}
	if staff, ok := claims["is_staff"].(bool); ok {
		c.Set(ctxIsStaff, staff)
	}
}

// AuthOptional attaches the caller's identity when a valid token is
// present and stays silent otherwise. Used where guest checkout is
// allowed.
func AuthOptional(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := bearerToken(c); raw != "" {
			if claims, ok := parseToken(secret, raw); ok {
				setIdentity(c, claims)
			}
		}
	}
}

// AuthRequired rejects requests without a valid token.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
			return
		}
		claims, ok := parseToken(secret, raw)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid or expired token"})
			return
		}
		setIdentity(c, claims)
	}
}

// StaffRequired rejects non-staff callers.
func StaffRequired(secret string) gin.HandlerFunc {
	auth := AuthRequired(secret)
	return func(c *gin.Context) {
		auth(c)
		if c.IsAborted() {
			return
		}
		if !IsStaff(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "staff access required"})
		}
	}
}

// CurrentUserID returns the authenticated user's id, or nil for
// anonymous callers.
func CurrentUserID(c *gin.Context) *uint {
	if v, exists := c.Get(ctxUserID); exists {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}

func IsStaff(c *gin.Context) bool {
	if v, exists := c.Get(ctxIsStaff); exists {
		if staff, ok := v.(bool); ok {
			return staff
		}
	}
	return false
}
