package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/pkg/auth"
)

// Context keys set by SessionAuth.
const (
	ContextAccountID = "accountID"
	ContextRole      = "role"
	ContextName      = "name"
)

// AuthMiddleware validates sessions on protected routes.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// SessionAuth accepts a session from either surface: the httpOnly
// cookie the browser carries, or a Bearer header from the mobile app.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		if cookie, err := c.Cookie(auth.SessionCookieName); err == nil && cookie != "" {
			tokenString = cookie
		} else if header := c.GetHeader("Authorization"); header != "" {
			extracted, err := auth.ExtractBearerToken(header)
			if err != nil {
				abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token format")
				return
			}
			tokenString = extracted
		}

		if tokenString == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextName, claims.Name)
		c.Next()
	}
}

// RoleRequired allows only the listed roles past.
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		roleStr, _ := role.(string)
		for _, allowed := range roles {
			if roleStr == string(allowed) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})
	}
}

// StaffOnly allows any staff role past.
func (m *AuthMiddleware) StaffOnly() gin.HandlerFunc {
	return m.RoleRequired(models.StaffRoles...)
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{
		Error: dto.NewErrorDetail(code, message),
	})
}

// SessionAccountID reads the authenticated account ID from the context.
func SessionAccountID(c *gin.Context) int64 {
	id, _ := c.Get(ContextAccountID)
	accountID, _ := id.(int64)
	return accountID
}

// SessionRole reads the authenticated role from the context.
func SessionRole(c *gin.Context) models.RoleType {
	role, _ := c.Get(ContextRole)
	roleStr, _ := role.(string)
	return models.RoleType(roleStr)
}

// SessionName reads the authenticated display name from the context.
func SessionName(c *gin.Context) string {
	name, _ := c.Get(ContextName)
	nameStr, _ := name.(string)
	return nameStr
}
