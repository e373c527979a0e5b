package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"membership-backoffice/internal/domain/employee"
	"membership-backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxEmployeeIDKey   = "employee_id"
	ctxEmployeeRoleKey = "employee_role"
)

var roleHierarchy = map[employee.Role]int{
	employee.RoleViewer:   1,
	employee.RoleOperator: 2,
	employee.RoleAdmin:    3,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		employeeID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxEmployeeIDKey, employeeID)
		c.Set(ctxEmployeeRoleKey, role)
		c.Next()
	}
}

func hasMinimumRole(role, minRole employee.Role) bool {
	level, ok := roleHierarchy[role]
	minLevel, minOK := roleHierarchy[minRole]
	return ok && minOK && level >= minLevel
}

// RequireRoleAtLeast must run after RequireAuth().
func (m *AuthMiddleware) RequireRoleAtLeast(minRole employee.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetEmployeeRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetEmployeeID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxEmployeeIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetEmployeeRole(c *gin.Context) (employee.Role, bool) {
	v, exists := c.Get(ctxEmployeeRoleKey)
	if !exists {
		return "", false
	}

	role, ok := v.(employee.Role)
	return role, ok
}
