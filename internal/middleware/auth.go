package middleware

import (
	"net/http"
	"os"
	"strings"

	"backend/internal/model"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func GetJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		secret = "default_super_secret_key" // Development fallback only — DO NOT use in production
	}
	return []byte(secret)
}

// SetTokenCookie sets the access token as an HttpOnly cookie
func SetTokenCookie(c *gin.Context, accessToken string) {
	sameSite := http.SameSiteLaxMode
	secure := false
	if os.Getenv("GIN_MODE") == "release" {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	c.SetSameSite(sameSite)
	c.SetCookie("access_token", accessToken, 3600*24, "/", "", secure, true)
}

// ClearTokenCookie removes the access token cookie
func ClearTokenCookie(c *gin.Context) {
	sameSite := http.SameSiteLaxMode
	secure := false
	if os.Getenv("GIN_MODE") == "release" {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	c.SetSameSite(sameSite)
	c.SetCookie("access_token", "", -1, "/", "", secure, true)
}

// Claims extracted from a validated token and stored on the gin context
const (
	CtxUserID       = "userID"
	CtxUserRole     = "userRole"
	CtxDepartmentID = "departmentID"
)

// Authenticate validates the JWT (cookie first, Authorization header
// fallback) and stores userID/role/departmentID on the context. Any valid
// role passes.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := parseToken(c); !ok {
			return
		}
		c.Next()
	}
}

// RequireRole validates the JWT and checks the user's role against the
// allowed list
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return requireRoleFn(func(role string) bool {
		for _, allowed := range allowedRoles {
			if role == allowed {
				return true
			}
		}
		return false
	})
}

// RequireAdmin passes ADMIN, SUPER_ADMIN and DEPT_ADMIN, including the two
// legacy spaced spellings still found in old tokens
func RequireAdmin() gin.HandlerFunc {
	return requireRoleFn(model.IsAdminRole)
}

// RequireSuperAdmin passes SUPER_ADMIN only (legacy spelling included)
func RequireSuperAdmin() gin.HandlerFunc {
	return requireRoleFn(model.IsSuperAdminRole)
}

func requireRoleFn(allowed func(role string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c)
		if !ok {
			return
		}

		role, _ := claims[CtxUserRole].(string)
		if !allowed(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: insufficient permissions"))
			return
		}

		c.Next()
	}
}

// parseToken validates the request's JWT and loads claims into the
// context. Aborts the request and returns false on any failure.
func parseToken(c *gin.Context) (map[string]interface{}, bool) {
	// Try cookie first, fallback to Authorization header
	tokenString, cookieErr := c.Cookie("access_token")
	if cookieErr != nil || tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return nil, false
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <token>'"))
			return nil, false
		}
		tokenString = parts[1]
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return GetJWTSecret(), nil
	})

	if err != nil || !token.Valid {
		msg := "Invalid token"
		if err != nil {
			msg += ": " + err.Error()
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, msg))
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token claims"))
		return nil, false
	}

	role, ok := claims["role"].(string)
	if !ok {
		c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Role not found in token"))
		return nil, false
	}

	userID, _ := claims["sub"].(string)
	departmentID, _ := claims["departmentId"].(string)

	c.Set(CtxUserID, userID)
	c.Set(CtxUserRole, role)
	c.Set(CtxDepartmentID, departmentID)

	return map[string]interface{}{
		CtxUserID:       userID,
		CtxUserRole:     role,
		CtxDepartmentID: departmentID,
	}, true
}
