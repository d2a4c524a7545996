package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/middleware"
	"backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":          "00000000-0000-0000-0000-000000000001",
		"role":         role,
		"departmentId": "cutting",
		"exp":          time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.GetJWTSecret())
	require.NoError(t, err)
	return token
}

func buildTestRouter(gate gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", gate, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":       c.GetString(middleware.CtxUserID),
			"departmentID": c.GetString(middleware.CtxDepartmentID),
		})
	})
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAdminAcceptsAdminRoles(t *testing.T) {
	router := buildTestRouter(middleware.RequireAdmin())

	for _, role := range []string{
		model.RoleAdmin,
		model.RoleSuperAdmin,
		model.RoleDeptAdmin,
	} {
		w := doRequest(router, signTestToken(t, role))
		assert.Equal(t, http.StatusOK, w.Code, "role %q should pass the admin gate", role)
	}
}

func TestRequireAdminAcceptsLegacySpellings(t *testing.T) {
	router := buildTestRouter(middleware.RequireAdmin())

	// Tokens minted before the role rename carry spaced spellings and
	// must keep working.
	for _, role := range []string{"SUPER ADMIN", "DEPT ADMIN"} {
		w := doRequest(router, signTestToken(t, role))
		assert.Equal(t, http.StatusOK, w.Code, "legacy role %q should pass the admin gate", role)
	}
}

func TestRequireAdminRejectsUserRole(t *testing.T) {
	router := buildTestRouter(middleware.RequireAdmin())

	w := doRequest(router, signTestToken(t, model.RoleUser))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireSuperAdminRejectsPlainAdmin(t *testing.T) {
	router := buildTestRouter(middleware.RequireSuperAdmin())

	w := doRequest(router, signTestToken(t, model.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, signTestToken(t, model.RoleSuperAdmin))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, signTestToken(t, "SUPER ADMIN"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	router := buildTestRouter(middleware.Authenticate())

	w := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	router := buildTestRouter(middleware.Authenticate())

	w := doRequest(router, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateLoadsClaimsIntoContext(t *testing.T) {
	router := buildTestRouter(middleware.RequireAdmin())

	w := doRequest(router, signTestToken(t, model.RoleAdmin))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "00000000-0000-0000-0000-000000000001")
	assert.Contains(t, w.Body.String(), "cutting")
}
