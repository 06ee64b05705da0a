package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/pkg/auth"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *AuthMiddleware, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	m := NewAuthMiddleware(jwtService)
	router := gin.New()
	return router, m, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, id int64, role models.RoleType) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.Account{ID: id, Name: "테스트", Role: role})
	require.NoError(t, err)
	return token
}

func TestSessionAuthRejectsMissingToken(t *testing.T) {
	router, m, _ := setupTestRouter(t)
	router.GET("/protected", m.SessionAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthAcceptsBearerHeader(t *testing.T) {
	router, m, jwtService := setupTestRouter(t)
	router.GET("/protected", m.SessionAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"accountId": SessionAccountID(c), "role": string(SessionRole(c))})
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, 7, models.RoleTeacher))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accountId":7`)
	assert.Contains(t, rec.Body.String(), `"role":"TEACHER"`)
}

func TestSessionAuthAcceptsCookie(t *testing.T) {
	router, m, jwtService := setupTestRouter(t)
	router.GET("/protected", m.SessionAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: tokenFor(t, jwtService, 3, models.RoleAdmin)})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionAuthRejectsExpiredToken(t *testing.T) {
	router, m, _ := setupTestRouter(t)
	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "middleware-test-secret",
		TokenExp:  -time.Minute,
	})
	router.GET("/protected", m.SessionAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, expiredService, 1, models.RoleAdmin))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestStaffOnlyBlocksMobileRoles(t *testing.T) {
	router, m, jwtService := setupTestRouter(t)
	router.GET("/staff", m.SessionAuth(), m.StaffOnly(), func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := []struct {
		role models.RoleType
		want int
	}{
		{models.RoleAdmin, http.StatusOK},
		{models.RoleTeacher, http.StatusOK},
		{models.RoleDesk, http.StatusOK},
		{models.RoleStudent, http.StatusForbidden},
		{models.RoleParent, http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/staff", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, 1, tc.role))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, tc.want, rec.Code, "role %s", tc.role)
	}
}

func TestRoleRequiredGuardsMobileSurface(t *testing.T) {
	router, m, jwtService := setupTestRouter(t)
	router.GET("/mobile", m.SessionAuth(), m.RoleRequired(models.RoleStudent, models.RoleParent), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/mobile", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, 1, models.RoleParent))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/mobile", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, 1, models.RoleAdmin))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
