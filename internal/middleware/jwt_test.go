package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/hanafi-dev/sentra-portal-api/internal/middleware"
	"github.com/hanafi-dev/sentra-portal-api/internal/models"
)

const testSecret = "test-secret"

func protectedApp(t *testing.T, handlers ...fiber.Handler) *fiber.App {
	t.Helper()

	app := fiber.New()
	chain := append([]fiber.Handler{middleware.JWTProtected(testSecret)}, handlers...)
	chain = append(chain, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   c.Locals("user_id"),
			"user_role": c.Locals("user_role"),
		})
	})
	app.Get("/protected", chain...)
	return app
}

func TestJWTProtectedRejectsMissingHeader(t *testing.T) {
	app := protectedApp(t)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestJWTProtectedRejectsGarbageToken(t *testing.T) {
	app := protectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestJWTProtectedAcceptsIssuedToken(t *testing.T) {
	app := protectedApp(t)

	token, err := middleware.IssueToken(testSecret, models.User{
		ID:   "u1",
		Name: "Admin",
		Role: models.RoleAdmin,
	}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestJWTProtectedRejectsExpiredToken(t *testing.T) {
	app := protectedApp(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "u1",
		"role": "admin",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	token, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestRequireRoleFiltersByClaimRole(t *testing.T) {
	app := protectedApp(t, middleware.RequireRole("admin", "principal"))

	adminToken, err := middleware.IssueToken(testSecret, models.User{ID: "u1", Role: models.RoleAdmin}, time.Hour)
	require.NoError(t, err)
	studentToken, err := middleware.IssueToken(testSecret, models.User{ID: "u2", Role: models.RoleStudent}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	res, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, res.StatusCode)
}
