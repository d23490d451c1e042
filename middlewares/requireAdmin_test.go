package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Makena/storefront-api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return ctx, recorder
}

func TestRequireAdminAllowsAdmins(t *testing.T) {
	ctx, recorder := testContext(t)
	ctx.Set("user", jwt.MapClaims{"user_id": float64(1), "role": "admin"})

	middlewares.RequireAdmin()(ctx)

	assert.False(t, ctx.IsAborted())
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireAdminRejectsNonAdmins(t *testing.T) {
	ctx, recorder := testContext(t)
	ctx.Set("user", jwt.MapClaims{"user_id": float64(2), "role": "customer"})

	middlewares.RequireAdmin()(ctx)

	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireAdminRejectsMissingClaims(t *testing.T) {
	ctx, recorder := testContext(t)

	middlewares.RequireAdmin()(ctx)

	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
