package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodgram/internal/auth"
	"foodgram/internal/authz"
	"foodgram/internal/metrics"
	"foodgram/internal/middleware"
	"foodgram/internal/models"
	"foodgram/internal/repository"
	"foodgram/internal/testutil"

	"github.com/gin-gonic/gin"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers map[uint]*models.User

func (f fakeUsers) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

type authFixture struct {
	tokens  *auth.TokenManager
	revoked *auth.RevocationList
	users   fakeUsers
	authn   *middleware.Authenticator
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		tokens:  auth.NewTokenManager("secret", time.Hour),
		revoked: auth.NewRevocationList(repository.NewRevokedTokenRepository(testutil.NewTestDB(t))),
		users: fakeUsers{
			1: {ID: 1, Email: "user@example.com", Username: "user"},
			2: {ID: 2, Email: "admin@example.com", Username: "admin", IsAdmin: true},
		},
	}
	f.authn = middleware.NewAuthenticator(f.tokens, f.revoked, f.users)
	return f
}

func (f *authFixture) token(t *testing.T, id uint) (string, *auth.Claims) {
	t.Helper()
	user := f.users[id]
	if user == nil {
		user = &models.User{ID: id}
	}
	token, claims, err := f.tokens.Issue(user)
	require.NoError(t, err)
	return token, claims
}

func whoAmI(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.String(http.StatusOK, "anonymous")
		return
	}
	c.String(http.StatusOK, user.Username)
}

func perform(router *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newAuthFixture(t)

	router := gin.New()
	router.GET("/required", f.authn.AuthMiddleware(), whoAmI)
	router.GET("/optional", f.authn.OptionalAuth(), whoAmI)

	userToken, userClaims := f.token(t, 1)
	ghostToken, _ := f.token(t, 99)

	tests := []struct {
		name           string
		path           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{name: "missing header", path: "/required", expectedStatus: http.StatusUnauthorized},
		{name: "token scheme", path: "/required", header: "Token " + userToken, expectedStatus: http.StatusOK, expectedBody: "user"},
		{name: "bearer scheme", path: "/required", header: "Bearer " + userToken, expectedStatus: http.StatusOK, expectedBody: "user"},
		{name: "unknown scheme", path: "/required", header: "Basic " + userToken, expectedStatus: http.StatusUnauthorized},
		{name: "garbage token", path: "/required", header: "Token not-a-jwt", expectedStatus: http.StatusUnauthorized},
		{name: "deleted user", path: "/required", header: "Token " + ghostToken, expectedStatus: http.StatusUnauthorized},
		{name: "optional anonymous", path: "/optional", expectedStatus: http.StatusOK, expectedBody: "anonymous"},
		{name: "optional with token", path: "/optional", header: "Token " + userToken, expectedStatus: http.StatusOK, expectedBody: "user"},
		{name: "optional with bad token", path: "/optional", header: "Token nope", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(router, http.MethodGet, tt.path, tt.header)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
		})
	}

	t.Run("revoked token", func(t *testing.T) {
		require.NoError(t, f.revoked.Revoke(context.Background(), userClaims))
		w := perform(router, http.MethodGet, "/required", "Token "+userToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequirePermission(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newAuthFixture(t)
	enforcer, err := authz.NewEnforcer()
	require.NoError(t, err)

	router := gin.New()
	router.Use(f.authn.OptionalAuth())
	router.POST("/tags", middleware.RequirePermission(enforcer, authz.ObjTag, authz.ActCreate), whoAmI)
	router.POST("/recipes", middleware.RequirePermission(enforcer, authz.ObjRecipe, authz.ActCreate), whoAmI)
	router.GET("/recipes", middleware.RequirePermission(enforcer, authz.ObjRecipe, authz.ActRead), whoAmI)

	userToken, _ := f.token(t, 1)
	adminToken, _ := f.token(t, 2)

	assert.Equal(t, http.StatusOK, perform(router, http.MethodGet, "/recipes", "").Code)
	assert.Equal(t, http.StatusUnauthorized, perform(router, http.MethodPost, "/recipes", "").Code)
	assert.Equal(t, http.StatusOK, perform(router, http.MethodPost, "/recipes", "Token "+userToken).Code)
	assert.Equal(t, http.StatusForbidden, perform(router, http.MethodPost, "/tags", "Token "+userToken).Code)
	assert.Equal(t, http.StatusOK, perform(router, http.MethodPost, "/tags", "Token "+adminToken).Code)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := perform(router, http.MethodGet, "/", "")
	generated := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "upstream-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "upstream-id", w.Header().Get(middleware.RequestIDHeader))
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Metrics(), middleware.RequestLogger())
	router.GET("/api/recipes/:id/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/recipes/:id/", "204")
	before := promtest.ToFloat64(counter)

	perform(router, http.MethodGet, "/api/recipes/1/", "")
	perform(router, http.MethodGet, "/api/recipes/2/", "")

	assert.Equal(t, before+2, promtest.ToFloat64(counter))
}
