package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uMbuso/TenantManagementApi/internal/utils"
)

const (
	testSecret   = "test-secret"
	testIssuer   = "tms-api"
	testAudience = "tms-clients"
)

// run sends a request through the given middleware chain and a trivial
// handler that reports the identity JWTAuth stored in the context.
func run(t *testing.T, token string, mws ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": c.Get("user_id"),
			"role":    c.Get("role"),
		})
	}
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	require.NoError(t, h(c))
	return rec
}

func TestJWTAuthAcceptsFreshToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, testIssuer, testAudience, "u-1", "alice", "Admin", 15)
	require.NoError(t, err)

	rec := run(t, tok.Token, JWTAuth(testSecret, testIssuer, testAudience))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":"u-1"`)
	assert.Contains(t, rec.Body.String(), `"role":"Admin"`)
}

func TestJWTAuthRejectsMissingAndForeignTokens(t *testing.T) {
	foreign, err := utils.NewAccessToken("other-secret", testIssuer, testAudience, "u-1", "alice", "Admin", 15)
	require.NoError(t, err)
	wrongIss, err := utils.NewAccessToken(testSecret, "someone-else", testAudience, "u-1", "alice", "Admin", 15)
	require.NoError(t, err)
	wrongAud, err := utils.NewAccessToken(testSecret, testIssuer, "other-clients", "u-1", "alice", "Admin", 15)
	require.NoError(t, err)

	cases := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage token", "not.a.jwt"},
		{"wrong secret", foreign.Token},
		{"wrong issuer", wrongIss.Token},
		{"wrong audience", wrongAud.Token},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := run(t, tc.token, JWTAuth(testSecret, testIssuer, testAudience))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestViewerForbiddenFromWriteRoutes(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, testIssuer, testAudience, "u-2", "viewer", "Viewer", 15)
	require.NoError(t, err)

	rec := run(t, tok.Token,
		JWTAuth(testSecret, testIssuer, testAudience),
		RequireRole("Admin", "Manager"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestManagerAllowedOnWriteRoutes(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, testIssuer, testAudience, "u-3", "manager", "Manager", 15)
	require.NoError(t, err)

	rec := run(t, tok.Token,
		JWTAuth(testSecret, testIssuer, testAudience),
		RequireRole("Admin", "Manager"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleWithoutAuthContext(t *testing.T) {
	// RequireRole alone, no JWTAuth upstream: nothing in the context.
	rec := run(t, "", RequireRole("Admin"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
