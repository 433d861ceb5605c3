package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/theatre-data-processor/internal/config"
)

const testSecret = "test-secret"

func signed(t *testing.T, secret, sub, role string) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func serve(t *testing.T, h echo.HandlerFunc, auth string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/import/plays", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func protected() echo.HandlerFunc {
	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, currentSubject(c))
	}
	return JWTAuth(testSecret)(RequireRole(RoleOperator)(ok))
}

func TestJWTAuth(t *testing.T) {
	t.Parallel()

	rec := serve(t, protected(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(t, protected(), "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(t, protected(), "Bearer "+signed(t, "other-secret", "ops", RoleOperator))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(t, protected(), "Bearer "+signed(t, testSecret, "ops", "VIEWER"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(t, protected(), "Bearer "+signed(t, testSecret, "ops", RoleOperator))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ops", rec.Body.String())
}

func TestNewTokenBucket_DisabledPassesThrough(t *testing.T) {
	t.Parallel()

	mw := NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil)
	rec := serve(t, mw(func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBuildRateKey(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/import/plays", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/import/:kind")
	c.Set(ContextSubject, "ops")

	assert.Equal(t, "rl:user:ops:route:POST /v1/import/:kind",
		buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user_route"}, c))
	assert.Equal(t, "rl:ip:10.0.0.1",
		buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip"}, c))
}

func TestParseVerdict(t *testing.T) {
	t.Parallel()

	allowed, remaining, retry, ok := parseVerdict([]interface{}{int64(1), int64(4), int64(0)})
	assert.True(t, ok)
	assert.True(t, allowed)
	assert.Equal(t, int64(4), remaining)
	assert.Zero(t, retry)

	allowed, _, retry, ok = parseVerdict([]interface{}{"0", "0", "1500"})
	assert.True(t, ok)
	assert.False(t, allowed)
	assert.Equal(t, int64(1500), retry)

	_, _, _, ok = parseVerdict("nope")
	assert.False(t, ok)
}
