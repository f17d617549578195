package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"style-sync/internal/domain/profile"
	"style-sync/internal/pkg/jwt"
	"style-sync/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJWT struct {
	claims jwt.Claims
	err    error
}

func (s stubJWT) Decode(string) (jwt.Claims, error) { return s.claims, s.err }

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) response.SemanticResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env response.SemanticResponse
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestErrorMiddleware_AppError4xxKeepsMessage(t *testing.T) {
	app := newApp()
	app.Get("/x", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusBadRequest, "bad occasion", map[string]string{"field": "occasion"}, nil)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "bad occasion", env.Message)
	assert.NotNil(t, env.Data)
}

func TestErrorMiddleware_Hides5xxDetails(t *testing.T) {
	app := newApp()
	app.Get("/x", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusBadGateway, "dial tcp 10.0.0.1: refused", "secret", errors.New("boom"))
	})
	app.Get("/plain", func(c fiber.Ctx) error { return errors.New("db password wrong") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, response.MessageBadGateway, env.Message)
	assert.Nil(t, env.Data)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/plain", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, response.MessageInternalServerError, decodeEnvelope(t, resp).Message)
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	app := newApp()
	app.Get("/x", func(c fiber.Ctx) error { panic("kaboom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestAuth_RequiredRejectsMissingToken(t *testing.T) {
	app := newApp()
	auth := NewAuthMiddleware(stubJWT{}, nil)
	app.Get("/x", auth.Required(), func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_RequiredExpired(t *testing.T) {
	app := newApp()
	auth := NewAuthMiddleware(stubJWT{err: jwt.ErrTokenExpired}, nil)
	app.Get("/x", auth.Required(), func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token expired", decodeEnvelope(t, resp).Message)
}

func TestAuth_RequiredStoresIdentity(t *testing.T) {
	app := newApp()
	claims := jwt.Claims{UserID: "u-1", Email: "a@b.c", Name: "Ada"}
	auth := NewAuthMiddleware(stubJWT{claims: claims}, nil)

	var got profile.Identity
	app.Get("/ws", auth.RequiredSocket(), func(c fiber.Ctx) error {
		got, _ = IdentityFrom(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ws?token=tok-q", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, "tok-q", got.Token)
	assert.False(t, got.Anonymous)
}

func TestAuth_QueryTokenOnlyOnSocket(t *testing.T) {
	app := newApp()
	auth := NewAuthMiddleware(stubJWT{claims: jwt.Claims{UserID: "u-1"}}, nil)
	ok := func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/api/persona", auth.Required(), ok)
	app.Get("/ws", auth.RequiredSocket(), ok)

	var optional profile.Identity
	app.Get("/api/quiz", auth.Optional(), func(c fiber.Ctx) error {
		optional, _ = IdentityFrom(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/persona?token=tok-q", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/ws?token=tok-q", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/quiz?token=tok-q", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, optional.Anonymous)
	assert.Empty(t, optional.Token)
}

type stubConfirmer struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (s *stubConfirmer) ConfirmToken(context.Context, string, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *stubConfirmer) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func bearer(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuth_UnconfirmedTokenIsRejected(t *testing.T) {
	conf := &stubConfirmer{err: jwt.ErrTokenInvalid}
	auth := NewAuthMiddleware(stubJWT{claims: jwt.Claims{UserID: "alice"}}, nil).WithConfirmer(conf, time.Minute)

	var optional profile.Identity
	app := newApp()
	app.Get("/required", auth.Required(), func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/optional", auth.Optional(), func(c fiber.Ctx) error {
		optional, _ = IdentityFrom(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(bearer("/required", "forged"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", decodeEnvelope(t, resp).Message)

	resp, err = app.Test(bearer("/optional", "forged"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, optional.Anonymous)
	assert.Empty(t, optional.UserID)
	assert.Equal(t, "forged", optional.Token)
}

func TestAuth_ConfirmerDownIsServiceUnavailable(t *testing.T) {
	conf := &stubConfirmer{err: errors.New("dial tcp: refused")}
	auth := NewAuthMiddleware(stubJWT{claims: jwt.Claims{UserID: "alice"}}, nil).WithConfirmer(conf, time.Minute)

	app := newApp()
	app.Get("/required", auth.Required(), func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(bearer("/required", "tok"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestAuth_ConfirmationIsCachedPerToken(t *testing.T) {
	conf := &stubConfirmer{}
	auth := NewAuthMiddleware(stubJWT{claims: jwt.Claims{UserID: "alice"}}, nil).WithConfirmer(conf, time.Minute)

	app := newApp()
	app.Get("/required", auth.Required(), func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 3; i++ {
		resp, err := app.Test(bearer("/required", "tok-a"))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, 1, conf.count())

	resp, err := app.Test(bearer("/required", "tok-b"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, conf.count())
}

func TestAuth_VerifyingDecoderSkipsConfirmer(t *testing.T) {
	conf := &stubConfirmer{err: errors.New("should not be asked")}
	auth := NewAuthMiddleware(jwt.NewDecoder("secret"), nil).WithConfirmer(conf, time.Minute)

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwt.Claims{UserID: "alice"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	app := newApp()
	app.Get("/required", auth.Required(), func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(bearer("/required", token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Zero(t, conf.count())
}

func TestAuth_OptionalFallsBackToPlaceholder(t *testing.T) {
	app := newApp()
	auth := NewAuthMiddleware(stubJWT{err: jwt.ErrTokenInvalid}, nil)

	var got profile.Identity
	app.Get("/x", auth.Optional(), func(c fiber.Ctx) error {
		got, _ = IdentityFrom(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, got.Anonymous)
	assert.Equal(t, profile.PlaceholderName, got.Name)
	assert.Equal(t, profile.PlaceholderEmail, got.Email)
}

func TestBearerTokenFromHeader(t *testing.T) {
	cases := map[string]bool{
		"Bearer abc": true,
		"bearer abc": true,
		"Basic abc":  false,
		"Bearer   ":  false,
		"":           false,
		"Bearerabc":  false,
	}
	for in, want := range cases {
		_, ok := bearerTokenFromHeader(in)
		assert.Equal(t, want, ok, in)
	}
}

type countingObserver struct {
	mu     sync.Mutex
	routes []string
}

func (o *countingObserver) ObserveHTTP(_ string, route string, _ int) {
	o.mu.Lock()
	o.routes = append(o.routes, route)
	o.mu.Unlock()
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	obs := &countingObserver{}
	app := fiber.New()
	app.Use(Metrics(obs))
	app.Get("/outfits/:id", func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/outfits/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"/outfits/:id"}, obs.routes)
}

func TestAccessLog_SetsRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(nil).Middleware())
	app.Get("/x", func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "rid-1")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "rid-1", resp.Header.Get(HeaderRequestID))
}
