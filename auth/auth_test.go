package auth_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuthenticator_RoundTrip(t *testing.T) {
	a := auth.NewJWTAuthenticator("test-secret")

	token, err := a.IssueToken("user-1", time.Hour)
	require.NoError(t, err)

	subject, err := a.Authenticate("Bearer " + token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestJWTAuthenticator_MissingToken(t *testing.T) {
	a := auth.NewJWTAuthenticator("test-secret")

	_, err := a.Authenticate("")
	assert.ErrorIs(t, err, auth.ErrNoToken)

	_, err = a.Authenticate("Bearer ")
	assert.ErrorIs(t, err, auth.ErrNoToken)
}

func TestJWTAuthenticator_WrongSecret(t *testing.T) {
	issuer := auth.NewJWTAuthenticator("issuer-secret")
	verifier := auth.NewJWTAuthenticator("other-secret")

	token, err := issuer.IssueToken("user-1", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Authenticate("Bearer " + token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTAuthenticator_ExpiredToken(t *testing.T) {
	a := auth.NewJWTAuthenticator("test-secret")

	token, err := a.IssueToken("user-1", -time.Minute)
	require.NoError(t, err)

	_, err = a.Authenticate("Bearer " + token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestMiddleware_GatesRoute(t *testing.T) {
	a := auth.NewJWTAuthenticator("test-secret")

	app := fiber.New()
	app.Get("/protected", auth.Middleware(a), func(ctx *fiber.Ctx) error {
		return ctx.SendString(auth.Subject(ctx))
	})

	// No token: rejected before the handler runs.
	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Valid token: the handler sees the subject.
	token, err := a.IssueToken("user-1", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "user-1", string(body))
}
