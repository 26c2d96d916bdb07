package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoToken is returned when the request carries no bearer token.
	ErrNoToken = errors.New("no bearer token")
	// ErrInvalidToken is returned when the token fails verification or
	// carries no subject.
	ErrInvalidToken = errors.New("invalid token")
)

// subjectKey is the fiber locals key the middleware stores the subject under.
const subjectKey = "userID"

// Authenticator decides whether a request is authenticated and yields the
// opaque subject identifier of the caller. The order flow depends only on
// this capability, not on any specific identity protocol.
type Authenticator interface {
	Authenticate(authorization string) (string, error)
}

// JWTAuthenticator verifies HS256 bearer tokens issued by the identity
// provider and extracts the subject claim.
type JWTAuthenticator struct {
	secret []byte
}

// NewJWTAuthenticator creates a JWTAuthenticator with the shared secret.
func NewJWTAuthenticator(secret string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: []byte(secret)}
}

// Authenticate parses the Authorization header value and returns the token's
// subject claim.
func (a *JWTAuthenticator) Authenticate(authorization string) (string, error) {
	raw, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok || raw == "" {
		return "", ErrNoToken
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}

// IssueToken signs a token for the given subject. Used by tooling and tests;
// in production tokens come from the identity provider.
func (a *JWTAuthenticator) IssueToken(subject string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Middleware gates a route behind the authenticator. On success the subject
// is stored in the request locals for handlers to read via Subject; on
// failure the request is rejected with 401 before any business logic runs.
func Middleware(a Authenticator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		subject, err := a.Authenticate(ctx.Get(fiber.HeaderAuthorization))
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
		}
		ctx.Locals(subjectKey, subject)
		return ctx.Next()
	}
}

// Subject returns the authenticated subject stored by Middleware, or ""
// when the request never passed through it.
func Subject(ctx *fiber.Ctx) string {
	subject, _ := ctx.Locals(subjectKey).(string)
	return subject
}
