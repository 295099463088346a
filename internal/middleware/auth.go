// Package middleware provides the HTTP middleware shared by every route: authentication,
// structured logging, tracing, metrics and response headers.
package middleware

import (
	"context"
	"strings"

	"photoshare/internal/auth"
	"photoshare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// MsgTokenMissing is the only message returned for an unauthenticated request.
const MsgTokenMissing = "token missing!"

const (
	localsClaims = "claims"
	localsUserID = "userID"
)

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *fiber.Ctx) (string, bool) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// AuthRequired rejects requests without a valid bearer token. On success the claims and the
// user ID are available to handlers through Claims and UserID.
func AuthRequired(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := verify(c, verifier)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized, models.NewUnauthorizedError(MsgTokenMissing))
		}
		setClaims(c, claims)
		return c.Next()
	}
}

// OptionalClaims verifies the bearer token when one is present. It never rejects the request.
func OptionalClaims(c *fiber.Ctx, verifier TokenVerifier) (*auth.Claims, bool) {
	if claims, ok := Claims(c); ok {
		return claims, true
	}
	claims, ok := verify(c, verifier)
	if ok {
		setClaims(c, claims)
	}
	return claims, ok
}

// Claims returns the verified claims stored by AuthRequired or OptionalClaims.
func Claims(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals(localsClaims).(*auth.Claims)
	return claims, ok && claims != nil
}

// UserID returns the authenticated user's ID.
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(localsUserID).(uint)
	return id, ok && id != 0
}

func verify(c *fiber.Ctx, verifier TokenVerifier) (*auth.Claims, bool) {
	token, ok := BearerToken(c)
	if !ok {
		return nil, false
	}
	claims, err := verifier.Verify(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setClaims(c *fiber.Ctx, claims *auth.Claims) {
	c.Locals(localsClaims, claims)
	c.Locals(localsUserID, claims.ID)
	c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, claims.ID))
}
