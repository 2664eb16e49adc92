// Package middleware provides authentication, logging, metrics and rate
// limiting middleware for the application.
package middleware

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"ripple/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// TokenRevokedChecker reports whether a token ID (jti) has been revoked.
// Wired to the redis-backed denylist at startup; nil disables the check.
var TokenRevokedChecker func(c *fiber.Ctx, jti string) bool

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}

// validateToken parses and validates a JWT, returning the user ID and token
// ID. It never writes to the response; callers decide how to fail.
func validateToken(c *fiber.Ctx, tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid token claims")
	}

	// "sub" carries the user ID per RFC 7519
	subStr, ok := claims["sub"].(string)
	if !ok {
		return 0, "", errors.New("invalid token subject")
	}
	userIDVal, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return 0, "", errors.New("invalid user ID in token")
	}

	jti, _ := claims["jti"].(string)
	if jti != "" && TokenRevokedChecker != nil && TokenRevokedChecker(c, jti) {
		return 0, "", errors.New("token has been revoked")
	}

	return uint(userIDVal), jti, nil
}

// authenticate stores the identity derived from a valid token in locals and
// the user context.
func authenticate(c *fiber.Ctx, userID uint, jti string) {
	c.Locals("userID", userID)
	if jti != "" {
		c.Locals("tokenID", jti)
	}
	ctx := context.WithValue(c.UserContext(), UserIDKey, userID)
	c.SetUserContext(ctx)
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthRequired is a middleware that enforces authentication for protected routes.
func AuthRequired(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return unauthorized(c, "Authorization required")
	}

	userID, jti, err := validateToken(c, token)
	if err != nil {
		return unauthorized(c, "Invalid or expired token")
	}

	authenticate(c, userID, jti)
	return c.Next()
}

// OptionalAuth populates userID when a valid bearer token is present but
// lets unauthenticated requests through. Used by public read endpoints that
// enrich responses (e.g. liked flags) for signed-in users.
func OptionalAuth(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Next()
	}

	// Validation failures leave the request anonymous.
	if userID, jti, err := validateToken(c, token); err == nil {
		authenticate(c, userID, jti)
	}
	return c.Next()
}

// WebSocketAuthRequired validates JWT tokens from query parameters for
// WebSocket connections, falling back to the Authorization header.
func WebSocketAuthRequired(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		token = bearerToken(c)
	}
	if token == "" {
		return unauthorized(c, "Token required")
	}

	userID, jti, err := validateToken(c, token)
	if err != nil {
		return unauthorized(c, "Invalid or expired token")
	}

	authenticate(c, userID, jti)
	return c.Next()
}
