package middleware

import (
	"errors"
	"strings"

	"licensing-backend/config"
	"licensing-backend/token"
	"licensing-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return c.Cookies(AccessTokenCookie)
}

// verifyKind verifies raw and checks it was issued as kind.
func verifyKind(app *AppContext, raw string, kind token.Kind) (*token.Payload, error) {
	payload, err := app.TokenMaker.VerifyToken(raw)
	if err != nil {
		return nil, err
	}
	if payload.Kind != kind {
		return nil, token.ErrWrongKind
	}
	return payload, nil
}

// ProtectedRoute accepts an access token from the Authorization header or the
// access_token cookie. When neither is valid it falls back to the refresh
// token cookie, which is single use: it is deleted from Redis and a new pair
// is issued. A refresh token is never accepted in place of an access token.
func ProtectedRoute(app *AppContext) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if accessToken := bearerToken(c); accessToken != "" {
			payload, err := verifyKind(app, accessToken, token.AccessToken)
			if err == nil {
				c.Locals("user", payload)
				return c.Next()
			}
			config.Logger.Debug("Invalid access token encountered", zap.Error(err))
		}

		refreshToken := c.Cookies(RefreshTokenCookie)
		if refreshToken == "" || app.RedisClient == nil {
			return utils.RespondError(c, utils.NewUnauthorizedError("Authentication required"))
		}

		refreshPayload, err := verifyKind(app, refreshToken, token.RefreshToken)
		if err != nil {
			config.Logger.Debug("Invalid refresh token", zap.Error(err))
			return utils.RespondError(c, utils.NewUnauthorizedError("Session expired or invalid. Please log in again."))
		}

		key := refreshKey(refreshPayload.ID)
		deleted, err := app.RedisClient.Del(c.Context(), key).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return utils.RespondError(c, utils.NewInternalError("refresh token lookup failed", err))
		}
		if deleted == 0 {
			config.Logger.Warn("Refresh token not found in Redis",
				zap.String("payload_id", refreshPayload.ID.String()),
				zap.String("username", refreshPayload.Username))
			return utils.RespondError(c, utils.NewUnauthorizedError("Session invalid. Please log in again."))
		}

		if _, err := IssueSession(c, app, refreshPayload.UserID, refreshPayload.Username, refreshPayload.Role); err != nil {
			return utils.RespondError(c, utils.NewInternalError("could not rotate session", err))
		}

		c.Locals("user", refreshPayload)
		return c.Next()
	}
}

// RequireRole must run after ProtectedRoute.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return utils.RespondError(c, utils.NewUnauthorizedError("Authentication required"))
		}
		if _, ok := allowed[user.Role]; !ok {
			config.Logger.Warn("Role not permitted",
				zap.String("username", user.Username),
				zap.String("role", user.Role),
				zap.String("path", c.Path()))
			return utils.RespondError(c, utils.NewForbiddenError("Insufficient permissions"))
		}
		return c.Next()
	}
}

// OptionalUser attaches the caller's payload when a valid access token is
// present and lets anonymous requests through untouched.
func OptionalUser(app *AppContext) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if accessToken := bearerToken(c); accessToken != "" {
			if payload, err := verifyKind(app, accessToken, token.AccessToken); err == nil {
				c.Locals("user", payload)
			}
		}
		return c.Next()
	}
}
