package middleware

import (
	"fmt"
	"time"

	"licensing-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

func refreshKey(id uuid.UUID) string {
	return "refresh_token:" + id.String()
}

// Session is what a successful sign-in hands back to the caller.
type Session struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
	Username         string    `json:"username"`
	Role             string    `json:"role"`
}

// IssueSession creates an access and a refresh token, records the refresh
// token in Redis and sets both cookies.
func IssueSession(c *fiber.Ctx, app *AppContext, userID uuid.UUID, username, role string) (*Session, error) {
	accessToken, accessPayload, err := app.TokenMaker.CreateToken(token.AccessToken, userID, username, role, app.AccessDuration)
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}
	refreshToken, refreshPayload, err := app.TokenMaker.CreateToken(token.RefreshToken, userID, username, role, app.RefreshDuration)
	if err != nil {
		return nil, fmt.Errorf("create refresh token: %w", err)
	}

	if err := app.RedisClient.Set(c.Context(), refreshKey(refreshPayload.ID), userID.String(), app.RefreshDuration).Err(); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     AccessTokenCookie,
		Value:    accessToken,
		Expires:  accessPayload.ExpiredAt,
		HTTPOnly: true,
		Secure:   app.SecureCookies,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     RefreshTokenCookie,
		Value:    refreshToken,
		Expires:  refreshPayload.ExpiredAt,
		HTTPOnly: true,
		Secure:   app.SecureCookies,
		SameSite: "Lax",
		Path:     "/",
	})

	return &Session{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessPayload.ExpiredAt,
		RefreshExpiresAt: refreshPayload.ExpiredAt,
		Username:         username,
		Role:             role,
	}, nil
}

// RevokeSession drops the caller's refresh token and clears both cookies.
func RevokeSession(c *fiber.Ctx, app *AppContext) error {
	if raw := c.Cookies(RefreshTokenCookie); raw != "" {
		if payload, err := verifyKind(app, raw, token.RefreshToken); err == nil {
			if err := app.RedisClient.Del(c.Context(), refreshKey(payload.ID)).Err(); err != nil {
				return fmt.Errorf("revoke refresh token: %w", err)
			}
		}
	}
	c.ClearCookie(AccessTokenCookie, RefreshTokenCookie)
	return nil
}

// CurrentUser returns the payload placed by ProtectedRoute, or nil.
func CurrentUser(c *fiber.Ctx) *token.Payload {
	payload, _ := c.Locals("user").(*token.Payload)
	return payload
}
