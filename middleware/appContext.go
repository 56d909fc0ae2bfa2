package middleware

import (
	"context"
	"time"

	"licensing-backend/token"

	"github.com/redis/go-redis/v9"
)

// AppContext bundles the dependencies shared by the auth middleware and the
// session endpoints.
type AppContext struct {
	TokenMaker      token.Maker
	Ctx             context.Context
	RedisClient     redis.UniversalClient
	AccessDuration  time.Duration
	RefreshDuration time.Duration
	SecureCookies   bool
}
