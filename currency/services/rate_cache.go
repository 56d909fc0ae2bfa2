package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"licensing-backend/config"
	"licensing-backend/currency/repositories"
	"licensing-backend/utils"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const rateKeyPrefix = "exchange_rate"

func rateKey(base, target string) string {
	return fmt.Sprintf("%s:%s:%s", rateKeyPrefix, base, target)
}

// CachedRateProvider serves rates from Redis, then the upstream API, then the
// last rate persisted in the database. A fetch from upstream warms the cache
// for every currency in the response.
type CachedRateProvider struct {
	redis    redis.UniversalClient
	repo     repositories.ExchangeRateRepository
	upstream RatesFetcher
	ttl      time.Duration
	now      func() time.Time
}

func NewCachedRateProvider(rdb redis.UniversalClient, repo repositories.ExchangeRateRepository, upstream RatesFetcher, ttl time.Duration) *CachedRateProvider {
	return &CachedRateProvider{
		redis:    rdb,
		repo:     repo,
		upstream: upstream,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (p *CachedRateProvider) GetRate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	base, err := ValidateCurrency(base)
	if err != nil {
		return decimal.Zero, err
	}
	target, err = ValidateCurrency(target)
	if err != nil {
		return decimal.Zero, err
	}
	if base == target {
		return decimal.NewFromInt(1), nil
	}

	if rate, ok := p.fromCache(ctx, base, target); ok {
		return rate, nil
	}

	rates, err := p.upstream.LatestRates(ctx, base)
	if err != nil {
		if !utils.IsKind(err, utils.KindUpstream) {
			return decimal.Zero, err
		}
		return p.lastKnown(ctx, base, target, err)
	}

	p.store(ctx, base, rates)

	rate, ok := rates[target]
	if !ok {
		return decimal.Zero, utils.NewBadRequestError("unsupported currency %s", target)
	}
	return rate, nil
}

// Invalidate drops every cached rate and reports how many keys went.
func (p *CachedRateProvider) Invalidate(ctx context.Context) (int, error) {
	return utils.InvalidateCache(ctx, p.redis, rateKeyPrefix+":*")
}

func (p *CachedRateProvider) fromCache(ctx context.Context, base, target string) (decimal.Decimal, bool) {
	raw, err := p.redis.Get(ctx, rateKey(base, target)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			config.Logger.Warn("Rate cache read failed", zap.String("key", rateKey(base, target)), zap.Error(err))
		}
		return decimal.Zero, false
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		config.Logger.Warn("Corrupt cached rate", zap.String("key", rateKey(base, target)), zap.String("value", raw))
		return decimal.Zero, false
	}
	return rate, true
}

func (p *CachedRateProvider) store(ctx context.Context, base string, rates map[string]decimal.Decimal) {
	pipe := p.redis.Pipeline()
	for code, rate := range rates {
		pipe.Set(ctx, rateKey(base, code), rate.String(), p.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		config.Logger.Warn("Rate cache write failed", zap.String("base", base), zap.Error(err))
	}

	if err := p.repo.SaveRates(ctx, base, rates, p.now()); err != nil {
		config.Logger.Error("Failed to persist exchange rates", zap.String("base", base), zap.Error(err))
	}
}

func (p *CachedRateProvider) lastKnown(ctx context.Context, base, target string, cause error) (decimal.Decimal, error) {
	stored, err := p.repo.GetLastKnown(ctx, base, target)
	if err != nil {
		config.Logger.Error("Failed to read last known rate", zap.String("base", base), zap.String("target", target), zap.Error(err))
		return decimal.Zero, cause
	}
	if stored == nil {
		return decimal.Zero, cause
	}
	config.Logger.Warn("Serving last known exchange rate",
		zap.String("base", base),
		zap.String("target", target),
		zap.Time("fetched_at", stored.FetchedAt),
		zap.NamedError("upstream_error", cause))
	return stored.Rate, nil
}
