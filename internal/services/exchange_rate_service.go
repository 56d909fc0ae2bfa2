package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"licensing-backend/config"
	"licensing-backend/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ExchangeRateService talks to an exchangerate-api.com v6 compatible API:
// GET {baseURL}/{apiKey}/latest/{BASE}.
type ExchangeRateService struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	maxAttempts int
	backoff     time.Duration
}

type latestRatesResponse struct {
	Result          string                     `json:"result"`
	ErrorType       string                     `json:"error-type"`
	BaseCode        string                     `json:"base_code"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

type Option func(*ExchangeRateService)

func WithHTTPClient(c *http.Client) Option {
	return func(s *ExchangeRateService) { s.httpClient = c }
}

func WithRateLimit(every time.Duration, burst int) Option {
	return func(s *ExchangeRateService) { s.rateLimiter = rate.NewLimiter(rate.Every(every), burst) }
}

func WithRetry(attempts int, backoff time.Duration) Option {
	return func(s *ExchangeRateService) {
		if attempts > 0 {
			s.maxAttempts = attempts
		}
		s.backoff = backoff
	}
}

func NewExchangeRateService(baseURL, apiKey string, opts ...Option) (*ExchangeRateService, error) {
	if baseURL == "" || apiKey == "" {
		return nil, fmt.Errorf("exchange rate API URL and key are required")
	}

	s := &ExchangeRateService{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 5),
		maxAttempts: 3,
		backoff:     500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// errRetryable marks failures worth another attempt: transport errors, 429
// and 5xx.
var errRetryable = errors.New("retryable")

// LatestRates returns every rate quoted against base.
func (s *ExchangeRateService) LatestRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	base = utils.NormalizeCurrency(base)

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := s.rateLimiter.Wait(ctx); err != nil {
			return nil, utils.NewUpstreamError("currency service unavailable", fmt.Errorf("rate limit wait: %w", err))
		}

		rates, err := s.fetch(ctx, base)
		if err == nil {
			return rates, nil
		}
		if !errors.Is(err, errRetryable) {
			return nil, err
		}
		lastErr = err

		config.Logger.Warn("Exchange rate request failed",
			zap.String("base", base),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt < s.maxAttempts {
			select {
			case <-ctx.Done():
				return nil, utils.NewUpstreamError("currency service unavailable", ctx.Err())
			case <-time.After(time.Duration(attempt) * s.backoff):
			}
		}
	}
	return nil, utils.NewUpstreamError("currency service unavailable", lastErr)
}

// GetRate returns how many units of target one unit of base buys.
func (s *ExchangeRateService) GetRate(ctx context.Context, base, target string) (decimal.Decimal, error) {
	rates, err := s.LatestRates(ctx, base)
	if err != nil {
		return decimal.Zero, err
	}
	r, ok := rates[utils.NormalizeCurrency(target)]
	if !ok {
		return decimal.Zero, utils.NewBadRequestError("unsupported currency %s", utils.NormalizeCurrency(target))
	}
	return r, nil
}

func (s *ExchangeRateService) fetch(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", s.baseURL, s.apiKey, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, utils.NewInternalError("build exchange rate request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errRetryable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", errRetryable, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, fmt.Errorf("%w: status %d", errRetryable, resp.StatusCode)
	}

	var parsed latestRatesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, utils.NewUpstreamError("currency service returned an invalid response", err)
	}

	if parsed.Result != "success" {
		switch parsed.ErrorType {
		case "unsupported-code", "malformed-request":
			return nil, utils.NewBadRequestError("unsupported currency %s", base)
		}
		return nil, utils.NewUpstreamError("currency service rejected the request",
			fmt.Errorf("status %d, error-type %q", resp.StatusCode, parsed.ErrorType))
	}
	if len(parsed.ConversionRates) == 0 {
		return nil, utils.NewUpstreamError("currency service returned no rates", nil)
	}
	return parsed.ConversionRates, nil
}
