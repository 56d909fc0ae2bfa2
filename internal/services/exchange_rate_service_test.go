package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"licensing-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successBody = `{"result":"success","base_code":"PLN","conversion_rates":{"PLN":1,"EUR":0.2315,"USD":0.2502}}`

func newTestService(t *testing.T, url string) *ExchangeRateService {
	t.Helper()
	s, err := NewExchangeRateService(url, "test-key",
		WithRateLimit(time.Millisecond, 100),
		WithRetry(3, time.Millisecond))
	require.NoError(t, err)
	return s
}

func TestGetRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-key/latest/PLN", r.URL.Path)
		w.Write([]byte(successBody))
	}))
	defer srv.Close()

	s := newTestService(t, srv.URL+"/")
	rate, err := s.GetRate(context.Background(), "pln", "eur")
	require.NoError(t, err)
	assert.Equal(t, "0.2315", rate.String())
}

func TestGetRateUnknownTarget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(successBody))
	}))
	defer srv.Close()

	_, err := newTestService(t, srv.URL).GetRate(context.Background(), "PLN", "XYZ")
	assert.True(t, utils.IsKind(err, utils.KindBadRequest))
}

func TestRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(successBody))
	}))
	defer srv.Close()

	rates, err := newTestService(t, srv.URL).LatestRates(context.Background(), "PLN")
	require.NoError(t, err)
	assert.Len(t, rates, 3)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGivesUpAfterMaxAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestService(t, srv.URL).LatestRates(context.Background(), "PLN")
	assert.True(t, utils.IsKind(err, utils.KindUpstream))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestUnsupportedBaseIsNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
	}))
	defer srv.Close()

	_, err := newTestService(t, srv.URL).LatestRates(context.Background(), "XXX")
	assert.True(t, utils.IsKind(err, utils.KindBadRequest))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestInvalidKeyIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"result":"error","error-type":"invalid-key"}`))
	}))
	defer srv.Close()

	_, err := newTestService(t, srv.URL).LatestRates(context.Background(), "PLN")
	assert.True(t, utils.IsKind(err, utils.KindUpstream))
}

func TestNewExchangeRateServiceRequiresConfig(t *testing.T) {
	_, err := NewExchangeRateService("", "key")
	assert.Error(t, err)
	_, err = NewExchangeRateService("http://x", "")
	assert.Error(t, err)
}
