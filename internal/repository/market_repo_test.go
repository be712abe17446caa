package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"investment-advisor/config"
	"investment-advisor/internal/dto"
	"investment-advisor/pkg/common"
	"investment-advisor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.FX.Timeout = time.Second
	cfg.Quote.Timeout = time.Second
	cfg.Quote.MaxRequestPerMin = 600
	return cfg
}

func TestExchangeRateRepository_Get(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    float64
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK, body: `{"base":"USD","rates":{"INR":83.42,"EUR":0.92}}`, want: 83.42},
		{name: "missing target currency", status: http.StatusOK, body: `{"base":"USD","rates":{"EUR":0.92}}`, wantErr: true},
		{name: "zero rate", status: http.StatusOK, body: `{"rates":{"INR":0}}`, wantErr: true},
		{name: "unexpected shape", status: http.StatusOK, body: `{"data":[1,2,3]}`, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := jsonServer(t, tt.status, tt.body)
			cfg := testConfig()
			cfg.FX.BaseURL = srv.URL

			got, err := NewExchangeRateRepository(cfg, logger.NewNop()).Get(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExchangeRateRepository_Unreachable(t *testing.T) {
	cfg := testConfig()
	cfg.FX.BaseURL = "http://127.0.0.1:1"

	_, err := NewExchangeRateRepository(cfg, logger.NewNop()).Get(context.Background())
	assert.Error(t, err)
}

func TestQuoteRepository_Get(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    float64
		wantPct float64
		wantErr error
	}{
		{
			name:    "ok",
			status:  http.StatusOK,
			body:    `{"Global Quote":{"01. symbol":"GLD","05. price":"185.4000","09. change":"-1.2500","10. change percent":"-0.6697%"}}`,
			want:    185.4,
			wantPct: -0.6697,
		},
		{
			name:    "empty record",
			status:  http.StatusOK,
			body:    `{"Global Quote":{}}`,
			wantErr: ErrQuoteNotFound,
		},
		{
			name:    "provider note",
			status:  http.StatusOK,
			body:    `{"Note":"Thank you for using Alpha Vantage! Our standard API call frequency is 5 calls per minute"}`,
			wantErr: ErrQuoteNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := jsonServer(t, tt.status, tt.body)
			cfg := testConfig()
			cfg.Quote.BaseURL = srv.URL

			got, err := NewQuoteRepository(cfg, logger.NewNop()).Get(context.Background(), "GLD")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Price)
			assert.Equal(t, tt.wantPct, got.ChangePercent)
			assert.Equal(t, common.QUOTE_SOURCE_LIVE, got.Source)
		})
	}
}

func TestQuoteRepository_SendsQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "GLOBAL_QUOTE", r.URL.Query().Get("function"))
		assert.Equal(t, "TCS.NS", r.URL.Query().Get("symbol"))
		assert.Equal(t, "secret", r.URL.Query().Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Global Quote":{"05. price":"3900.10","09. change":"12.00","10. change percent":"0.31%"}}`))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.Quote.BaseURL = srv.URL
	cfg.Quote.APIKey = "secret"

	got, err := NewQuoteRepository(cfg, logger.NewNop()).Get(context.Background(), "TCS.NS")
	require.NoError(t, err)
	assert.Equal(t, 3900.10, got.Price)
	assert.Equal(t, 12.0, got.Change)
	assert.Equal(t, 0.31, got.ChangePercent)
}

func TestQuoteRepository_RateLimited(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"Global Quote":{"05. price":"1","09. change":"0","10. change percent":"0%"}}`)
	cfg := testConfig()
	cfg.Quote.BaseURL = srv.URL
	cfg.Quote.MaxRequestPerMin = 1

	repo := NewQuoteRepository(cfg, logger.NewNop())
	_, err := repo.Get(context.Background(), "AAPL")
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), "AAPL")
	assert.ErrorIs(t, err, ErrQuoteRateLimited)
}

func TestParseGlobalQuote_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		price string
		chg   string
		pct   string
	}{
		{name: "bad price", price: "n/a", chg: "1", pct: "1%"},
		{name: "bad change", price: "1", chg: "", pct: "1%"},
		{name: "bad percent", price: "1", chg: "1", pct: "one%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseGlobalQuote("X", &dto.AlphaVantageGlobalQuote{Price: tt.price, Change: tt.chg, ChangePercent: tt.pct})
			assert.Error(t, err)
		})
	}
}
