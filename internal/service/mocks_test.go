package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"investment-advisor/config"
	"investment-advisor/internal/dto"
	"investment-advisor/internal/repository"
	"investment-advisor/pkg/logger"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockExchangeRateRepo struct {
	mock.Mock
}

func (m *mockExchangeRateRepo) Get(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type mockQuoteRepo struct {
	mock.Mock
}

func (m *mockQuoteRepo) Get(ctx context.Context, symbol string) (*dto.Quote, error) {
	args := m.Called(ctx, symbol)
	q, _ := args.Get(0).(*dto.Quote)
	return q, args.Error(1)
}

type mockMarketData struct {
	mock.Mock
}

func (m *mockMarketData) ExchangeRate(ctx context.Context) float64 {
	return m.Called(ctx).Get(0).(float64)
}

func (m *mockMarketData) Quote(ctx context.Context, symbol string) dto.Quote {
	return m.Called(ctx, symbol).Get(0).(dto.Quote)
}

func (m *mockMarketData) SyntheticQuote(symbol string) dto.Quote {
	return m.Called(symbol).Get(0).(dto.Quote)
}

func (m *mockMarketData) IsDomestic(symbol string) bool {
	return strings.HasSuffix(symbol, ".NS")
}

// sequence returns a RandomSource that cycles through vals.
func sequence(vals ...float64) RandomSource {
	var (
		mu sync.Mutex
		i  int
	)
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		v := vals[i%len(vals)]
		i++
		return v
	}
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.FX.Timeout = time.Second
	cfg.Quote.Timeout = time.Second
	return cfg
}

func testCatalog(t *testing.T) repository.CatalogRepository {
	t.Helper()
	repo, err := repository.NewCatalogRepository("", logger.NewNop())
	require.NoError(t, err)
	return repo
}
