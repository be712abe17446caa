package repository

import (
	"context"
	"fmt"
	"net/http"

	"investment-advisor/config"
	"investment-advisor/internal/dto"
	"investment-advisor/pkg/httpclient"
	"investment-advisor/pkg/logger"
)

type ExchangeRateRepository interface {
	// Get returns how many target-currency units one base-currency unit buys.
	Get(ctx context.Context) (float64, error)
}

type exchangeRateRepository struct {
	httpClient httpclient.HTTPClient
	cfg        *config.Config
	log        *logger.Logger
}

func NewExchangeRateRepository(cfg *config.Config, log *logger.Logger) ExchangeRateRepository {
	return &exchangeRateRepository{
		httpClient: httpclient.New(cfg.FX.BaseURL, cfg.FX.Timeout, ""),
		cfg:        cfg,
		log:        log,
	}
}

func (r *exchangeRateRepository) Get(ctx context.Context) (float64, error) {
	var body dto.ExchangeRateAPIResponse
	resp, err := r.httpClient.Get(ctx, r.cfg.FX.Endpoint, nil, nil, &body)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch exchange rate: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.log.WarnContext(ctx, "Exchange rate API returned Non-OK status",
			logger.IntField("status_code", resp.StatusCode),
		)
		return 0, fmt.Errorf("exchange rate api returned status: %d", resp.StatusCode)
	}

	rate, ok := body.Rates[r.cfg.FX.TargetCurrency]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("exchange rate for %s missing from response", r.cfg.FX.TargetCurrency)
	}

	return rate, nil
}
