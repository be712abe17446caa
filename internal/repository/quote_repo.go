package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"investment-advisor/config"
	"investment-advisor/internal/dto"
	"investment-advisor/pkg/common"
	"investment-advisor/pkg/httpclient"
	"investment-advisor/pkg/logger"
	"investment-advisor/pkg/ratelimit"
)

var (
	ErrQuoteRateLimited = errors.New("quote provider request budget exhausted")
	ErrQuoteNotFound    = errors.New("quote not available")
)

type QuoteRepository interface {
	Get(ctx context.Context, symbol string) (*dto.Quote, error)
}

// alphaVantageQuoteRepository reads GLOBAL_QUOTE records. Requests over the
// per-minute budget of the API key fail immediately instead of queueing.
type alphaVantageQuoteRepository struct {
	httpClient httpclient.HTTPClient
	cfg        *config.Config
	log        *logger.Logger
	limiters   *ratelimit.LimiterStore
}

func NewQuoteRepository(cfg *config.Config, log *logger.Logger) QuoteRepository {
	return &alphaVantageQuoteRepository{
		httpClient: httpclient.New(cfg.Quote.BaseURL, cfg.Quote.Timeout, ""),
		cfg:        cfg,
		log:        log,
		limiters:   ratelimit.NewPerMinuteStore(cfg.Quote.MaxRequestPerMin),
	}
}

func (r *alphaVantageQuoteRepository) Get(ctx context.Context, symbol string) (*dto.Quote, error) {
	if !r.limiters.Allow(r.cfg.Quote.APIKey) {
		r.log.WarnContext(ctx, "Quote API request limit exceeded",
			logger.StringField("symbol", symbol),
			logger.IntField("max_request_per_min", r.cfg.Quote.MaxRequestPerMin),
		)
		return nil, ErrQuoteRateLimited
	}

	queryParams := map[string]string{
		"function": "GLOBAL_QUOTE",
		"symbol":   symbol,
		"apikey":   r.cfg.Quote.APIKey,
	}

	var body dto.AlphaVantageQuoteResponse
	resp, err := r.httpClient.Get(ctx, "/query", queryParams, nil, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote api returned status %d for %s", resp.StatusCode, symbol)
	}

	if body.GlobalQuote == nil || body.GlobalQuote.Price == "" {
		if msg := body.Note + body.Information; msg != "" {
			r.log.DebugContext(ctx, "Quote API message", logger.StringField("symbol", symbol), logger.StringField("message", msg))
		}
		return nil, fmt.Errorf("%w: %s", ErrQuoteNotFound, symbol)
	}

	return parseGlobalQuote(symbol, body.GlobalQuote)
}

func parseGlobalQuote(symbol string, q *dto.AlphaVantageGlobalQuote) (*dto.Quote, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(q.Price), 64)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", q.Price, err)
	}
	change, err := strconv.ParseFloat(strings.TrimSpace(q.Change), 64)
	if err != nil {
		return nil, fmt.Errorf("parse change %q: %w", q.Change, err)
	}
	pct := strings.TrimSuffix(strings.TrimSpace(q.ChangePercent), "%")
	changePercent, err := strconv.ParseFloat(pct, 64)
	if err != nil {
		return nil, fmt.Errorf("parse change percent %q: %w", q.ChangePercent, err)
	}

	return &dto.Quote{
		Symbol:        symbol,
		Price:         price,
		Change:        change,
		ChangePercent: changePercent,
		Source:        common.QUOTE_SOURCE_LIVE,
	}, nil
}
