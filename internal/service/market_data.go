package service

import (
	"context"
	"math/rand/v2"
	"strings"

	"investment-advisor/config"
	"investment-advisor/internal/dto"
	"investment-advisor/internal/repository"
	"investment-advisor/pkg/common"
	"investment-advisor/pkg/logger"
	"investment-advisor/pkg/utils"
)

// RandomSource returns a value in [0, 1). It must be safe for concurrent use.
type RandomSource func() float64

// MarketDataService is the market data gateway. None of its methods fail:
// every upstream error degrades to the fallback rate or a synthetic quote.
type MarketDataService interface {
	ExchangeRate(ctx context.Context) float64
	Quote(ctx context.Context, symbol string) dto.Quote
	SyntheticQuote(symbol string) dto.Quote
	IsDomestic(symbol string) bool
}

type marketDataService struct {
	cfg              *config.Config
	log              *logger.Logger
	exchangeRateRepo repository.ExchangeRateRepository
	quoteRepo        repository.QuoteRepository
	catalogRepo      repository.CatalogRepository
	random           RandomSource
}

func NewMarketDataService(
	cfg *config.Config,
	log *logger.Logger,
	exchangeRateRepo repository.ExchangeRateRepository,
	quoteRepo repository.QuoteRepository,
	catalogRepo repository.CatalogRepository,
	random RandomSource,
) MarketDataService {
	if random == nil {
		random = rand.Float64
	}
	return &marketDataService{
		cfg:              cfg,
		log:              log,
		exchangeRateRepo: exchangeRateRepo,
		quoteRepo:        quoteRepo,
		catalogRepo:      catalogRepo,
		random:           random,
	}
}

func (s *marketDataService) ExchangeRate(ctx context.Context) float64 {
	ctx, cancel := utils.WithTimeout(ctx, s.cfg.FX.Timeout)
	defer cancel()

	rate, err := s.exchangeRateRepo.Get(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "Failed to fetch exchange rate, using fallback",
			logger.ErrorField(err),
			logger.FloatField("fallback_rate", s.cfg.FX.FallbackRate),
		)
		return s.cfg.FX.FallbackRate
	}
	return rate
}

func (s *marketDataService) Quote(ctx context.Context, symbol string) dto.Quote {
	ctx, cancel := utils.WithTimeout(ctx, s.cfg.Quote.Timeout)
	defer cancel()

	quote, err := s.quoteRepo.Get(ctx, symbol)
	if err != nil || quote == nil {
		s.log.WarnContext(ctx, "Failed to fetch quote, using synthetic data",
			logger.StringField("symbol", symbol),
			logger.ErrorField(err),
		)
		return s.SyntheticQuote(symbol)
	}
	return *quote
}

// SyntheticQuote derives a quote from the catalog base price (or a random
// one in [100, 300) for unknown symbols) moved by a uniform -3%..+3%.
func (s *marketDataService) SyntheticQuote(symbol string) dto.Quote {
	basePrice, ok := s.catalogRepo.BasePrice(symbol)
	if !ok {
		basePrice = 100 + s.random()*200
	}
	changePercent := (s.random() - 0.5) * 6
	change := basePrice * changePercent / 100
	price := basePrice + change

	return dto.Quote{
		Symbol:        symbol,
		Price:         utils.RoundTo(price, 2),
		Change:        utils.RoundTo(change, 2),
		ChangePercent: utils.RoundTo(changePercent, 2),
		Source:        common.QUOTE_SOURCE_SYNTHETIC,
	}
}

// IsDomestic reports whether symbol is already priced in the target currency.
func (s *marketDataService) IsDomestic(symbol string) bool {
	return s.cfg.Market.DomesticSuffix != "" && strings.HasSuffix(strings.ToUpper(symbol), strings.ToUpper(s.cfg.Market.DomesticSuffix))
}
