package service

import (
	"context"

	"investment-advisor/config"
	"investment-advisor/internal/dto"
	"investment-advisor/internal/repository"
	"investment-advisor/pkg/common"
	"investment-advisor/pkg/logger"
	"investment-advisor/pkg/utils"

	"golang.org/x/sync/errgroup"
)

type RecommendationService interface {
	// Analyze builds a full recommendation for profile. It always returns a
	// result; upstream failures are absorbed along the way.
	Analyze(ctx context.Context, profile dto.InvestmentProfile) *dto.AnalysisResult
}

type recommendationService struct {
	cfg               *config.Config
	log               *logger.Logger
	catalogRepo       repository.CatalogRepository
	marketDataService MarketDataService
	allocationService AllocationService
}

func NewRecommendationService(
	cfg *config.Config,
	log *logger.Logger,
	catalogRepo repository.CatalogRepository,
	marketDataService MarketDataService,
	allocationService AllocationService,
) RecommendationService {
	return &recommendationService{
		cfg:               cfg,
		log:               log,
		catalogRepo:       catalogRepo,
		marketDataService: marketDataService,
		allocationService: allocationService,
	}
}

func (s *recommendationService) Analyze(ctx context.Context, profile dto.InvestmentProfile) *dto.AnalysisResult {
	exchangeRate := s.marketDataService.ExchangeRate(ctx)

	allocation := ConvertAllocation(
		s.allocationService.ComputeAllocation(profile.RiskTolerance, profile.CapitalAmount),
		exchangeRate,
	)

	tier, ok := s.catalogRepo.Tier(profile.RiskTolerance)
	if !ok {
		s.log.WarnContext(ctx, "Unknown risk tolerance, returning empty tier",
			logger.StringField("risk_tolerance", string(profile.RiskTolerance)),
		)
	}

	specific := s.enrichSecurities(ctx, tier.Securities, exchangeRate)

	recommendation := dto.InvestmentRecommendation{
		AssetAllocation:         allocation,
		SpecificRecommendations: specific,
		Strategy:                DetermineStrategy(s.catalogRepo.StrategyRules(), profile, exchangeRate),
		ProcessGuide:            s.catalogRepo.ProcessGuide(),
		RiskAssessment: dto.RiskAssessment{
			Score:       tier.RiskScore,
			Description: tier.RiskDescription,
		},
	}

	s.log.InfoContext(ctx, "Recommendation generated",
		logger.StringField("risk_tolerance", string(profile.RiskTolerance)),
		logger.StringField("strategy", string(recommendation.Strategy.Type)),
		logger.FloatField("exchange_rate", exchangeRate),
		logger.IntField("securities", len(specific)),
	)

	return &dto.AnalysisResult{
		Recommendation: recommendation,
		ExchangeRate:   exchangeRate,
	}
}

// enrichSecurities quotes every security concurrently. Results keep the
// input order; an item whose enrichment panics gets zeroed price fields and
// does not affect the others.
func (s *recommendationService) enrichSecurities(ctx context.Context, securities []dto.Security, exchangeRate float64) []dto.SpecificRecommendation {
	out := make([]dto.SpecificRecommendation, len(securities))

	var g errgroup.Group
	if s.cfg.Quote.MaxConcurrency > 0 {
		g.SetLimit(s.cfg.Quote.MaxConcurrency)
	}

	for i, sec := range securities {
		out[i] = dto.SpecificRecommendation{
			Symbol:     sec.Symbol,
			Name:       sec.Name,
			Sector:     sec.Sector,
			Allocation: sec.Allocation,
			Rationale:  sec.Rationale,
		}

		g.Go(func() error {
			var priced dto.SpecificRecommendation
			err := utils.Recover(func() {
				quote := s.marketDataService.Quote(ctx, sec.Symbol)
				priced = s.applyQuote(out[i], quote, exchangeRate)
			})
			if err != nil {
				s.log.ErrorContext(ctx, "Failed to enrich security, zeroing price fields",
					logger.StringField("symbol", sec.Symbol),
					logger.ErrorField(err),
				)
				priced = zeroPrices(out[i])
			}
			out[i] = priced
			return nil
		})
	}

	_ = g.Wait()
	return out
}

func (s *recommendationService) applyQuote(rec dto.SpecificRecommendation, quote dto.Quote, exchangeRate float64) dto.SpecificRecommendation {
	priceInINR := quote.Price * exchangeRate
	if s.marketDataService.IsDomestic(rec.Symbol) {
		priceInINR = quote.Price
	}

	rec.CurrentPrice = utils.ToPointer(quote.Price)
	rec.PriceChange = utils.ToPointer(quote.Change)
	rec.PriceChangePercent = utils.ToPointer(quote.ChangePercent)
	rec.PriceInINR = utils.ToPointer(priceInINR)
	rec.PriceSource = quote.Source
	return rec
}

func zeroPrices(rec dto.SpecificRecommendation) dto.SpecificRecommendation {
	rec.CurrentPrice = utils.ToPointer(0.0)
	rec.PriceChange = utils.ToPointer(0.0)
	rec.PriceChangePercent = utils.ToPointer(0.0)
	rec.PriceInINR = utils.ToPointer(0.0)
	rec.PriceSource = common.QUOTE_SOURCE_NONE
	return rec
}
