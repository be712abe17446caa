package service

import (
	"investment-advisor/config"
	"investment-advisor/internal/repository"
	"investment-advisor/pkg/cache"
	"investment-advisor/pkg/logger"
)

type Service struct {
	MarketDataService     MarketDataService
	AllocationService     AllocationService
	RecommendationService RecommendationService
	HistoricalService     HistoricalService
	SessionService        SessionService
	CatalogRepo           repository.CatalogRepository
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	sessionStore cache.Cache,
) *Service {
	marketDataService := NewMarketDataService(cfg, log, repo.ExchangeRateRepo, repo.QuoteRepo, repo.CatalogRepo, nil)
	allocationService := NewAllocationService(repo.CatalogRepo)
	recommendationService := NewRecommendationService(cfg, log, repo.CatalogRepo, marketDataService, allocationService)
	historicalService := NewHistoricalService(nil)
	sessionService := NewSessionService(cfg, log, sessionStore, recommendationService, historicalService)

	return &Service{
		MarketDataService:     marketDataService,
		AllocationService:     allocationService,
		RecommendationService: recommendationService,
		HistoricalService:     historicalService,
		SessionService:        sessionService,
		CatalogRepo:           repo.CatalogRepo,
	}
}
