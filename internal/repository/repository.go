package repository

import (
	"investment-advisor/config"
	"investment-advisor/pkg/logger"
)

type Repository struct {
	ExchangeRateRepo ExchangeRateRepository
	QuoteRepo        QuoteRepository
	CatalogRepo      CatalogRepository
}

func NewRepository(cfg *config.Config, log *logger.Logger) (*Repository, error) {
	catalogRepo, err := NewCatalogRepository(cfg.Catalog.Path, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		ExchangeRateRepo: NewExchangeRateRepository(cfg, log),
		QuoteRepo:        NewQuoteRepository(cfg, log),
		CatalogRepo:      catalogRepo,
	}, nil
}
