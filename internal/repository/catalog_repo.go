package repository

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"investment-advisor/internal/dto"
	"investment-advisor/pkg/logger"

	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"
)

//go:embed catalog/catalog.yaml
var embeddedCatalog []byte

const percentTolerance = 1e-9

var ErrInvalidCatalog = errors.New("invalid catalog")

// CatalogRepository serves the static per-tier tables. Every method returns
// copies so callers can't mutate shared state.
type CatalogRepository interface {
	Version() string
	Tier(risk dto.RiskTolerance) (dto.TierCatalog, bool)
	ProcessGuide() []string
	StrategyRules() dto.StrategyRules
	BasePrice(symbol string) (float64, bool)
	Stocks() []dto.ReferenceSecurity
	Funds() []dto.ReferenceSecurity
	WizardOptions() dto.WizardOptions
}

type catalogRepository struct {
	catalog    dto.Catalog
	basePrices map[string]float64
}

// NewCatalogRepository loads the catalog at path, or the embedded one when
// path is empty, and rejects it if any tier is incomplete or its weights do
// not add up to 100.
func NewCatalogRepository(path string, log *logger.Logger) (CatalogRepository, error) {
	data := embeddedCatalog
	source := "embedded"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		data = b
		source = path
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	log.Info("Catalog loaded",
		logger.StringField("source", source),
		logger.StringField("version", catalog.Version),
	)

	return newCatalogRepository(*catalog), nil
}

func newCatalogRepository(catalog dto.Catalog) *catalogRepository {
	basePrices := make(map[string]float64, len(catalog.BasePrices))
	for _, bp := range catalog.BasePrices {
		basePrices[strings.ToUpper(bp.Symbol)] = bp.Price
	}
	return &catalogRepository{catalog: catalog, basePrices: basePrices}
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*dto.Catalog, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	var catalog dto.Catalog
	if err := v.Unmarshal(&catalog); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := ValidateCatalog(&catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

func ValidateCatalog(c *dto.Catalog) error {
	for _, risk := range dto.RiskTolerances() {
		tier, ok := c.Tiers[risk]
		if !ok {
			return fmt.Errorf("%w: missing tier %q", ErrInvalidCatalog, risk)
		}
		if len(tier.Allocations) == 0 || len(tier.Securities) == 0 {
			return fmt.Errorf("%w: tier %q has no allocations or securities", ErrInvalidCatalog, risk)
		}
		if tier.RiskScore <= 0 {
			return fmt.Errorf("%w: tier %q has no risk score", ErrInvalidCatalog, risk)
		}

		pcts := make([]float64, 0, len(tier.Allocations))
		for _, a := range tier.Allocations {
			pcts = append(pcts, a.Percentage)
		}
		if sum := floats.Sum(pcts); math.Abs(sum-100) > percentTolerance {
			return fmt.Errorf("%w: tier %q allocation percentages sum to %v", ErrInvalidCatalog, risk, sum)
		}

		weights := make([]float64, 0, len(tier.Securities))
		for _, s := range tier.Securities {
			weights = append(weights, s.Allocation)
		}
		if sum := floats.Sum(weights); math.Abs(sum-100) > percentTolerance {
			return fmt.Errorf("%w: tier %q security allocations sum to %v", ErrInvalidCatalog, risk, sum)
		}
	}

	for _, opt := range c.RiskOptions {
		if !opt.Level.Valid() {
			return fmt.Errorf("%w: unknown risk option level %q", ErrInvalidCatalog, opt.Level)
		}
	}

	if len(c.ProcessGuide) == 0 {
		return fmt.Errorf("%w: empty process guide", ErrInvalidCatalog)
	}
	if c.Strategy.SIPRationale == "" || c.Strategy.LumpSumRationale == "" {
		return fmt.Errorf("%w: missing strategy rationale", ErrInvalidCatalog)
	}
	return nil
}

func (r *catalogRepository) Version() string {
	return r.catalog.Version
}

func (r *catalogRepository) Tier(risk dto.RiskTolerance) (dto.TierCatalog, bool) {
	tier, ok := r.catalog.Tiers[risk]
	if !ok {
		return dto.TierCatalog{}, false
	}
	return dto.TierCatalog{
		Allocations:     append([]dto.AllocationTemplate(nil), tier.Allocations...),
		Securities:      append([]dto.Security(nil), tier.Securities...),
		RiskScore:       tier.RiskScore,
		RiskDescription: tier.RiskDescription,
	}, true
}

func (r *catalogRepository) ProcessGuide() []string {
	return append([]string(nil), r.catalog.ProcessGuide...)
}

func (r *catalogRepository) StrategyRules() dto.StrategyRules {
	return r.catalog.Strategy
}

func (r *catalogRepository) BasePrice(symbol string) (float64, bool) {
	p, ok := r.basePrices[strings.ToUpper(symbol)]
	return p, ok
}

func (r *catalogRepository) Stocks() []dto.ReferenceSecurity {
	return append([]dto.ReferenceSecurity(nil), r.catalog.Stocks...)
}

func (r *catalogRepository) Funds() []dto.ReferenceSecurity {
	return append([]dto.ReferenceSecurity(nil), r.catalog.Funds...)
}

func (r *catalogRepository) WizardOptions() dto.WizardOptions {
	return dto.WizardOptions{
		Sectors:     append([]string(nil), r.catalog.Sectors...),
		RiskOptions: append([]dto.RiskOption(nil), r.catalog.RiskOptions...),
	}
}
