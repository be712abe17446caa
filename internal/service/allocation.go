package service

import (
	"investment-advisor/internal/dto"
	"investment-advisor/internal/repository"
)

type AllocationService interface {
	// ComputeAllocation returns the tier template with amounts in the
	// profile's base currency, in template order. Unknown tiers yield nil.
	ComputeAllocation(risk dto.RiskTolerance, capitalAmount float64) []dto.AssetAllocation
}

type allocationService struct {
	catalogRepo repository.CatalogRepository
}

func NewAllocationService(catalogRepo repository.CatalogRepository) AllocationService {
	return &allocationService{catalogRepo: catalogRepo}
}

func (s *allocationService) ComputeAllocation(risk dto.RiskTolerance, capitalAmount float64) []dto.AssetAllocation {
	tier, ok := s.catalogRepo.Tier(risk)
	if !ok {
		return nil
	}

	allocations := make([]dto.AssetAllocation, 0, len(tier.Allocations))
	for _, t := range tier.Allocations {
		allocations = append(allocations, dto.AssetAllocation{
			Name:       t.Name,
			Percentage: t.Percentage,
			Color:      t.Color,
			Amount:     capitalAmount * t.Percentage / 100,
		})
	}
	return allocations
}

// ConvertAllocation rescales base-currency amounts by rate. It is the only
// place allocation amounts change currency.
func ConvertAllocation(allocations []dto.AssetAllocation, rate float64) []dto.AssetAllocation {
	converted := make([]dto.AssetAllocation, len(allocations))
	for i, a := range allocations {
		a.Amount = a.Amount * rate
		converted[i] = a
	}
	return converted
}
