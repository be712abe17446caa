package service

import (
	"math"
	"math/rand/v2"

	"investment-advisor/internal/dto"
)

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type HistoricalService interface {
	GenerateSeries(allocation []dto.AssetAllocation) dto.HistoricalData
}

type historicalService struct {
	random RandomSource
}

func NewHistoricalService(random RandomSource) HistoricalService {
	if random == nil {
		random = rand.Float64
	}
	return &historicalService{random: random}
}

// GenerateSeries returns a synthetic upward trend: point i is
// 1000 + 150*i with uniform noise in [-100, 100). The allocation is not read.
func (s *historicalService) GenerateSeries(_ []dto.AssetAllocation) dto.HistoricalData {
	data := make([]float64, len(monthLabels))
	for i := range monthLabels {
		data[i] = math.Round(1000 + float64(i)*150 + (s.random()*200 - 100))
	}
	return dto.HistoricalData{
		Labels: append([]string(nil), monthLabels...),
		Data:   data,
	}
}
