package service

import (
	"testing"

	"investment-advisor/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoricalService_GenerateSeries(t *testing.T) {
	svc := NewHistoricalService(nil)

	for run := 0; run < 50; run++ {
		got := svc.GenerateSeries(nil)

		require.Len(t, got.Labels, 12)
		require.Len(t, got.Data, 12)
		assert.Equal(t, "Jan", got.Labels[0])
		assert.Equal(t, "Dec", got.Labels[11])

		for i, v := range got.Data {
			center := 1000 + float64(i)*150
			assert.GreaterOrEqual(t, v, center-100)
			assert.LessOrEqual(t, v, center+100)
			assert.Equal(t, float64(int64(v)), v, "values are whole numbers")
		}
	}
}

func TestHistoricalService_Deterministic(t *testing.T) {
	svc := NewHistoricalService(sequence(0.5))
	got := svc.GenerateSeries([]dto.AssetAllocation{{Name: "Gold", Percentage: 100, Amount: 1}})

	want := []float64{1000, 1150, 1300, 1450, 1600, 1750, 1900, 2050, 2200, 2350, 2500, 2650}
	assert.Equal(t, want, got.Data)
}

func TestHistoricalService_IgnoresAllocation(t *testing.T) {
	a := NewHistoricalService(sequence(0, 0.99)).GenerateSeries(nil)
	b := NewHistoricalService(sequence(0, 0.99)).GenerateSeries([]dto.AssetAllocation{{Name: "REITs", Amount: 1e9}})
	assert.Equal(t, a, b)
}
