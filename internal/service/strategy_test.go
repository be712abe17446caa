package service

import (
	"fmt"
	"testing"

	"investment-advisor/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnualizedReturn(t *testing.T) {
	tests := []struct {
		name    string
		capital float64
		target  float64
		period  int
		want    float64
	}{
		{name: "fifty percent over five years", capital: 50000, target: 75000, period: 5, want: 10},
		{name: "doubling over five years", capital: 50000, target: 100000, period: 5, want: 20},
		{name: "target below capital", capital: 1000, target: 500, period: 1, want: -50},
		{name: "zero capital", capital: 0, target: 1000, period: 5, want: 0},
		{name: "zero period", capital: 1000, target: 2000, period: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AnnualizedReturn(tt.capital, tt.target, tt.period), 1e-9)
		})
	}
}

func TestDetermineStrategy(t *testing.T) {
	rules := testCatalog(t).StrategyRules()

	t.Run("modest return is lump sum", func(t *testing.T) {
		got := DetermineStrategy(rules, dto.InvestmentProfile{
			CapitalAmount: 50000, InvestmentPeriod: 5, TargetGrowth: 75000, RiskTolerance: dto.RiskModerate,
		}, 83)

		assert.Equal(t, dto.StrategyLumpSum, got.Type)
		assert.Equal(t, rules.LumpSumRationale, got.Rationale)
		assert.Nil(t, got.MonthlyAmount)
	})

	t.Run("long horizon with high return is sip", func(t *testing.T) {
		got := DetermineStrategy(rules, dto.InvestmentProfile{
			CapitalAmount: 50000, InvestmentPeriod: 5, TargetGrowth: 100000, RiskTolerance: dto.RiskHigh,
		}, 83)

		assert.Equal(t, dto.StrategySIP, got.Type)
		assert.Equal(t, fmt.Sprintf(rules.SIPRationale, 5), got.Rationale)
		assert.Contains(t, got.Rationale, "5-year")
		require.NotNil(t, got.MonthlyAmount)
		assert.Equal(t, 69167.0, *got.MonthlyAmount)
	})

	t.Run("two year horizon is never sip", func(t *testing.T) {
		got := DetermineStrategy(rules, dto.InvestmentProfile{
			CapitalAmount: 1000, InvestmentPeriod: 2, TargetGrowth: 10000,
		}, 83)
		assert.Equal(t, dto.StrategyLumpSum, got.Type)
	})

	t.Run("exactly twelve percent is lump sum", func(t *testing.T) {
		got := DetermineStrategy(rules, dto.InvestmentProfile{
			CapitalAmount: 1000, InvestmentPeriod: 5, TargetGrowth: 1600,
		}, 83)
		assert.Equal(t, dto.StrategyLumpSum, got.Type)
	})

	t.Run("zero capital does not divide by zero", func(t *testing.T) {
		got := DetermineStrategy(rules, dto.InvestmentProfile{
			CapitalAmount: 0, InvestmentPeriod: 5, TargetGrowth: 1000,
		}, 83)
		assert.Equal(t, dto.StrategyLumpSum, got.Type)
	})
}

func TestDetermineStrategy_Grid(t *testing.T) {
	rules := testCatalog(t).StrategyRules()

	for period := 1; period <= 10; period++ {
		for _, target := range []float64{0, 5000, 10000, 15000, 20000, 50000} {
			profile := dto.InvestmentProfile{CapitalAmount: 10000, InvestmentPeriod: period, TargetGrowth: target}
			got := DetermineStrategy(rules, profile, 83)

			wantSIP := period > 2 && AnnualizedReturn(10000, target, period) > 12
			if wantSIP {
				assert.Equal(t, dto.StrategySIP, got.Type, "period=%d target=%v", period, target)
				require.NotNil(t, got.MonthlyAmount)
			} else {
				assert.Equal(t, dto.StrategyLumpSum, got.Type, "period=%d target=%v", period, target)
				assert.Nil(t, got.MonthlyAmount)
			}
		}
	}
}
