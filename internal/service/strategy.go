package service

import (
	"fmt"
	"math"

	"investment-advisor/internal/dto"
	"investment-advisor/pkg/utils"
)

// AnnualizedReturn is the simple (non-compounded) yearly return, in percent,
// needed to grow capital into target over periodYears.
func AnnualizedReturn(capital, target float64, periodYears int) float64 {
	if capital <= 0 || periodYears <= 0 {
		return 0
	}
	return ((target - capital) / capital * 100) / float64(periodYears)
}

// DetermineStrategy picks SIP when the horizon is long enough and the
// required return is high enough, lump sum otherwise. The monthly amount is
// expressed in the target currency.
func DetermineStrategy(rules dto.StrategyRules, profile dto.InvestmentProfile, exchangeRate float64) dto.Strategy {
	period := profile.InvestmentPeriod
	annualized := AnnualizedReturn(profile.CapitalAmount, profile.TargetGrowth, period)

	if period > rules.SIPMinPeriodYears && annualized > rules.SIPMinAnnualReturnPct {
		monthly := math.Round(profile.CapitalAmount * exchangeRate / float64(period*12))
		return dto.Strategy{
			Type:          dto.StrategySIP,
			Rationale:     fmt.Sprintf(rules.SIPRationale, period),
			MonthlyAmount: utils.ToPointer(monthly),
		}
	}

	return dto.Strategy{
		Type:      dto.StrategyLumpSum,
		Rationale: rules.LumpSumRationale,
	}
}
