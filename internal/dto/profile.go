package dto

// InvestmentProfile is what the wizard submits for analysis.
type InvestmentProfile struct {
	CapitalAmount    float64       `json:"capital_amount" validate:"gt=0"`
	InvestmentPeriod int           `json:"investment_period" validate:"gt=0"`
	Sectors          []string      `json:"sectors" validate:"dive,required"`
	RiskTolerance    RiskTolerance `json:"risk_tolerance" validate:"required,oneof=low moderate high"`
	TargetGrowth     float64       `json:"target_growth" validate:"gte=0"`
	Preferences      string        `json:"preferences" validate:"max=2000"`
}
