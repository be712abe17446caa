package dto

type RiskTolerance string

const (
	RiskLow      RiskTolerance = "low"
	RiskModerate RiskTolerance = "moderate"
	RiskHigh     RiskTolerance = "high"
)

// RiskTolerances lists every tier in ascending order of risk.
func RiskTolerances() []RiskTolerance {
	return []RiskTolerance{RiskLow, RiskModerate, RiskHigh}
}

func (r RiskTolerance) Valid() bool {
	switch r {
	case RiskLow, RiskModerate, RiskHigh:
		return true
	default:
		return false
	}
}

type StrategyType string

const (
	StrategyLumpSum StrategyType = "lump_sum"
	StrategySIP     StrategyType = "sip"
)

const (
	// WizardFirstStep and WizardLastStep bound the profile wizard.
	WizardFirstStep = 0
	WizardLastStep  = 4
)
