package dto

// Catalog holds every static table the recommendation pipeline reads. It is
// loaded from versioned YAML so new tiers or wording need no code change.
type Catalog struct {
	Version      string                       `mapstructure:"version" json:"version"`
	Tiers        map[RiskTolerance]TierCatalog `mapstructure:"tiers" json:"tiers"`
	ProcessGuide []string                     `mapstructure:"process_guide" json:"process_guide"`
	Strategy     StrategyRules                `mapstructure:"strategy" json:"strategy"`
	BasePrices   []BasePrice                  `mapstructure:"base_prices" json:"base_prices"`
	Stocks       []ReferenceSecurity          `mapstructure:"stocks" json:"stocks"`
	Funds        []ReferenceSecurity          `mapstructure:"funds" json:"funds"`
	Sectors      []string                     `mapstructure:"sectors" json:"sectors"`
	RiskOptions  []RiskOption                 `mapstructure:"risk_options" json:"risk_options"`
}

type TierCatalog struct {
	Allocations     []AllocationTemplate `mapstructure:"allocations" json:"allocations"`
	Securities      []Security           `mapstructure:"securities" json:"securities"`
	RiskScore       int                  `mapstructure:"risk_score" json:"risk_score"`
	RiskDescription string               `mapstructure:"risk_description" json:"risk_description"`
}

type AllocationTemplate struct {
	Name       string  `mapstructure:"name" json:"name"`
	Percentage float64 `mapstructure:"percentage" json:"percentage"`
	Color      string  `mapstructure:"color" json:"color"`
}

type Security struct {
	Symbol     string  `mapstructure:"symbol" json:"symbol"`
	Name       string  `mapstructure:"name" json:"name"`
	Sector     string  `mapstructure:"sector" json:"sector"`
	Allocation float64 `mapstructure:"allocation" json:"allocation"`
	Rationale  string  `mapstructure:"rationale" json:"rationale"`
}

// StrategyRules drive the lump sum vs SIP decision. SIPRationale is a format
// string taking the investment period in years.
type StrategyRules struct {
	SIPMinPeriodYears     int     `mapstructure:"sip_min_period_years" json:"sip_min_period_years"`
	SIPMinAnnualReturnPct float64 `mapstructure:"sip_min_annual_return_pct" json:"sip_min_annual_return_pct"`
	SIPRationale          string  `mapstructure:"sip_rationale" json:"sip_rationale"`
	LumpSumRationale      string  `mapstructure:"lump_sum_rationale" json:"lump_sum_rationale"`
}

type BasePrice struct {
	Symbol string  `mapstructure:"symbol" json:"symbol"`
	Price  float64 `mapstructure:"price" json:"price"`
}

type ReferenceSecurity struct {
	Symbol       string `mapstructure:"symbol" json:"symbol"`
	Name         string `mapstructure:"name" json:"name"`
	Sector       string `mapstructure:"sector" json:"sector"`
	ExpenseRatio string `mapstructure:"expense_ratio" json:"expense_ratio,omitempty"`
}

type RiskOption struct {
	Level          RiskTolerance `mapstructure:"level" json:"level"`
	Title          string        `mapstructure:"title" json:"title"`
	Description    string        `mapstructure:"description" json:"description"`
	ExpectedReturn string        `mapstructure:"expected_return" json:"expected_return"`
}

// WizardOptions is what the profile form needs to render its choices.
type WizardOptions struct {
	Sectors     []string     `json:"sectors"`
	RiskOptions []RiskOption `json:"risk_options"`
}
