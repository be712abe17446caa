package dto

type AssetAllocation struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	Amount     float64 `json:"amount"`
}

// SpecificRecommendation is one security in the recommended basket. The
// price fields stay nil until the quote enrichment step has run.
type SpecificRecommendation struct {
	Symbol             string   `json:"symbol"`
	Name               string   `json:"name"`
	Sector             string   `json:"sector"`
	Allocation         float64  `json:"allocation"`
	Rationale          string   `json:"rationale"`
	CurrentPrice       *float64 `json:"current_price,omitempty"`
	PriceChange        *float64 `json:"price_change,omitempty"`
	PriceChangePercent *float64 `json:"price_change_percent,omitempty"`
	PriceInINR         *float64 `json:"price_in_inr,omitempty"`
	PriceSource        string   `json:"price_source,omitempty"`
}

type Strategy struct {
	Type          StrategyType `json:"type"`
	Rationale     string       `json:"rationale"`
	MonthlyAmount *float64     `json:"monthly_amount,omitempty"`
}

type RiskAssessment struct {
	Score       int    `json:"score"`
	Description string `json:"description"`
}

type InvestmentRecommendation struct {
	AssetAllocation         []AssetAllocation        `json:"asset_allocation"`
	SpecificRecommendations []SpecificRecommendation `json:"specific_recommendations"`
	Strategy                Strategy                 `json:"strategy"`
	ProcessGuide            []string                 `json:"process_guide"`
	RiskAssessment          RiskAssessment           `json:"risk_assessment"`
}

// AnalysisResult is returned by the recommendation composer.
type AnalysisResult struct {
	Recommendation InvestmentRecommendation `json:"recommendation"`
	ExchangeRate   float64                  `json:"exchange_rate"`
}

type HistoricalData struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type HistoricalRequest struct {
	AssetAllocation []AssetAllocation `json:"asset_allocation" validate:"required,min=1"`
}
