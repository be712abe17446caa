package dto

// Quote is a current price with its day change. Source is one of
// common.QUOTE_SOURCE_*.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Source        string  `json:"source"`
}

type ExchangeRate struct {
	Base   string  `json:"base"`
	Target string  `json:"target"`
	Rate   float64 `json:"rate"`
}

// ExchangeRateAPIResponse is the body of GET /v4/latest/{base}.
type ExchangeRateAPIResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// AlphaVantageGlobalQuote is the "Global Quote" record. All values arrive as
// strings; change percent carries a trailing "%".
type AlphaVantageGlobalQuote struct {
	Symbol        string `json:"01. symbol"`
	Price         string `json:"05. price"`
	Change        string `json:"09. change"`
	ChangePercent string `json:"10. change percent"`
}

type AlphaVantageQuoteResponse struct {
	GlobalQuote *AlphaVantageGlobalQuote `json:"Global Quote"`
	Note        string                   `json:"Note"`
	Information string                   `json:"Information"`
}
