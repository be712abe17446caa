package common

const (
	KEY_SESSION = "session:%s"
)

const (
	CURRENCY_USD = "USD"
	CURRENCY_INR = "INR"
)

const (
	QUOTE_SOURCE_LIVE      = "live"
	QUOTE_SOURCE_SYNTHETIC = "synthetic"
	QUOTE_SOURCE_NONE      = "none"
)
