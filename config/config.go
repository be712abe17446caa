package config

import (
	"fmt"
	"strings"
	"time"

	"investment-advisor/pkg/common"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log       Logger    `mapstructure:"logger"`
	API       API       `mapstructure:"api"`
	FX        FX        `mapstructure:"fx"`
	Quote     Quote     `mapstructure:"quote"`
	Market    Market    `mapstructure:"market"`
	Catalog   Catalog   `mapstructure:"catalog"`
	Session   Session   `mapstructure:"session"`
	Auth      Auth      `mapstructure:"auth"`
	RateLimit RateLimit `mapstructure:"rate_limit"`
	CORS      CORS      `mapstructure:"cors"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port int `mapstructure:"port"`
}

// FX is the USD->target currency rate source.
type FX struct {
	BaseURL        string        `mapstructure:"base_url"`
	Endpoint       string        `mapstructure:"endpoint"`
	TargetCurrency string        `mapstructure:"target_currency"`
	FallbackRate   float64       `mapstructure:"fallback_rate"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// Quote is the per-symbol price source (Alpha Vantage GLOBAL_QUOTE).
type Quote struct {
	BaseURL          string        `mapstructure:"base_url"`
	APIKey           string        `mapstructure:"api_key"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxRequestPerMin int           `mapstructure:"max_request_per_min"`
	MaxConcurrency   int           `mapstructure:"max_concurrency"`
}

type Market struct {
	DomesticSuffix string `mapstructure:"domestic_suffix"`
}

type Catalog struct {
	Path string `mapstructure:"path"`
}

type Session struct {
	Expiration      time.Duration `mapstructure:"expiration"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type Auth struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

type RateLimit struct {
	Rate      float64       `mapstructure:"rate"`
	Burst     int           `mapstructure:"burst"`
	ExpiresIn time.Duration `mapstructure:"expires_in"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")

	v.SetDefault("api.port", 8080)

	v.SetDefault("fx.base_url", "https://api.exchangerate-api.com")
	v.SetDefault("fx.endpoint", "/v4/latest/USD")
	v.SetDefault("fx.target_currency", common.CURRENCY_INR)
	v.SetDefault("fx.fallback_rate", 83.0)
	v.SetDefault("fx.timeout", 5*time.Second)

	v.SetDefault("quote.base_url", "https://www.alphavantage.co")
	v.SetDefault("quote.api_key", "demo")
	v.SetDefault("quote.timeout", 5*time.Second)
	v.SetDefault("quote.max_request_per_min", 75)
	v.SetDefault("quote.max_concurrency", 6)

	v.SetDefault("market.domestic_suffix", ".NS")

	v.SetDefault("catalog.path", "")

	v.SetDefault("session.expiration", 2*time.Hour)
	v.SetDefault("session.cleanup_interval", 10*time.Minute)

	v.SetDefault("auth.email", "testuser@example.com")
	v.SetDefault("auth.password", "Password123!")
	v.SetDefault("auth.name", "Test User")

	v.SetDefault("rate_limit.rate", 10.0)
	v.SetDefault("rate_limit.burst", 30)
	v.SetDefault("rate_limit.expires_in", 3*time.Minute)

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})
}

// Load reads config.yaml from the working directory, then .env, then the
// environment. Environment keys use "_" in place of ".", e.g. QUOTE_API_KEY.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AddConfigPath(".")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in defaults without touching files or the
// environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}
