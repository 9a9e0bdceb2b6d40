package config

import (
	"log"
	"strings"
	"time"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	JWTSecret       string
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`

	// Report cache; an empty RedisURL disables caching
	RedisURL       string        `mapstructure:"REDIS_URL"`
	ReportCacheTTL time.Duration `mapstructure:"REPORT_CACHE_TTL"`

	// RateLimit is a ulule/limiter formatted rate, e.g. "120-M"
	RateLimit string `mapstructure:"RATE_LIMIT"`

	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
	PosthogEndpoint string `mapstructure:"POSTHOG_ENDPOINT"`

	// Control-account codes for the cash flow statement and party ledgers
	CashFlowMapping domain.CashFlowMapping
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	defaults := domain.DefaultCashFlowMapping()

	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REPORT_CACHE_TTL", "10m")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("CASHFLOW_CASH_CODES", strings.Join(defaults.CashCodes, ","))
	v.SetDefault("CASHFLOW_RECEIVABLE_CODES", strings.Join(defaults.ReceivableCodes, ","))
	v.SetDefault("CASHFLOW_INVENTORY_CODES", strings.Join(defaults.InventoryCodes, ","))
	v.SetDefault("CASHFLOW_INPUT_TAX_CODES", strings.Join(defaults.InputTaxCodes, ","))
	v.SetDefault("CASHFLOW_PAYABLE_CODES", strings.Join(defaults.PayableCodes, ","))
	v.SetDefault("CASHFLOW_OUTPUT_TAX_CODES", strings.Join(defaults.OutputTaxCodes, ","))
	v.SetDefault("CASHFLOW_CUSTOMER_ADVANCE_CODES", strings.Join(defaults.CustomerAdvanceCodes, ","))

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cacheTTLStr := v.GetString("REPORT_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil || cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
		log.Printf("Warning: Invalid value for REPORT_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.FrontendBaseURL = v.GetString("FRONTEND_BASE_URL")
	cfg.RedisURL = v.GetString("REDIS_URL")
	cfg.ReportCacheTTL = cacheTTL
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")

	cfg.CashFlowMapping = domain.CashFlowMapping{
		CashCodes:            codeList(v, "CASHFLOW_CASH_CODES"),
		ReceivableCodes:      codeList(v, "CASHFLOW_RECEIVABLE_CODES"),
		InventoryCodes:       codeList(v, "CASHFLOW_INVENTORY_CODES"),
		InputTaxCodes:        codeList(v, "CASHFLOW_INPUT_TAX_CODES"),
		PayableCodes:         codeList(v, "CASHFLOW_PAYABLE_CODES"),
		OutputTaxCodes:       codeList(v, "CASHFLOW_OUTPUT_TAX_CODES"),
		CustomerAdvanceCodes: codeList(v, "CASHFLOW_CUSTOMER_ADVANCE_CODES"),
	}
	if len(cfg.CashFlowMapping.CashCodes) == 0 {
		log.Println("Warning: CASHFLOW_CASH_CODES is empty. Cash flow will report zero cash.")
	}

	return cfg, nil
}

// codeList reads a comma separated list of account codes.
func codeList(v *viper.Viper, key string) []string {
	var codes []string
	for _, code := range strings.Split(v.GetString(key), ",") {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
