package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration

	CORSOrigins []string
	GeoIPDBPath string

	// MoMo collection credentials. All optional: the request-to-pay endpoint
	// fails closed with an explanatory error when they are missing.
	MoMoBaseURL         string
	MoMoSubscriptionKey string
	MoMoAccessToken     string
	MoMoTargetEnv       string
	MoMoCurrency        string
	MoMoCallbackURL     string

	// Chat assistant. Optional; the chat endpoint errors when unset.
	OpenAIAPIKey   string
	OpenAIModel    string
	ChatMaxTokens  int
	ChatSystemRole string

	DashboardDonors int
	DashboardPosts  int
	ReportWindow    int

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
	DBMaxConns       int32
}

const defaultChatSystemRole = "You are Enactus Eswatini's helpful assistant. Be concise. " +
	"If asked about opportunities, courses, or donations, explain how the platform works and where to navigate. " +
	"If unsure, ask one clarifying question."

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    time.Hour * time.Duration(getEnvInt("TOKEN_TTL_HOURS", 72)),

		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		GeoIPDBPath: os.Getenv("GEOIP_DB_PATH"),

		MoMoBaseURL:         os.Getenv("MOMO_BASE_URL"),
		MoMoSubscriptionKey: os.Getenv("MOMO_SUBSCRIPTION_KEY"),
		MoMoAccessToken:     os.Getenv("MOMO_ACCESS_TOKEN"),
		MoMoTargetEnv:       getEnv("MOMO_TARGET_ENV", "sandbox"),
		MoMoCurrency:        getEnv("MOMO_CURRENCY", "SZL"),
		MoMoCallbackURL:     os.Getenv("MOMO_CALLBACK_URL"),

		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		ChatMaxTokens:  getEnvInt("CHAT_MAX_TOKENS", 250),
		ChatSystemRole: getEnv("CHAT_SYSTEM_ROLE", defaultChatSystemRole),

		DashboardDonors: getEnvInt("DASHBOARD_RECENT_DONORS", 5),
		DashboardPosts:  getEnvInt("DASHBOARD_IMPACT_UPDATES", 4),
		ReportWindow:    getEnvInt("REPORT_WINDOW_DAYS", 14),

		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		DBMaxConns:       int32(getEnvInt("DB_MAX_CONNS", 10)),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// MoMoConfigured reports whether the gateway call can be attempted at all.
func (c *Config) MoMoConfigured() bool {
	return c.MoMoBaseURL != "" && c.MoMoSubscriptionKey != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
