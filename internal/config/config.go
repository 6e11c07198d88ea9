package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Development fallbacks for the admin gate. Using them in prod is logged.
const (
	devAdminID       = "admin"
	devAdminPassword = "admin123"
	devAdminToken    = "your-secret-admin-token"
)

type Config struct {
	Port             string
	Environment      string
	ContentDir       string // Root holding blog/, projects/ and proofofwork/
	ContentExtension string
	SiteURL          string
	CORSOrigins      string
	TrustedProxies   string // Addresses and CIDRs whose X-Forwarded-For is believed
	// Admin gate
	AdminID       string
	AdminPassword string
	AdminToken    string
	DefaultAuthor string
	// Rate limiting
	RateLimitBackend string // "memory" or "redis"
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	// Rendering
	RenderUnsafeHTML bool
	// Logging
	LogDir      string
	LogMaxFiles int
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:             getEnv("PORT", "8080"),
		Environment:      env,
		ContentDir:       getEnv("CONTENT_DIR", "content"),
		ContentExtension: getEnv("CONTENT_EXTENSION", ".mdx"),
		SiteURL:          getEnv("SITE_URL", "http://localhost:3000"),
		CORSOrigins:      getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TrustedProxies:   getEnv("TRUSTED_PROXIES", ""),
		AdminID:          getEnv("ADMIN_ID", devAdminID),
		AdminPassword:    getEnv("ADMIN_PASSWORD", devAdminPassword),
		AdminToken:       getEnv("ADMIN_TOKEN", devAdminToken),
		DefaultAuthor:    getEnv("DEFAULT_AUTHOR", ""),
		RateLimitBackend: strings.ToLower(getEnv("RATE_LIMIT_BACKEND", "memory")),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RenderUnsafeHTML: getEnv("RENDER_UNSAFE_HTML", "false") == "true",
		LogDir:           getEnv("LOG_DIR", ""),
		LogMaxFiles:      getEnvInt("LOG_MAX_FILES", 10),
	}
}

// IsProduction reports whether the server runs in prod
func (c *Config) IsProduction() bool {
	return c.Environment == "prod"
}

// CORSOriginList splits CORSOrigins on commas
func (c *Config) CORSOriginList() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// LogLevel is debug everywhere except prod
func (c *Config) LogLevel() slog.Level {
	if c.IsProduction() {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

// Warnings lists insecure settings that should not reach production
func (c *Config) Warnings() []string {
	if !c.IsProduction() {
		return nil
	}
	var warnings []string
	if c.AdminID == devAdminID && c.AdminPassword == devAdminPassword {
		warnings = append(warnings, "ADMIN_ID and ADMIN_PASSWORD use the development defaults")
	}
	if c.AdminToken == devAdminToken {
		warnings = append(warnings, "ADMIN_TOKEN uses the development default")
	}
	if c.RenderUnsafeHTML {
		warnings = append(warnings, "RENDER_UNSAFE_HTML is enabled")
	}
	return warnings
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
