package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fut-data/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                           string
	ServiceName                      string
	ServiceVersion                   string
	HTTPAddr                         string
	ReadTimeout                      time.Duration
	WriteTimeout                     time.Duration
	DataDir                          string
	LocalCacheTTL                    time.Duration
	CacheMaxEntries                  int
	CORSAllowedOrigins               []string
	RateLimitEnabled                 bool
	RateLimitRequests                int
	RateLimitWindow                  time.Duration
	SwaggerEnabled                   bool
	PprofEnabled                     bool
	PprofAddr                        string
	UptraceEnabled                   bool
	UptraceDSN                       string
	PyroscopeEnabled                 bool
	PyroscopeServerAddress           string
	PyroscopeAppName                 string
	PyroscopeAuthToken               string
	PyroscopeBasicAuthUser           string
	PyroscopeBasicAuthPassword       string
	PyroscopeUploadRate              time.Duration
	APIFootballBaseURL               string
	APIFootballKey                   string
	APIFootballUseLive               bool
	APIFootballDefaultLeague         int
	APIFootballDefaultSeason         int
	APIFootballTimeout               time.Duration
	APIFootballCircuitEnabled        bool
	APIFootballCircuitFailureCount   int
	APIFootballCircuitOpenTimeout    time.Duration
	APIFootballCircuitHalfOpenMaxReq int
	APIFootballWarmupEnabled         bool
	LogLevel                         logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	port := strings.TrimSpace(getEnv("PORT", "3001"))
	if _, err := strconv.Atoi(port); err != nil {
		return Config{}, fmt.Errorf("parse PORT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	localCacheTTL, err := time.ParseDuration(getEnv("LOCAL_CACHE_TTL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOCAL_CACHE_TTL: %w", err)
	}
	if localCacheTTL < 0 {
		return Config{}, fmt.Errorf("LOCAL_CACHE_TTL must be >= 0")
	}
	cacheMaxEntries, err := getEnvAsInt("CACHE_MAX_ENTRIES", 1024)
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_MAX_ENTRIES: %w", err)
	}
	if cacheMaxEntries < 1 {
		return Config{}, fmt.Errorf("CACHE_MAX_ENTRIES must be >= 1")
	}

	rateLimitEnabled, err := strconv.ParseBool(getEnv("RATE_LIMIT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_ENABLED: %w", err)
	}
	rateLimitRequests, err := getEnvAsInt("RATE_LIMIT_REQUESTS", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_REQUESTS: %w", err)
	}
	if rateLimitRequests < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_REQUESTS must be >= 1")
	}
	rateLimitWindow, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_WINDOW: %w", err)
	}
	if rateLimitWindow <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW must be > 0")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	apiFootballKey := strings.TrimSpace(getEnv("API_FOOTBALL_KEY", ""))
	apiFootballUseLive := apiFootballKey != ""
	if raw, ok := os.LookupEnv("API_FOOTBALL_USE_LIVE"); ok && raw != "" {
		apiFootballUseLive = strings.EqualFold(raw, "true")
	}
	defaultLeague, err := getEnvAsPositiveInt("API_FOOTBALL_DEFAULT_LEAGUE", 71)
	if err != nil {
		return Config{}, err
	}
	defaultSeason, err := getEnvAsPositiveInt("API_FOOTBALL_DEFAULT_SEASON", time.Now().Year())
	if err != nil {
		return Config{}, err
	}
	apiFootballTimeout, err := time.ParseDuration(getEnv("API_FOOTBALL_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse API_FOOTBALL_TIMEOUT: %w", err)
	}
	if apiFootballTimeout <= 0 {
		return Config{}, fmt.Errorf("API_FOOTBALL_TIMEOUT must be > 0")
	}
	apiFootballCircuitEnabled, err := strconv.ParseBool(getEnv("API_FOOTBALL_CIRCUIT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse API_FOOTBALL_CIRCUIT_ENABLED: %w", err)
	}
	apiFootballCircuitFailureCount, err := getEnvAsInt("API_FOOTBALL_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse API_FOOTBALL_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if apiFootballCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("API_FOOTBALL_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	apiFootballCircuitOpenTimeout, err := time.ParseDuration(getEnv("API_FOOTBALL_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse API_FOOTBALL_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if apiFootballCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("API_FOOTBALL_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	apiFootballCircuitHalfOpenMaxReq, err := getEnvAsInt("API_FOOTBALL_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse API_FOOTBALL_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if apiFootballCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("API_FOOTBALL_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	apiFootballWarmupEnabled, err := strconv.ParseBool(getEnv("API_FOOTBALL_WARMUP_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse API_FOOTBALL_WARMUP_ENABLED: %w", err)
	}

	cfg := Config{
		AppEnv:                           appEnv,
		ServiceName:                      getEnv("APP_SERVICE_NAME", "fut-data-mvp-backend"),
		ServiceVersion:                   getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                         getEnv("APP_HTTP_ADDR", ":"+port),
		ReadTimeout:                      readTimeout,
		WriteTimeout:                     writeTimeout,
		DataDir:                          getEnv("DATA_DIR", "data"),
		LocalCacheTTL:                    localCacheTTL,
		CacheMaxEntries:                  cacheMaxEntries,
		CORSAllowedOrigins:               splitCSV(getEnv("CORS_ORIGIN", "")),
		RateLimitEnabled:                 rateLimitEnabled,
		RateLimitRequests:                rateLimitRequests,
		RateLimitWindow:                  rateLimitWindow,
		SwaggerEnabled:                   swaggerEnabled,
		PprofEnabled:                     pprofEnabled,
		PprofAddr:                        pprofAddr,
		UptraceEnabled:                   uptraceEnabled,
		UptraceDSN:                       uptraceDSN,
		PyroscopeEnabled:                 pyroscopeEnabled,
		PyroscopeServerAddress:           pyroscopeServerAddress,
		PyroscopeAuthToken:               strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:           strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:       strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:              pyroscopeUploadRate,
		APIFootballBaseURL:               strings.TrimSpace(getEnv("API_FOOTBALL_BASE_URL", "https://v3.football.api-sports.io")),
		APIFootballKey:                   apiFootballKey,
		APIFootballUseLive:               apiFootballUseLive,
		APIFootballDefaultLeague:         defaultLeague,
		APIFootballDefaultSeason:         defaultSeason,
		APIFootballTimeout:               apiFootballTimeout,
		APIFootballCircuitEnabled:        apiFootballCircuitEnabled,
		APIFootballCircuitFailureCount:   apiFootballCircuitFailureCount,
		APIFootballCircuitOpenTimeout:    apiFootballCircuitOpenTimeout,
		APIFootballCircuitHalfOpenMaxReq: apiFootballCircuitHalfOpenMaxReq,
		APIFootballWarmupEnabled:         apiFootballWarmupEnabled,
		LogLevel:                         logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsPositiveInt(key string, fallback int) (int, error) {
	value, err := getEnvAsInt(key, fallback)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return value, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
