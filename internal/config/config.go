package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all run settings, populated from environment variables.
type Config struct {
	InputPath         string
	TemplatePath      string
	OutputDir         string
	PhoneLogFile      string
	RegtimeReportFile string
	ReportTopN        int

	HTTPAddr        string
	HTTPLinger      time.Duration
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Civic directory lookup configuration.
	CivicAPIKey    string
	CivicEnabled   bool
	CivicBaseURL   string
	CivicTimeout   time.Duration
	CivicCacheSize int
	CivicRateLimit float64
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	civicTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("CIVIC_TIMEOUT", "5s"))
	if err != nil || civicTimeout <= 0 {
		return nil, errors.New("invalid CIVIC_TIMEOUT")
	}

	httpLinger, err := time.ParseDuration(sharedcfg.EnvOrDefault("HTTP_LINGER", "0s"))
	if err != nil || httpLinger < 0 {
		return nil, errors.New("invalid HTTP_LINGER: must be a non-negative duration")
	}

	topN, err := strconv.Atoi(sharedcfg.EnvOrDefault("REPORT_TOP_N", "2"))
	if err != nil || topN <= 0 {
		return nil, errors.New("invalid REPORT_TOP_N: must be a positive integer")
	}

	rateLimit, err := strconv.ParseFloat(sharedcfg.EnvOrDefault("CIVIC_RATE_LIMIT", "10"), 64)
	if err != nil || rateLimit < 0 {
		return nil, errors.New("invalid CIVIC_RATE_LIMIT: must be a non-negative number")
	}

	civicKey := os.Getenv("CIVIC_API_KEY")
	civicEnabled := civicKey != ""
	if v := os.Getenv("CIVIC_ENABLED"); v != "" {
		civicEnabled = v == "true"
	}

	cfg := &Config{
		InputPath:         sharedcfg.EnvOrDefault("INPUT_PATH", "event_attendees.csv"),
		TemplatePath:      sharedcfg.EnvOrDefault("TEMPLATE_PATH", "templates/form_letter.html"),
		OutputDir:         sharedcfg.EnvOrDefault("OUTPUT_DIR", "output"),
		PhoneLogFile:      sharedcfg.EnvOrDefault("PHONE_LOG_FILE", "phone_numbers.html"),
		RegtimeReportFile: sharedcfg.EnvOrDefault("REGTIME_REPORT_FILE", "regtimes.html"),
		ReportTopN:        topN,
		HTTPAddr:          os.Getenv("HTTP_ADDR"),
		HTTPLinger:        httpLinger,
		LogLevel:          sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:         sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:   shutdownTimeout,

		CivicAPIKey:    civicKey,
		CivicEnabled:   civicEnabled,
		CivicBaseURL:   sharedcfg.EnvOrDefault("CIVIC_BASE_URL", "https://civicinfo.googleapis.com/civicinfo/v2"),
		CivicTimeout:   civicTimeout,
		CivicCacheSize: parseCivicCacheSize(),
		CivicRateLimit: rateLimit,
	}

	if cfg.InputPath == "" {
		return nil, errors.New("INPUT_PATH is required")
	}
	if cfg.TemplatePath == "" {
		return nil, errors.New("TEMPLATE_PATH is required")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OUTPUT_DIR is required")
	}
	if cfg.CivicEnabled && cfg.CivicAPIKey == "" {
		return nil, errors.New("CIVIC_ENABLED is true but CIVIC_API_KEY is not set")
	}

	return cfg, nil
}

func parseCivicCacheSize() int {
	if s := os.Getenv("CIVIC_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}
