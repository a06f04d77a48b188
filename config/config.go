package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/xhit/go-str2duration/v2"
	"gitlab.com/aoterocom/AOStockTrader/helpers"
	"gitlab.com/aoterocom/AOStockTrader/models"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "stocktrader.yaml"
	DefaultEnvFile    = "conf.env"
	DefaultProvider   = "yahoo"
	DefaultLookback   = "365d"
	DefaultLogFile    = "stocktrader.log"
)

// Config holds the application settings.
type Config struct {
	Provider     string `yaml:"provider"`
	Currency     string `yaml:"currency"`
	Lookback     string `yaml:"lookback"`
	PaperDataDir string `yaml:"paper_data_dir"`
	PDFOutput    string `yaml:"pdf_output"`
	Tiers        struct {
		Low    []string `yaml:"low"`
		Medium []string `yaml:"medium"`
		High   []string `yaml:"high"`
	} `yaml:"tiers"`
	Log struct {
		File  string `yaml:"file"`
		Level string `yaml:"level"`
	} `yaml:"log"`
	Telegram struct {
		Enabled bool   `yaml:"enabled"`
		Token   string `yaml:"token"`
		ChatID  string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Binance struct {
		APIKey    string `yaml:"api_key"`
		APISecret string `yaml:"api_secret"`
	} `yaml:"binance"`
	Yahoo struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"yahoo"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	cfg := &Config{
		Provider: DefaultProvider,
		Currency: models.DefaultCurrency,
		Lookback: DefaultLookback,
	}
	cfg.Log.File = DefaultLogFile
	cfg.Log.Level = "info"
	return cfg
}

// LoadEnv loads envFile into the process environment without overriding variables
// that are already set. A missing file is not an error.
func LoadEnv(envFile string) error {
	if envFile == "" {
		envFile = os.Getenv("CONF_FILE")
	}
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	return nil
}

// Load reads the YAML file at path over the defaults, then applies environment
// variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	setString := func(key string, target *string) {
		if v := os.Getenv(key); v != "" {
			*target = v
		}
	}
	setString("provider", &cfg.Provider)
	setString("currency", &cfg.Currency)
	setString("lookback", &cfg.Lookback)
	setString("paperDataDir", &cfg.PaperDataDir)
	setString("pdfOutput", &cfg.PDFOutput)
	setString("logFile", &cfg.Log.File)
	setString("logLevel", &cfg.Log.Level)
	setString("telegramToken", &cfg.Telegram.Token)
	setString("telegramChatId", &cfg.Telegram.ChatID)
	setString("binanceAPIKey", &cfg.Binance.APIKey)
	setString("binanceAPISecret", &cfg.Binance.APISecret)
	setString("yahooBaseURL", &cfg.Yahoo.BaseURL)

	if v := os.Getenv("telegramOutput"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("telegramOutput: %w", err)
		}
		cfg.Telegram.Enabled = enabled
	}
	return nil
}

// Validate checks the values that would otherwise fail late in a run.
func (cfg *Config) Validate() error {
	if _, err := cfg.LookbackDuration(); err != nil {
		return err
	}
	if !models.IsKnownCurrency(cfg.Currency) {
		return fmt.Errorf("unknown currency %q", cfg.Currency)
	}
	return nil
}

// LookbackDuration parses the history window, e.g. "365d" or "52w".
func (cfg *Config) LookbackDuration() (time.Duration, error) {
	lookback, err := str2duration.ParseDuration(cfg.Lookback)
	if err != nil {
		return 0, fmt.Errorf("lookback %q: %w", cfg.Lookback, err)
	}
	if lookback <= 0 {
		return 0, fmt.Errorf("lookback %q must be positive", cfg.Lookback)
	}
	return lookback, nil
}

// TierTable returns the symbol baskets, with the configured overrides applied.
func (cfg *Config) TierTable() models.TierTable {
	return models.NewTierTable(map[models.RiskTier][]string{
		models.RiskTierLow:    cfg.Tiers.Low,
		models.RiskTierMedium: cfg.Tiers.Medium,
		models.RiskTierHigh:   cfg.Tiers.High,
	})
}

// LoggerConfig maps the logging and telegram settings for helpers.ConfigureLogger.
func (cfg *Config) LoggerConfig() helpers.LoggerConfig {
	return helpers.LoggerConfig{
		File:           cfg.Log.File,
		Level:          cfg.Log.Level,
		TelegramOutput: cfg.Telegram.Enabled,
		TelegramToken:  cfg.Telegram.Token,
		TelegramChatId: cfg.Telegram.ChatID,
	}
}
