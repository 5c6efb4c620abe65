package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Ledger   LedgerConfig   `yaml:"ledger"   validate:"required"`
	Slack    SlackConfig    `yaml:"slack"`
	Telegram TelegramConfig `yaml:"telegram"`
	Branding BrandingConfig `yaml:"branding"`
	Redis    RedisConfig    `yaml:"redis"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level onto the wbf logger level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// LedgerConfig points at the SheetDB-style API that stores bookings.
// ViewURL is the human-facing sheet linked from the "View Booking" buttons.
type LedgerConfig struct {
	BaseURL          string        `yaml:"base_url"          env:"LEDGER_BASE_URL"          validate:"required,url"`
	ViewURL          string        `yaml:"view_url"          env:"LEDGER_VIEW_URL"          validate:"omitempty,url"`
	Token            string        `yaml:"token"             env:"LEDGER_TOKEN"             env-default:""`
	Timeout          time.Duration `yaml:"timeout"           env:"LEDGER_TIMEOUT"           env-default:"5s"  validate:"gt=0"`
	FailureThreshold uint32        `yaml:"failure_threshold" env:"LEDGER_FAILURE_THRESHOLD" env-default:"5"   validate:"min=1"`
	OpenTimeout      time.Duration `yaml:"open_timeout"      env:"LEDGER_OPEN_TIMEOUT"      env-default:"30s" validate:"gt=0"`
}

type SlackConfig struct {
	BotToken string        `yaml:"bot_token" env:"SLACK_BOT_TOKEN" env-default:""`
	APIURL   string        `yaml:"api_url"   env:"SLACK_API_URL"   env-default:""`
	Timeout  time.Duration `yaml:"timeout"   env:"SLACK_TIMEOUT"   env-default:"10s" validate:"gt=0"`
}

type TelegramConfig struct {
	BotToken    string        `yaml:"bot_token"    env:"TELEGRAM_BOT_TOKEN"    env-default:""`
	APIEndpoint string        `yaml:"api_endpoint" env:"TELEGRAM_API_ENDPOINT" env-default:""`
	Timeout     time.Duration `yaml:"timeout"      env:"TELEGRAM_TIMEOUT"      env-default:"10s" validate:"gt=0"`
}

type BrandingConfig struct {
	ImageURL     string `yaml:"image_url"     env:"BRANDING_IMAGE_URL"     validate:"omitempty,url"`
	LanguageCode string `yaml:"language_code" env:"BRANDING_LANGUAGE_CODE" env-default:"en"`
}

// RedisConfig enables redelivery protection. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"     env-default:""`
	Password string        `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"   validate:"min=0"`
	TTL      time.Duration `yaml:"ttl"      env:"REDIS_TTL"      env-default:"10m" validate:"gt=0"`
}

func MustLoad() *Config {
	// A missing .env is fine: the process environment still applies.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
