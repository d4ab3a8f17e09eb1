package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Storage
	Database DatabaseConfig

	// Transcript interpretation
	Parser ParserConfig

	// Integrations
	GoogleCalendar GoogleCalendarConfig
	Telegram       TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	ParsePerMin int
}

type DatabaseConfig struct {
	Driver string
	DSN    string
}

// ParserConfig controls how relative dates in transcripts are resolved.
type ParserConfig struct {
	Timezone      string
	MorningHour   int
	AfternoonHour int
	EveningHour   int
	NoonHour      int
	// DisablePrimary skips the general date phrase parser and uses only the
	// relative-date fallback chain.
	DisablePrimary bool
}

type GoogleCalendarConfig struct {
	CredentialsPath      string
	TokenPath            string
	CalendarID           string
	EventDurationMinutes int
}

// Enabled reports whether calendar sync is configured.
func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

// EventDuration is the length of events created for due dates.
func (c GoogleCalendarConfig) EventDuration() time.Duration {
	return time.Duration(c.EventDurationMinutes) * time.Minute
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string // echoed by Telegram in X-Telegram-Bot-Api-Secret-Token
	NgrokAPI      string // local ngrok API base, e.g. http://ngrok:4040; used when WebhookURL is empty
}

// Enabled reports whether the Telegram channel is configured.
func (c TelegramConfig) Enabled() bool {
	return c.BotToken != ""
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory, if present, is loaded into the environment first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))
	cfg.RateLimit.ParsePerMin = viper.GetInt("rate_limit.parse_per_min")

	// Storage
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = expandEnvVar(viper.GetString("database.dsn"))
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	// Parser
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.MorningHour = viper.GetInt("parser.morning_hour")
	cfg.Parser.AfternoonHour = viper.GetInt("parser.afternoon_hour")
	cfg.Parser.EveningHour = viper.GetInt("parser.evening_hour")
	cfg.Parser.NoonHour = viper.GetInt("parser.noon_hour")
	cfg.Parser.DisablePrimary = viper.GetBool("parser.disable_primary")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.EventDurationMinutes = viper.GetInt("google_calendar.event_duration_minutes")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Telegram
	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = expandEnvVar(viper.GetString("telegram.webhook_secret"))
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("rate_limit.parse_per_min", 60)

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "file:tasks.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")

	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("parser.morning_hour", 9)
	viper.SetDefault("parser.afternoon_hour", 14)
	viper.SetDefault("parser.evening_hour", 18)
	viper.SetDefault("parser.noon_hour", 12)
	viper.SetDefault("parser.disable_primary", false)

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.event_duration_minutes", 30)
}

// Validate checks the values Load cannot default away.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port: invalid port %d", c.HTTPServer.Port)
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if _, err := time.LoadLocation(c.Parser.Timezone); err != nil {
		return fmt.Errorf("parser.timezone: %w", err)
	}

	hours := map[string]int{
		"parser.morning_hour":   c.Parser.MorningHour,
		"parser.afternoon_hour": c.Parser.AfternoonHour,
		"parser.evening_hour":   c.Parser.EveningHour,
		"parser.noon_hour":      c.Parser.NoonHour,
	}
	for key, h := range hours {
		if h < 0 || h > 23 {
			return fmt.Errorf("%s: hour %d out of range [0,23]", key, h)
		}
	}

	if c.RateLimit.ParsePerMin < 0 {
		return fmt.Errorf("rate_limit.parse_per_min: must not be negative")
	}
	if c.GoogleCalendar.EventDurationMinutes <= 0 {
		return fmt.Errorf("google_calendar.event_duration_minutes: must be positive")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
