package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	StoreDriverJSON   = "json"
	StoreDriverSqlite = "sqlite"
)

type Config struct {
	LogLevel     string   `env:"LOG_LEVEL" envDefault:"info"`
	LogOutput    []string `env:"LOG_OUTPUT" envDefault:"stderr" envSeparator:","`
	SentryDsn    *url.URL `env:"SENTRY_DSN"`
	Timezone     string   `env:"TIMEZONE" envDefault:"Local"`
	DefaultVoice string   `env:"DEFAULT_VOICE" envDefault:"male"`

	ReminderStoreDriver   string        `env:"REMINDER_STORE_DRIVER" envDefault:"json"`
	ReminderFile          string        `env:"REMINDER_FILE" envDefault:"reminders.json"`
	ReminderSqlitePath    string        `env:"REMINDER_SQLITE_PATH" envDefault:"reminders.db"`
	ReminderCheckInterval time.Duration `env:"REMINDER_CHECK_INTERVAL" envDefault:"60s"`

	CalendarURL           *url.URL      `env:"CALENDAR_URL"`
	CalendarUsername      string        `env:"CALENDAR_USERNAME"`
	CalendarPassword      string        `env:"CALENDAR_PASSWORD"`
	CalendarEventDuration time.Duration `env:"CALENDAR_EVENT_DURATION" envDefault:"30m"`
	CalendarTimeout       time.Duration `env:"CALENDAR_TIMEOUT" envDefault:"30s"`

	WeatherBaseURL     url.URL       `env:"WEATHER_BASE_URL" envDefault:"https://api.openweathermap.org"`
	WeatherAPIKey      string        `env:"WEATHER_API_KEY"`
	WeatherDefaultCity string        `env:"WEATHER_DEFAULT_CITY"`
	WeatherTimeout     time.Duration `env:"WEATHER_TIMEOUT" envDefault:"10s"`

	SearchBaseURL     url.URL       `env:"SEARCH_BASE_URL" envDefault:"https://www.googleapis.com/customsearch/v1"`
	SearchAPIKey      string        `env:"SEARCH_API_KEY"`
	SearchEngineID    string        `env:"SEARCH_ENGINE_ID"`
	SearchResultLimit int           `env:"SEARCH_RESULT_LIMIT" envDefault:"3"`
	SearchTimeout     time.Duration `env:"SEARCH_TIMEOUT" envDefault:"10s"`

	RedisURL                string `env:"REDIS_URL"`
	WeatherRateLimitPerHour uint16 `env:"WEATHER_RATE_LIMIT_PER_HOUR" envDefault:"60"`
	SearchRateLimitPerHour  uint16 `env:"SEARCH_RATE_LIMIT_PER_HOUR" envDefault:"30"`

	MusicBaseURL url.URL `env:"MUSIC_BASE_URL" envDefault:"https://www.youtube.com/results"`

	TTSCommand     string `env:"TTS_COMMAND"`
	TTSVoiceMale   string `env:"TTS_VOICE_MALE" envDefault:"en+m3"`
	TTSVoiceFemale string `env:"TTS_VOICE_FEMALE" envDefault:"en+f3"`
	Prompt         string `env:"PROMPT" envDefault:"Listening... "`
	HistoryFile    string `env:"HISTORY_FILE"`
	NoColor        bool   `env:"NO_COLOR"`
}

func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.ReminderStoreDriver {
	case StoreDriverJSON, StoreDriverSqlite:
	default:
		return fmt.Errorf("invalid REMINDER_STORE_DRIVER value %q", c.ReminderStoreDriver)
	}
	if c.ReminderCheckInterval <= 0 {
		return fmt.Errorf("REMINDER_CHECK_INTERVAL must be positive, got %s", c.ReminderCheckInterval)
	}
	if c.CalendarEventDuration <= 0 {
		return fmt.Errorf("CALENDAR_EVENT_DURATION must be positive, got %s", c.CalendarEventDuration)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE value: %w", err)
	}
	if c.DefaultVoice != "male" && c.DefaultVoice != "female" {
		return fmt.Errorf("invalid DEFAULT_VOICE value %q", c.DefaultVoice)
	}
	return nil
}

// Location returns the zone used for "now" and calendar events.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) IsCalendarEnabled() bool {
	return c.CalendarURL != nil
}
