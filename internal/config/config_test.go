package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.Nil(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"stderr"}, cfg.LogOutput)
	assert.Equal(t, StoreDriverJSON, cfg.ReminderStoreDriver)
	assert.Equal(t, "reminders.json", cfg.ReminderFile)
	assert.Equal(t, time.Minute, cfg.ReminderCheckInterval)
	assert.Equal(t, 30*time.Minute, cfg.CalendarEventDuration)
	assert.Equal(t, "api.openweathermap.org", cfg.WeatherBaseURL.Host)
	assert.Equal(t, 3, cfg.SearchResultLimit)
	assert.Equal(t, "male", cfg.DefaultVoice)
	assert.False(t, cfg.IsCalendarEnabled())
	assert.Nil(t, cfg.SentryDsn)
	assert.Equal(t, time.Local, cfg.Location())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("REMINDER_STORE_DRIVER", "sqlite")
	t.Setenv("REMINDER_CHECK_INTERVAL", "5s")
	t.Setenv("CALENDAR_URL", "https://dav.example.com/calendars/me/")
	t.Setenv("TIMEZONE", "America/Los_Angeles")
	t.Setenv("LOG_OUTPUT", "stderr,/tmp/assistant.log")
	t.Setenv("DEFAULT_VOICE", "female")

	cfg, err := Load()

	require.Nil(t, err)
	assert.Equal(t, StoreDriverSqlite, cfg.ReminderStoreDriver)
	assert.Equal(t, 5*time.Second, cfg.ReminderCheckInterval)
	assert.True(t, cfg.IsCalendarEnabled())
	assert.Equal(t, "dav.example.com", cfg.CalendarURL.Host)
	assert.Equal(t, "America/Los_Angeles", cfg.Location().String())
	assert.Equal(t, []string{"stderr", "/tmp/assistant.log"}, cfg.LogOutput)
	assert.Equal(t, "female", cfg.DefaultVoice)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"REMINDER_STORE_DRIVER":   "postgres",
		"REMINDER_CHECK_INTERVAL": "0s",
		"CALENDAR_EVENT_DURATION": "-1m",
		"TIMEZONE":                "Mars/Olympus_Mons",
		"DEFAULT_VOICE":           "robot",
		"SEARCH_RESULT_LIMIT":     "many",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := Load()

			assert.Error(t, err)
		})
	}
}
