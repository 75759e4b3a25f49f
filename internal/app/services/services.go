package services

import (
	"assistant/internal/app/deps"
	drl "assistant/internal/core/domain/rate_limiter"
	"assistant/internal/core/services"
	addreminder "assistant/internal/core/services/add_reminder"
	checkreminders "assistant/internal/core/services/check_reminders"
	handlecommand "assistant/internal/core/services/handle_command"
	playmusic "assistant/internal/core/services/play_music"
	ratelimiting "assistant/internal/core/services/rate_limiting"
	reportweather "assistant/internal/core/services/report_weather"
	searchweb "assistant/internal/core/services/search_web"
	setvoice "assistant/internal/core/services/set_voice"
)

type Services struct {
	AddReminder   services.Service[addreminder.Input, addreminder.Result]
	SetVoice      services.Service[setvoice.Input, setvoice.Result]
	ReportWeather services.Service[reportweather.Input, reportweather.Result]
	SearchWeb     services.Service[searchweb.Input, searchweb.Result]
	PlayMusic     services.Service[playmusic.Input, playmusic.Result]

	HandleCommand  services.Service[handlecommand.Input, handlecommand.Result]
	CheckReminders services.Service[checkreminders.Input, checkreminders.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.AddReminder = addreminder.New(
		deps.Logger,
		deps.ReminderStore,
		deps.Calendar,
	)
	s.SetVoice = setvoice.New(deps.Logger)
	s.ReportWeather = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: deps.Config.WeatherRateLimitPerHour},
		reportweather.New(
			deps.Logger,
			deps.WeatherReporter,
			deps.Config.WeatherDefaultCity,
		),
	)
	s.SearchWeb = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: deps.Config.SearchRateLimitPerHour},
		searchweb.New(
			deps.Logger,
			deps.Searcher,
			deps.Config.SearchResultLimit,
		),
	)
	s.PlayMusic = playmusic.New(
		deps.Logger,
		deps.MusicPlayer,
	)

	s.HandleCommand = handlecommand.New(
		deps.Logger,
		deps.IntentParser,
		deps.Speaker,
		handlecommand.Services{
			AddReminder:   s.AddReminder,
			SetVoice:      s.SetVoice,
			ReportWeather: s.ReportWeather,
			SearchWeb:     s.SearchWeb,
			PlayMusic:     s.PlayMusic,
		},
	)
	s.CheckReminders = checkreminders.New(
		deps.Logger,
		deps.ReminderStore,
		deps.ReminderSender,
		deps.Now,
		deps.Config.ReminderCheckInterval,
		checkreminders.Wait,
	)

	return s
}
