package deps

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	"assistant/internal/config"
	"assistant/internal/core/domain/intent"
	dl "assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/music"
	drl "assistant/internal/core/domain/rate_limiter"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/search"
	"assistant/internal/core/domain/voice"
	"assistant/internal/core/domain/weather"
	"assistant/internal/db"
	dbreminder "assistant/internal/db/reminder"
	"assistant/internal/implementations/calendar"
	intentparser "assistant/internal/implementations/intent_parser"
	"assistant/internal/implementations/logging"
	imusic "assistant/internal/implementations/music"
	randomstringgenerator "assistant/internal/implementations/random_string_generator"
	ratelimiter "assistant/internal/implementations/rate_limiter"
	remindersender "assistant/internal/implementations/reminder_sender"
	reminderstore "assistant/internal/implementations/reminder_store"
	isearch "assistant/internal/implementations/search"
	ivoice "assistant/internal/implementations/voice"
	iweather "assistant/internal/implementations/weather"

	"github.com/fatih/color"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB    *sql.DB
	Redis *redis.Client

	Now func() time.Time

	ReminderStore  reminder.Store
	ReminderSender reminder.Sender
	Calendar       reminder.Calendar
	IntentParser   intent.Parser
	RateLimiter    drl.RateLimiter

	WeatherReporter weather.Reporter
	Searcher        search.Searcher
	MusicPlayer     music.Player

	Listener     voice.Listener
	Speaker      voice.Speaker
	DefaultVoice voice.Gender
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	flushSentry := deps.initSentry()

	location := deps.Config.Location()
	deps.Now = func() time.Time { return time.Now().In(location) }

	closeStore := deps.initReminderStore()
	closeRedisClient := deps.initRedisClient()
	closeListener := deps.initVoice()

	deps.ReminderSender = remindersender.New(deps.Logger, deps.Speaker)
	deps.Calendar = deps.initCalendar()
	deps.IntentParser = intentparser.New()
	deps.WeatherReporter = iweather.NewOpenWeatherMap(
		deps.Logger,
		deps.Config.WeatherBaseURL,
		deps.Config.WeatherAPIKey,
		deps.Config.WeatherTimeout,
	)
	deps.Searcher = isearch.NewGoogleCustomSearch(
		deps.Logger,
		deps.Config.SearchBaseURL,
		deps.Config.SearchAPIKey,
		deps.Config.SearchEngineID,
		deps.Config.SearchTimeout,
	)
	deps.MusicPlayer = imusic.NewYouTube(deps.Logger, deps.Config.MusicBaseURL, imusic.OpenBrowser)

	return deps, func() {
		closeFuncs := []func(){
			closeListener,
			closeRedisClient,
			closeStore,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}
		wg.Wait()

		flushSentry()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger, err := logging.NewZapLogger(deps.Config.LogLevel, deps.Config.LogOutput)
	if err != nil {
		panic(fmt.Sprintf("could not create logger: %v", err))
	}
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}

func (deps *Deps) initReminderStore() func() {
	ctx := context.Background()
	switch deps.Config.ReminderStoreDriver {
	case config.StoreDriverSqlite:
		sqlDB, err := db.OpenSqlite(deps.Config.ReminderSqlitePath)
		if err != nil {
			deps.Logger.Error(ctx, "Could not open SQLite database.", dl.Entry("err", err))
			panic(err)
		}
		deps.DB = sqlDB
		deps.ReminderStore = dbreminder.NewSqliteStore(sqlDB)
		deps.Logger.Info(ctx, "Reminders are stored in SQLite.", dl.Entry("path", deps.Config.ReminderSqlitePath))
		return func() {
			deps.Logger.Info(ctx, "Closing SQLite database.")
			sqlDB.Close()
			deps.Logger.Info(ctx, "SQLite database closed.")
		}
	default:
		deps.ReminderStore = reminderstore.Open(ctx, deps.Logger, deps.Config.ReminderFile)
		deps.Logger.Info(ctx, "Reminders are stored in a JSON file.", dl.Entry("path", deps.Config.ReminderFile))
		return func() {}
	}
}

func (deps *Deps) initRedisClient() func() {
	ctx := context.Background()
	if deps.Config.RedisURL == "" {
		deps.RateLimiter = ratelimiter.NewMemory(deps.Now)
		return func() {}
	}

	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(ctx, "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	deps.RateLimiter = ratelimiter.NewRedis(redisClient, deps.Logger, deps.Now)
	return func() {
		deps.Logger.Info(ctx, "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(ctx, "Redis client shut down.")
	}
}

func (deps *Deps) initCalendar() reminder.Calendar {
	if !deps.Config.IsCalendarEnabled() {
		deps.Logger.Info(context.Background(), "Calendar sync is disabled.")
		return calendar.NewDisabled(deps.Logger)
	}
	c, err := calendar.NewCalDAV(deps.Logger, calendar.Options{
		CalendarURL: deps.Config.CalendarURL,
		Username:    deps.Config.CalendarUsername,
		Password:    deps.Config.CalendarPassword,
		Location:    deps.Config.Location(),
		Duration:    deps.Config.CalendarEventDuration,
		Timeout:     deps.Config.CalendarTimeout,
		UIDs:        randomstringgenerator.NewGenerator(),
	}, deps.Now)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not set up CalDAV calendar.", dl.Entry("err", err))
		panic(err)
	}
	return c
}

func (deps *Deps) initVoice() func() {
	defaultVoice, err := voice.ParseGender(deps.Config.DefaultVoice)
	if err != nil {
		panic(err)
	}
	deps.DefaultVoice = defaultVoice

	if deps.Config.NoColor {
		color.NoColor = true
	}
	deps.Speaker = ivoice.NewConsoleSpeaker(
		deps.Logger,
		os.Stdout,
		deps.Config.TTSCommand,
		ivoice.Voices{Male: deps.Config.TTSVoiceMale, Female: deps.Config.TTSVoiceFemale},
		ivoice.RunCommand,
	)

	listener, err := ivoice.NewConsoleListener(deps.Logger, deps.Config.Prompt, deps.Config.HistoryFile)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not open console input.", dl.Entry("err", err))
		panic(err)
	}
	deps.Listener = listener
	return func() { listener.Close() }
}
