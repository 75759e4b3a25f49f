package handlecommand

import (
	"context"
	"errors"
	"fmt"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/intent"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/music"
	ratelimiter "assistant/internal/core/domain/rate_limiter"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/search"
	"assistant/internal/core/domain/voice"
	"assistant/internal/core/domain/weather"
	"assistant/internal/core/services"
	addreminder "assistant/internal/core/services/add_reminder"
	playmusic "assistant/internal/core/services/play_music"
	reportweather "assistant/internal/core/services/report_weather"
	searchweb "assistant/internal/core/services/search_web"
	setvoice "assistant/internal/core/services/set_voice"
)

const (
	MsgInvalidTime        = "Please specify the time in a valid format, like '15:30' or '12:30 pm'."
	MsgReminderNotSaved   = "Sorry, I couldn't save that reminder."
	MsgVoiceGender        = "Please specify if you want a male or female voice."
	MsgWeatherCity        = "Please tell me which city you want the weather for."
	MsgWeatherUnavailable = "Sorry, I couldn't fetch the weather data right now."
	MsgSearchQuery        = "Please specify what you would like to search for."
	MsgSearchUnavailable  = "Sorry, I couldn't complete the search right now."
	MsgNoResults          = "No results found."
	MsgSong               = "Please tell me which song to play."
	MsgMusicUnavailable   = "Sorry, I couldn't play music right now."
	MsgRateLimited        = "Sorry, I've made too many requests. Please try again later."
	MsgUnknown            = "Please specify the reminder and time, or ask me to play music on YouTube."
)

type Input struct {
	Command string
	Voice   voice.Gender
}

type Result struct {
	Intent  intent.Intent
	Voice   voice.Gender
	Replies []string
	// Failure is the collaborator error already turned into a reply, if any.
	Failure error
}

type Services struct {
	AddReminder   services.Service[addreminder.Input, addreminder.Result]
	SetVoice      services.Service[setvoice.Input, setvoice.Result]
	ReportWeather services.Service[reportweather.Input, reportweather.Result]
	SearchWeb     services.Service[searchweb.Input, searchweb.Result]
	PlayMusic     services.Service[playmusic.Input, playmusic.Result]
}

type service struct {
	log      logging.Logger
	parser   intent.Parser
	speaker  voice.Speaker
	services Services
}

func New(
	log logging.Logger,
	parser intent.Parser,
	speaker voice.Speaker,
	handlers Services,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if parser == nil {
		panic(e.NewNilArgumentError("parser"))
	}
	if speaker == nil {
		panic(e.NewNilArgumentError("speaker"))
	}
	if handlers.AddReminder == nil {
		panic(e.NewNilArgumentError("services.AddReminder"))
	}
	if handlers.SetVoice == nil {
		panic(e.NewNilArgumentError("services.SetVoice"))
	}
	if handlers.ReportWeather == nil {
		panic(e.NewNilArgumentError("services.ReportWeather"))
	}
	if handlers.SearchWeb == nil {
		panic(e.NewNilArgumentError("services.SearchWeb"))
	}
	if handlers.PlayMusic == nil {
		panic(e.NewNilArgumentError("services.PlayMusic"))
	}
	return &service{
		log:      log,
		parser:   parser,
		speaker:  speaker,
		services: handlers,
	}
}

// Run executes one command. Collaborator failures are answered with a spoken
// reply and reported in Result.Failure, only a failing speaker yields an error.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	parsed := s.parser.Parse(ctx, input.Command)
	s.log.Debug(ctx, "Command parsed.", logging.Entry("command", input.Command), logging.Entry("intent", fmt.Sprintf("%T", parsed)))

	d := &dispatch{ctx: ctx, s: s, voice: input.Voice}
	result.Failure = parsed.Accept(d)
	result.Intent = parsed
	result.Voice = d.voice
	result.Replies = d.replies

	for _, reply := range d.replies {
		if err := s.speaker.Speak(ctx, voice.Utterance{Text: reply, Gender: result.Voice}); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("reply", reply))
			return result, err
		}
	}
	return result, nil
}

type dispatch struct {
	ctx     context.Context
	s       *service
	voice   voice.Gender
	replies []string
}

func (d *dispatch) say(format string, args ...any) {
	if len(args) == 0 {
		d.replies = append(d.replies, format)
		return
	}
	d.replies = append(d.replies, fmt.Sprintf(format, args...))
}

func (d *dispatch) VisitAddReminder(i intent.AddReminder) error {
	result, err := d.s.services.AddReminder.Run(d.ctx, addreminder.Input{Text: i.Text, TimeRaw: i.TimeRaw})
	switch {
	case errors.Is(err, reminder.ErrInvalidTimeFormat):
		d.say(MsgInvalidTime)
		return err
	case err != nil:
		d.say(MsgReminderNotSaved)
		return err
	}

	rem := result.Reminder
	if result.Event.IsPresent {
		d.say("Calendar event created for %s at %s.", rem.Text, rem.At)
	}
	d.say("Reminder set for %s to %s.", rem.At, rem.Text)
	return nil
}

func (d *dispatch) VisitSetVoice(i intent.SetVoice) error {
	result, err := d.s.services.SetVoice.Run(d.ctx, setvoice.Input{Current: d.voice, Gender: i.Gender})
	if err != nil {
		d.say(MsgVoiceGender)
		return err
	}
	d.voice = result.Voice
	d.say("Voice set to %s.", result.Voice)
	return nil
}

func (d *dispatch) VisitWeather(i intent.Weather) error {
	result, err := d.s.services.ReportWeather.Run(d.ctx, reportweather.Input{City: i.City})
	switch {
	case errors.Is(err, weather.ErrCityNotSpecified):
		d.say(MsgWeatherCity)
		return err
	case errors.Is(err, weather.ErrCityNotFound):
		d.say("Sorry, I couldn't find a city called %s.", result.City)
		return err
	case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
		d.say(MsgRateLimited)
		return err
	case err != nil:
		d.say(MsgWeatherUnavailable)
		return err
	}
	d.say(result.Report.String())
	return nil
}

func (d *dispatch) VisitSearch(i intent.Search) error {
	result, err := d.s.services.SearchWeb.Run(d.ctx, searchweb.Input{Query: i.Query})
	switch {
	case errors.Is(err, search.ErrQueryNotSpecified):
		d.say(MsgSearchQuery)
		return err
	case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
		d.say(MsgRateLimited)
		return err
	case err != nil:
		d.say(MsgSearchUnavailable)
		return err
	}
	if len(result.Results) == 0 {
		d.say(MsgNoResults)
		return nil
	}
	for _, r := range result.Results {
		if r.Snippet != "" {
			d.say(r.Snippet)
		} else {
			d.say(r.Title)
		}
	}
	return nil
}

func (d *dispatch) VisitPlayMusic(i intent.PlayMusic) error {
	result, err := d.s.services.PlayMusic.Run(d.ctx, playmusic.Input{Song: i.Song})
	switch {
	case errors.Is(err, music.ErrSongNotSpecified):
		d.say(MsgSong)
		return err
	case err != nil:
		d.say(MsgMusicUnavailable)
		return err
	}
	d.say("Playing %s on YouTube.", result.Song)
	return nil
}

func (d *dispatch) VisitMissingArgument(i intent.MissingArgument) error {
	switch i.Argument {
	case intent.ArgumentVoiceGender:
		d.say(MsgVoiceGender)
	case intent.ArgumentSearchQuery:
		d.say(MsgSearchQuery)
	default:
		d.say(MsgUnknown)
	}
	return nil
}

func (d *dispatch) VisitUnknown(i intent.Unknown) error {
	d.say(MsgUnknown)
	return nil
}
