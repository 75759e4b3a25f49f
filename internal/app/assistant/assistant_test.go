package assistant

import (
	"context"
	"testing"
	"time"

	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/music"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/search"
	"assistant/internal/core/domain/voice"
	"assistant/internal/core/domain/weather"
	addreminder "assistant/internal/core/services/add_reminder"
	checkreminders "assistant/internal/core/services/check_reminders"
	handlecommand "assistant/internal/core/services/handle_command"
	playmusic "assistant/internal/core/services/play_music"
	reportweather "assistant/internal/core/services/report_weather"
	searchweb "assistant/internal/core/services/search_web"
	setvoice "assistant/internal/core/services/set_voice"
	intentparser "assistant/internal/implementations/intent_parser"
	remindersender "assistant/internal/implementations/reminder_sender"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	logger  *logging.FakeLogger
	store   *reminder.TestStore
	speaker *voice.TestSpeaker
	now     time.Time
	checks  int
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.store = reminder.NewTestStore()
	suite.speaker = voice.NewTestSpeaker()
	suite.now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	suite.checks = 0
}

func TestAssistant(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) newAssistant(listener voice.Listener) *Assistant {
	calendar := reminder.NewTestCalendar()
	calendar.Error = reminder.ErrCalendarDisabled
	handle := handlecommand.New(s.logger, intentparser.New(), s.speaker, handlecommand.Services{
		AddReminder:   addreminder.New(s.logger, s.store, calendar),
		SetVoice:      setvoice.New(s.logger),
		ReportWeather: reportweather.New(s.logger, weather.NewTestReporter(), ""),
		SearchWeb:     searchweb.New(s.logger, search.NewTestSearcher(), 3),
		PlayMusic:     playmusic.New(s.logger, music.NewTestPlayer()),
	})
	check := checkreminders.New(
		s.logger,
		s.store,
		remindersender.New(s.logger, s.speaker),
		func() time.Time { return s.now },
		time.Minute,
		func(ctx context.Context, d time.Duration) error {
			s.checks++
			return nil
		},
	)
	return New(s.logger, listener, s.speaker, handle, check, voice.GenderMale)
}

func (s *testSuite) TestReminderDueInTheSameMinuteFiresAfterCommand() {
	// Setup ---
	listener := voice.NewTestListener("remind me to call mom at 9:00 am", "what can you do")
	a := s.newAssistant(listener)

	// Exercise ---
	err := a.Run(context.Background())

	// Verify ---
	s.Nil(err)
	s.Equal([]string{
		MsgGreeting,
		"Reminder set for 09:00 to call mom.",
		"Reminder: call mom",
		handlecommand.MsgUnknown,
	}, s.speaker.Texts())
	s.Empty(s.store.Reminders)
	s.Equal(2, s.checks)
	s.Equal(3, listener.Calls)
}

func (s *testSuite) TestVoiceChangeAppliesToFollowingReplies() {
	// Setup ---
	listener := voice.NewTestListener("set voice to female", "please stop")
	a := s.newAssistant(listener)

	// Exercise ---
	err := a.Run(context.Background())

	// Verify ---
	s.Nil(err)
	s.Equal([]voice.Utterance{
		{Text: MsgGreeting, Gender: voice.GenderMale},
		{Text: "Voice set to female.", Gender: voice.GenderFemale},
		{Text: MsgGoodbye, Gender: voice.GenderFemale},
	}, s.speaker.Spoken)
	s.Equal(voice.GenderFemale, a.Voice())
	s.Equal(1, s.checks)
}

func (s *testSuite) TestExitWords() {
	for _, command := range []string{"exit", "stop", "okay stop now"} {
		s.Run(command, func() {
			s.SetupTest()
			a := s.newAssistant(voice.NewTestListener(command, "remind me to call mom at 9:00"))

			err := a.Run(context.Background())

			s.Nil(err)
			s.Equal([]string{MsgGreeting, MsgGoodbye}, s.speaker.Texts())
			s.Equal(0, s.checks)
			s.Empty(s.store.Reminders)
		})
	}
}

func (s *testSuite) TestRecognitionFailureIsHandledAsEmptyCommand() {
	// Setup ---
	listener := &voice.TestListener{Script: []voice.ListenResult{
		{Err: voice.ErrRecognitionFailure},
		{Err: voice.ErrServiceUnavailable},
	}}
	a := s.newAssistant(listener)

	// Exercise ---
	err := a.Run(context.Background())

	// Verify ---
	s.Nil(err)
	s.Equal([]string{
		MsgGreeting,
		MsgNotRecognized,
		handlecommand.MsgUnknown,
		MsgServiceUnavailable,
		handlecommand.MsgUnknown,
	}, s.speaker.Texts())
	s.Equal(2, s.checks)
}

func (s *testSuite) TestInvalidTimeKeepsRunning() {
	a := s.newAssistant(voice.NewTestListener("remind me to call mom at 25:00"))

	err := a.Run(context.Background())

	s.Nil(err)
	s.Equal([]string{MsgGreeting, handlecommand.MsgInvalidTime}, s.speaker.Texts())
	s.Empty(s.store.Reminders)
}

func (s *testSuite) TestStopsWhenContextIsDone() {
	listener := voice.NewTestListener("set voice to female")
	a := s.newAssistant(listener)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Run(ctx)

	s.Nil(err)
	s.Equal([]string{MsgGreeting}, s.speaker.Texts())
	s.Equal(0, listener.Calls)
}
