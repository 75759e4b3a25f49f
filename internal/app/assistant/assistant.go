package assistant

import (
	"context"
	"errors"
	"strings"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/voice"
	"assistant/internal/core/services"
	checkreminders "assistant/internal/core/services/check_reminders"
	handlecommand "assistant/internal/core/services/handle_command"
)

const (
	MsgGreeting           = "Hello, I am your assistant. How can I help you today?"
	MsgNotRecognized      = "Sorry, I didn't catch that."
	MsgServiceUnavailable = "Sorry, my speech service is down."
	MsgGoodbye            = "Goodbye!"
)

var exitWords = []string{"exit", "stop"}

// Assistant runs the listen, handle and check cycle until the user says
// goodbye, the input closes or ctx is done.
type Assistant struct {
	log            logging.Logger
	listener       voice.Listener
	speaker        voice.Speaker
	handleCommand  services.Service[handlecommand.Input, handlecommand.Result]
	checkReminders services.Service[checkreminders.Input, checkreminders.Result]
	voice          voice.Gender
}

func New(
	log logging.Logger,
	listener voice.Listener,
	speaker voice.Speaker,
	handleCommand services.Service[handlecommand.Input, handlecommand.Result],
	checkReminders services.Service[checkreminders.Input, checkreminders.Result],
	initialVoice voice.Gender,
) *Assistant {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if listener == nil {
		panic(e.NewNilArgumentError("listener"))
	}
	if speaker == nil {
		panic(e.NewNilArgumentError("speaker"))
	}
	if handleCommand == nil {
		panic(e.NewNilArgumentError("handleCommand"))
	}
	if checkReminders == nil {
		panic(e.NewNilArgumentError("checkReminders"))
	}
	return &Assistant{
		log:            log,
		listener:       listener,
		speaker:        speaker,
		handleCommand:  handleCommand,
		checkReminders: checkReminders,
		voice:          initialVoice,
	}
}

func (a *Assistant) Voice() voice.Gender {
	return a.voice
}

func (a *Assistant) Run(ctx context.Context) error {
	a.say(ctx, MsgGreeting)

	for {
		if ctx.Err() != nil {
			a.log.Info(ctx, "Assistant stopped.")
			return nil
		}

		command, err := a.listener.Listen(ctx)
		switch {
		case errors.Is(err, voice.ErrInputClosed):
			a.log.Info(ctx, "Voice input closed.")
			return nil
		case ctx.Err() != nil:
			a.log.Info(ctx, "Assistant stopped.")
			return nil
		case errors.Is(err, voice.ErrRecognitionFailure):
			a.say(ctx, MsgNotRecognized)
			command = ""
		case errors.Is(err, voice.ErrServiceUnavailable):
			a.say(ctx, MsgServiceUnavailable)
			command = ""
		case err != nil:
			logging.Error(ctx, a.log, err)
			command = ""
		}

		if isExit(command) {
			a.say(ctx, MsgGoodbye)
			return nil
		}

		result, err := a.handleCommand.Run(ctx, handlecommand.Input{Command: command, Voice: a.voice})
		if err != nil {
			a.log.Warning(ctx, "Command was not fully answered.", logging.Entry("command", command), logging.Entry("err", err))
		}
		if !result.Voice.IsZero() {
			a.voice = result.Voice
		}

		_, err = a.checkReminders.Run(ctx, checkreminders.Input{Voice: a.voice})
		if err != nil && ctx.Err() == nil {
			a.log.Warning(ctx, "Reminder check failed.", logging.Entry("err", err))
		}
	}
}

func (a *Assistant) say(ctx context.Context, text string) {
	if err := a.speaker.Speak(ctx, voice.Utterance{Text: text, Gender: a.voice}); err != nil {
		logging.Error(ctx, a.log, err, logging.Entry("text", text))
	}
}

func isExit(command string) bool {
	for _, word := range exitWords {
		if strings.Contains(command, word) {
			return true
		}
	}
	return false
}
