package voice

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/voice"

	"github.com/fatih/color"
)

type CommandRunner func(ctx context.Context, name string, args ...string) error

func RunCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

type Voices struct {
	Male   string
	Female string
}

// ConsoleSpeaker prints every utterance and, when a TTS command is set,
// also reads it aloud with the voice variant matching the gender.
type ConsoleSpeaker struct {
	log    logging.Logger
	out    io.Writer
	tts    []string
	voices Voices
	run    CommandRunner
	male   *color.Color
	female *color.Color
}

func NewConsoleSpeaker(
	log logging.Logger,
	out io.Writer,
	ttsCommand string,
	voices Voices,
	run CommandRunner,
) *ConsoleSpeaker {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if out == nil {
		panic(e.NewNilArgumentError("out"))
	}
	if run == nil {
		panic(e.NewNilArgumentError("run"))
	}
	return &ConsoleSpeaker{
		log:    log,
		out:    out,
		tts:    strings.Fields(ttsCommand),
		voices: voices,
		run:    run,
		male:   color.New(color.FgCyan, color.Bold),
		female: color.New(color.FgMagenta, color.Bold),
	}
}

func (s *ConsoleSpeaker) Speak(ctx context.Context, u voice.Utterance) error {
	painter := s.male
	if u.Gender == voice.GenderFemale {
		painter = s.female
	}
	if _, err := fmt.Fprintln(s.out, painter.Sprint(u.Text)); err != nil {
		return err
	}

	if len(s.tts) == 0 {
		return nil
	}
	args := append([]string{}, s.tts[1:]...)
	if variant := s.variant(u.Gender); variant != "" {
		args = append(args, "-v", variant)
	}
	args = append(args, u.Text)
	if err := s.run(ctx, s.tts[0], args...); err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}
	return nil
}

func (s *ConsoleSpeaker) variant(g voice.Gender) string {
	if g == voice.GenderFemale {
		return s.voices.Female
	}
	return s.voices.Male
}
