package voice

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/voice"

	"github.com/chzyer/readline"
)

type lineReader interface {
	Readline() (string, error)
	Close() error
}

type line struct {
	text string
	err  error
}

// ConsoleListener reads typed commands as recognized speech.
type ConsoleListener struct {
	log    logging.Logger
	reader lineReader
}

func NewConsoleListener(log logging.Logger, prompt string, historyFile string) (*ConsoleListener, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		UniqueEditLine:    true,
		Stdin:             readline.NewCancelableStdin(os.Stdin),
		Stdout:            os.Stdout,
		Stderr:            os.Stderr,
	})
	if err != nil {
		return nil, err
	}
	return newConsoleListener(log, rl), nil
}

func newConsoleListener(log logging.Logger, reader lineReader) *ConsoleListener {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reader == nil {
		panic(e.NewNilArgumentError("reader"))
	}
	return &ConsoleListener{log: log, reader: reader}
}

// Listen returns the next command lowercased. A blank line is reported as
// voice.ErrRecognitionFailure, end of input and Ctrl+C as voice.ErrInputClosed.
func (l *ConsoleListener) Listen(ctx context.Context) (string, error) {
	lines := make(chan line, 1)
	go func() {
		text, err := l.reader.Readline()
		lines <- line{text: text, err: err}
	}()

	var got line
	select {
	case <-ctx.Done():
		_ = l.reader.Close()
		return "", ctx.Err()
	case got = <-lines:
	}

	switch {
	case errors.Is(got.err, io.EOF), errors.Is(got.err, readline.ErrInterrupt):
		return "", voice.ErrInputClosed
	case got.err != nil:
		l.log.Warning(ctx, "Could not read command.", logging.Entry("err", got.err))
		return "", voice.ErrServiceUnavailable
	}

	command := strings.ToLower(strings.TrimSpace(got.text))
	if command == "" {
		return "", voice.ErrRecognitionFailure
	}
	l.log.Debug(ctx, "Command heard.", logging.Entry("command", command))
	return command, nil
}

func (l *ConsoleListener) Close() error {
	return l.reader.Close()
}
