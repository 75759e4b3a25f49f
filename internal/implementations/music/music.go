package music

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
)

type Opener func(ctx context.Context, target string) error

// YouTube plays a song by opening its search results page.
type YouTube struct {
	log     logging.Logger
	results url.URL
	open    Opener
}

func NewYouTube(log logging.Logger, results url.URL, open Opener) *YouTube {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if open == nil {
		panic(e.NewNilArgumentError("open"))
	}
	return &YouTube{log: log, results: results, open: open}
}

func (y *YouTube) Play(ctx context.Context, song string) error {
	target := y.SearchURL(song)
	if err := y.open(ctx, target); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	y.log.Debug(ctx, "Browser opened.", logging.Entry("url", target))
	return nil
}

func (y *YouTube) SearchURL(song string) string {
	u := y.results
	u.RawQuery = url.Values{"search_query": {song}}.Encode()
	return u.String()
}

// OpenBrowser starts the platform browser without waiting for it to exit.
func OpenBrowser(ctx context.Context, target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", target)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", target)
	default:
		if _, err := exec.LookPath("xdg-open"); err == nil {
			cmd = exec.CommandContext(ctx, "xdg-open", target)
		} else {
			cmd = exec.CommandContext(ctx, "sensible-browser", target)
		}
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
