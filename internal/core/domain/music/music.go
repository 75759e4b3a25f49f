package music

import (
	"context"
	"errors"
)

var ErrSongNotSpecified = errors.New("song is not specified")

type Player interface {
	Play(ctx context.Context, song string) error
}
