package playmusic

import (
	"context"
	"strings"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/music"
	"assistant/internal/core/services"
)

type Input struct {
	Song string
}

type Result struct {
	Song string
}

type service struct {
	log    logging.Logger
	player music.Player
}

func New(log logging.Logger, player music.Player) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if player == nil {
		panic(e.NewNilArgumentError("player"))
	}
	return &service{log: log, player: player}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	song := strings.TrimSpace(input.Song)
	if song == "" {
		return result, music.ErrSongNotSpecified
	}

	if err := s.player.Play(ctx, song); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("song", song))
		return result, err
	}

	s.log.Info(ctx, "Music playback started.", logging.Entry("song", song))
	result.Song = song
	return result, nil
}
