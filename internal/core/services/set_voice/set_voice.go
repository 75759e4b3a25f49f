package setvoice

import (
	"context"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/voice"
	"assistant/internal/core/services"
)

type Input struct {
	Current voice.Gender
	Gender  voice.Gender
}

type Result struct {
	Voice voice.Gender
}

type service struct {
	log logging.Logger
}

func New(log logging.Logger) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &service{log: log}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	result.Voice = input.Current
	if input.Gender.IsZero() {
		s.log.Info(ctx, "Voice gender is not specified.", logging.Entry("current", input.Current))
		return result, voice.ErrParseGender
	}

	result.Voice = input.Gender
	s.log.Info(
		ctx,
		"Voice gender changed.",
		logging.Entry("from", input.Current),
		logging.Entry("to", input.Gender),
	)
	return result, nil
}
