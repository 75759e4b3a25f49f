package setvoice

import (
	"context"
	"testing"

	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/voice"

	"github.com/stretchr/testify/assert"
)

func TestSetVoice(t *testing.T) {
	service := New(logging.NewFakeLogger())

	result, err := service.Run(context.Background(), Input{Current: voice.GenderMale, Gender: voice.GenderFemale})

	assert.Nil(t, err)
	assert.Equal(t, voice.GenderFemale, result.Voice)
}

func TestSetVoiceWithoutGenderKeepsCurrent(t *testing.T) {
	logger := logging.NewFakeLogger()
	service := New(logger)

	result, err := service.Run(context.Background(), Input{Current: voice.GenderMale})

	assert.ErrorIs(t, err, voice.ErrParseGender)
	assert.Equal(t, voice.GenderMale, result.Voice)
	assert.Equal(t, 1, logger.Count(logging.INFO))
}

func TestSetVoicePanicsOnNilLogger(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}
