package voice

import (
	"context"
	"errors"
)

var (
	ErrRecognitionFailure = errors.New("speech was not recognized")
	ErrServiceUnavailable = errors.New("speech service is unavailable")
	ErrInputClosed        = errors.New("voice input is closed")
	ErrParseGender        = errors.New("invalid voice gender")
)

type Gender struct {
	v string
}

func (g Gender) String() string {
	return g.v
}

func (g Gender) IsZero() bool {
	return g == GenderUnknown
}

var (
	GenderUnknown = Gender{}
	GenderMale    = Gender{v: "male"}
	GenderFemale  = Gender{v: "female"}
)

func ParseGender(value string) (Gender, error) {
	switch value {
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	default:
		return GenderUnknown, ErrParseGender
	}
}

type Utterance struct {
	Text   string
	Gender Gender
}

// Listener blocks until a command is captured. Returned text is lowercased.
type Listener interface {
	Listen(ctx context.Context) (string, error)
}

// Speaker blocks until the utterance is delivered.
type Speaker interface {
	Speak(ctx context.Context, u Utterance) error
}
