package intent

import (
	"context"

	c "assistant/internal/core/domain/common"
	"assistant/internal/core/domain/voice"
)

type Visitor interface {
	VisitAddReminder(i AddReminder) error
	VisitSetVoice(i SetVoice) error
	VisitWeather(i Weather) error
	VisitSearch(i Search) error
	VisitPlayMusic(i PlayMusic) error
	VisitMissingArgument(i MissingArgument) error
	VisitUnknown(i Unknown) error
}

// Intent is the result of classifying a single command.
type Intent interface {
	Accept(v Visitor) error
}

type Parser interface {
	Parse(ctx context.Context, command string) Intent
}

type AddReminder struct {
	Text    string
	TimeRaw string
}

func (i AddReminder) Accept(v Visitor) error {
	return v.VisitAddReminder(i)
}

type SetVoice struct {
	Gender voice.Gender
}

func (i SetVoice) Accept(v Visitor) error {
	return v.VisitSetVoice(i)
}

type Weather struct {
	City c.Optional[string]
}

func (i Weather) Accept(v Visitor) error {
	return v.VisitWeather(i)
}

type Search struct {
	Query string
}

func (i Search) Accept(v Visitor) error {
	return v.VisitSearch(i)
}

type PlayMusic struct {
	Song string
}

func (i PlayMusic) Accept(v Visitor) error {
	return v.VisitPlayMusic(i)
}

type Argument struct {
	v string
}

func (a Argument) String() string {
	return a.v
}

var (
	ArgumentVoiceGender = Argument{v: "voice_gender"}
	ArgumentSearchQuery = Argument{v: "search_query"}
)

// MissingArgument is produced when a command matched a rule but lacks the
// value the rule needs. The user is asked to clarify.
type MissingArgument struct {
	Argument Argument
}

func (i MissingArgument) Accept(v Visitor) error {
	return v.VisitMissingArgument(i)
}

type Unknown struct{}

func (i Unknown) Accept(v Visitor) error {
	return v.VisitUnknown(i)
}
