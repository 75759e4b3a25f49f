package intentparser

import (
	"context"
	"regexp"
	"strings"

	c "assistant/internal/core/domain/common"
	"assistant/internal/core/domain/intent"
	"assistant/internal/core/domain/voice"
)

var (
	reReminder = regexp.MustCompile(
		`(?:set|schedule|remind me to|create a reminder for|add a reminder to) (.+?) at (\d{1,2}:\d{2}(?:\s?[ap]m)?)`,
	)
	reWeatherCity = regexp.MustCompile(`weather in (\w+)`)
)

// matcher returns nil when the command does not match its rule.
type matcher func(command string) intent.Intent

type Parser struct {
	matchers []matcher
}

func New() *Parser {
	return &Parser{
		matchers: []matcher{
			matchReminder,
			matchSetVoice,
			matchWeather,
			matchSearch,
			matchPlayMusic,
		},
	}
}

// Parse tries each rule in priority order; the first match wins.
func (p *Parser) Parse(ctx context.Context, command string) intent.Intent {
	command = strings.ToLower(strings.TrimSpace(command))
	for _, match := range p.matchers {
		if i := match(command); i != nil {
			return i
		}
	}
	return intent.Unknown{}
}

func matchReminder(command string) intent.Intent {
	match := reReminder.FindStringSubmatch(command)
	if match == nil {
		return nil
	}
	return intent.AddReminder{Text: match[1], TimeRaw: match[2]}
}

func matchSetVoice(command string) intent.Intent {
	if !strings.Contains(command, "set voice") {
		return nil
	}
	// "female" contains "male", so it goes first.
	switch {
	case strings.Contains(command, "female"):
		return intent.SetVoice{Gender: voice.GenderFemale}
	case strings.Contains(command, "male"):
		return intent.SetVoice{Gender: voice.GenderMale}
	default:
		return intent.MissingArgument{Argument: intent.ArgumentVoiceGender}
	}
}

func matchWeather(command string) intent.Intent {
	if !strings.Contains(command, "weather") {
		return nil
	}
	match := reWeatherCity.FindStringSubmatch(command)
	if match == nil {
		return intent.Weather{City: c.None[string]()}
	}
	return intent.Weather{City: c.Some(match[1])}
}

func matchSearch(command string) intent.Intent {
	if !strings.Contains(command, "search") && !strings.Contains(command, "find") {
		return nil
	}
	query := strings.ReplaceAll(command, "search", "")
	query = strings.ReplaceAll(query, "find", "")
	query = strings.TrimSpace(query)
	if query == "" {
		return intent.MissingArgument{Argument: intent.ArgumentSearchQuery}
	}
	return intent.Search{Query: query}
}

func matchPlayMusic(command string) intent.Intent {
	if !strings.Contains(command, "play") || !strings.Contains(command, "music") {
		return nil
	}
	return intent.PlayMusic{Song: strings.TrimSpace(strings.ReplaceAll(command, "play music", ""))}
}
