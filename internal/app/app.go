package app

import (
	"assistant/internal/app/assistant"
	"assistant/internal/app/deps"
	"assistant/internal/app/services"
)

func InitAssistant(deps *deps.Deps, s *services.Services) *assistant.Assistant {
	return assistant.New(
		deps.Logger,
		deps.Listener,
		deps.Speaker,
		s.HandleCommand,
		s.CheckReminders,
		deps.DefaultVoice,
	)
}
