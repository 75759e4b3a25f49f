package music

import (
	"context"
	"sync"
)

type TestPlayer struct {
	Played []string
	Error  error
	lock   sync.Mutex
}

func NewTestPlayer() *TestPlayer {
	return &TestPlayer{}
}

func (p *TestPlayer) Play(ctx context.Context, song string) error {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Played = append(p.Played, song)
	return p.Error
}
