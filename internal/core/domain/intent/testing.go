package intent

import (
	"context"
	"sync"
)

type TestParser struct {
	Result    Intent
	ParseWith []string
	lock      sync.Mutex
}

func NewTestParser(result Intent) *TestParser {
	return &TestParser{Result: result}
}

func (p *TestParser) Parse(ctx context.Context, command string) Intent {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.ParseWith = append(p.ParseWith, command)
	if p.Result == nil {
		return Unknown{}
	}
	return p.Result
}
