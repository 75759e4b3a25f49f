package voice

import (
	"context"
	"sync"
)

type ListenResult struct {
	Command string
	Err     error
}

// TestListener replays scripted results and reports ErrInputClosed once exhausted.
type TestListener struct {
	Script []ListenResult
	Calls  int
	lock   sync.Mutex
}

func NewTestListener(commands ...string) *TestListener {
	l := &TestListener{}
	for _, command := range commands {
		l.Script = append(l.Script, ListenResult{Command: command})
	}
	return l
}

func (l *TestListener) Listen(ctx context.Context) (string, error) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.Calls >= len(l.Script) {
		l.Calls++
		return "", ErrInputClosed
	}
	r := l.Script[l.Calls]
	l.Calls++
	return r.Command, r.Err
}

type TestSpeaker struct {
	Spoken []Utterance
	Error  error
	lock   sync.Mutex
}

func NewTestSpeaker() *TestSpeaker {
	return &TestSpeaker{}
}

func (s *TestSpeaker) Speak(ctx context.Context, u Utterance) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Spoken = append(s.Spoken, u)
	return s.Error
}

func (s *TestSpeaker) Texts() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	texts := make([]string, 0, len(s.Spoken))
	for _, u := range s.Spoken {
		texts = append(texts, u.Text)
	}
	return texts
}
