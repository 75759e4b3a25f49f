package reminderstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/logging"
	"assistant/internal/core/domain/reminder"
)

const filePerm = 0o644

// JSONStore keeps reminders in memory and rewrites the whole JSON array
// file on every mutation.
type JSONStore struct {
	log       logging.Logger
	path      string
	reminders []reminder.Reminder
	lock      sync.Mutex
}

// Open loads the file at path. A missing or malformed file yields an empty store.
func Open(ctx context.Context, log logging.Logger, path string) *JSONStore {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	s := &JSONStore{log: log, path: path}
	s.reminders = s.load(ctx)
	return s
}

func (s *JSONStore) load(ctx context.Context) []reminder.Reminder {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info(ctx, "Reminder file does not exist, starting with empty store.", logging.Entry("path", s.path))
		return []reminder.Reminder{}
	}
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not read reminder file, starting with empty store.",
			logging.Entry("path", s.path),
			logging.Entry("err", err),
		)
		return []reminder.Reminder{}
	}

	var reminders []reminder.Reminder
	if err := json.Unmarshal(data, &reminders); err != nil {
		s.log.Warning(
			ctx,
			"Reminder file is malformed, starting with empty store.",
			logging.Entry("path", s.path),
			logging.Entry("err", err),
		)
		return []reminder.Reminder{}
	}
	if reminders == nil {
		reminders = []reminder.Reminder{}
	}

	s.log.Info(
		ctx,
		"Reminders loaded.",
		logging.Entry("path", s.path),
		logging.Entry("count", len(reminders)),
	)
	return reminders
}

func (s *JSONStore) List(ctx context.Context) ([]reminder.Reminder, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]reminder.Reminder{}, s.reminders...), nil
}

func (s *JSONStore) Add(ctx context.Context, r reminder.Reminder) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	next := make([]reminder.Reminder, 0, len(s.reminders)+1)
	next = append(next, s.reminders...)
	next = append(next, r)
	if err := save(s.path, next); err != nil {
		return err
	}
	s.reminders = next
	return nil
}

// Remove drops the reminder from memory even when the file cannot be
// rewritten, so a fired reminder never fires twice. The file catches up on
// the next successful save.
func (s *JSONStore) Remove(ctx context.Context, r reminder.Reminder) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	for ix, existing := range s.reminders {
		if existing == r {
			next := make([]reminder.Reminder, 0, len(s.reminders)-1)
			next = append(next, s.reminders[:ix]...)
			next = append(next, s.reminders[ix+1:]...)
			s.reminders = next
			return true, save(s.path, next)
		}
	}
	return false, nil
}

func save(path string, reminders []reminder.Reminder) error {
	data, err := json.Marshal(reminders)
	if err != nil {
		return fmt.Errorf("could not encode reminders: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("could not write reminder file: %w", err)
	}
	return nil
}
