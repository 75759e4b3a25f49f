package dbreminder

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/reminder"
)

type SqliteStore struct {
	db   *sql.DB
	lock sync.Mutex
}

func NewSqliteStore(db *sql.DB) *SqliteStore {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &SqliteStore{db: db}
}

func (s *SqliteStore) List(ctx context.Context) ([]reminder.Reminder, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT text, time FROM reminder ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := make([]reminder.Reminder, 0)
	for rows.Next() {
		var text, rawTime string
		if err := rows.Scan(&text, &rawTime); err != nil {
			return nil, err
		}
		at, err := reminder.ParseCanonicalTime(rawTime)
		if err != nil {
			return nil, fmt.Errorf("stored reminder %q has time %q: %w", text, rawTime, err)
		}
		reminders = append(reminders, reminder.Reminder{Text: text, At: at})
	}
	return reminders, rows.Err()
}

func (s *SqliteStore) Add(ctx context.Context, r reminder.Reminder) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO reminder (text, time) VALUES (?, ?)`,
		r.Text,
		r.At.String(),
	)
	return err
}

func (s *SqliteStore) Remove(ctx context.Context, r reminder.Reminder) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM reminder WHERE id = (
			SELECT id FROM reminder WHERE text = ? AND time = ? ORDER BY id LIMIT 1
		)`,
		r.Text,
		r.At.String(),
	)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
