package sqlite

import (
	"codeberg.org/miketth/ezoverlay/pkg/settingsstore/sqlite/migrations"
	"context"
	"database/sql"
	"errors"
	"fmt"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type SettingsStore struct {
	db      *sql.DB
	querier *Queries
}

func NewSettingsStore(filename string, log *zap.SugaredLogger) (*SettingsStore, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrations.Migrate(db, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	querier := New(db)

	return &SettingsStore{
		db:      db,
		querier: querier,
	}, nil
}

func (s *SettingsStore) Close() error {
	return s.db.Close()
}

func (s *SettingsStore) GetString(key string) (string, bool, error) {
	value, err := s.querier.GetSetting(context.Background(), key)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("sqlite select: %w", err)
	}

	return value, true, nil
}

func (s *SettingsStore) SetString(key string, value string) error {
	if err := s.querier.SetSetting(context.Background(), SetSettingParams{
		Key:   key,
		Value: value,
	}); err != nil {
		return fmt.Errorf("sqlite update: %w", err)
	}

	return nil
}
