package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Persisted field keys. Every component reads and writes session state
// through this store; nothing else touches the file.
const (
	keyToken          = "token"
	keyRole           = "role"
	keyDisplayName    = "display_name"
	keyProfilePicture = "profile_picture"
	keyTheme          = "theme"
)

type entry struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"column:value"`
	UpdatedAt time.Time
}

func (entry) TableName() string {
	return "session_entries"
}

// Store is the durable key-value session state that survives restarts:
// auth token, role, display name, cached profile picture, and theme.
type Store struct {
	db *gorm.DB
}

// Open boots the session store at the given SQLite path, creating the
// schema on first use.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("session store path is required")
	}

	silent := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 silent,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("migrating session store: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	var row entry
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading session key %q: %w", key, err)
	}
	return row.Value, nil
}

func (s *Store) set(ctx context.Context, key, value string) error {
	row := entry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("writing session key %q: %w", key, err)
	}
	return nil
}

func (s *Store) Token(ctx context.Context) (string, error) {
	return s.get(ctx, keyToken)
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, keyToken, token)
}

func (s *Store) Role(ctx context.Context) (string, error) {
	return s.get(ctx, keyRole)
}

func (s *Store) SetRole(ctx context.Context, role string) error {
	return s.set(ctx, keyRole, role)
}

func (s *Store) DisplayName(ctx context.Context) (string, error) {
	return s.get(ctx, keyDisplayName)
}

func (s *Store) SetDisplayName(ctx context.Context, name string) error {
	return s.set(ctx, keyDisplayName, name)
}

func (s *Store) ProfilePicture(ctx context.Context) (string, error) {
	return s.get(ctx, keyProfilePicture)
}

func (s *Store) SetProfilePicture(ctx context.Context, ref string) error {
	return s.set(ctx, keyProfilePicture, ref)
}

func (s *Store) Theme(ctx context.Context) (string, error) {
	return s.get(ctx, keyTheme)
}

func (s *Store) SetTheme(ctx context.Context, theme string) error {
	return s.set(ctx, keyTheme, theme)
}

// Clear drops the authenticated-session fields. The theme preference is
// not tied to a login and survives.
func (s *Store) Clear(ctx context.Context) error {
	keys := []string{keyToken, keyRole, keyDisplayName, keyProfilePicture}
	err := s.db.WithContext(ctx).Delete(&entry{}, "key IN ?", keys).Error
	if err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("getting sql db handle: %w", err)
	}
	return sqlDB.Close()
}
