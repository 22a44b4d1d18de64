// Package store persists per-user session-state records as JSON documents.
//
// Each user owns one record per kind (profile, plan, daily logs, weight log,
// custom meals, to-do list). Writes replace the whole document: the client is
// single-writer, so last write wins and no versioning is kept.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/gymello/gymello/internal/errors"
	"github.com/gymello/gymello/internal/sqlite"
)

// Record kinds. One document of each kind exists per user.
const (
	KindProfile     = "profile"
	KindPlan        = "plan"
	KindDailyLogs   = "daily_logs"
	KindWeightLog   = "weight_log"
	KindCustomMeals = "custom_meals"
	KindTodos       = "todos"
)

var (
	ErrNotFound      = errors.NewSentinel("record not found")
	ErrUsernameTaken = errors.NewSentinel("this username is already taken")
	ErrEmailTaken    = errors.NewSentinel("an account with this email already exists")
)

// Store reads and writes keyed records on the application database.
type Store struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// New creates a Store on top of db.
func New(db *sqlite.Database, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Get unmarshals the record of the given kind into v. Returns ErrNotFound
// when the user has no record of that kind yet.
func (s *Store) Get(ctx context.Context, username, kind string, v any) error {
	var body string
	err := s.db.ReadOnly.QueryRowContext(ctx, `
		SELECT body FROM records WHERE username = ? AND kind = ?`,
		username, kind).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, username, kind)
	}
	if err != nil {
		return fmt.Errorf("query record %s/%s: %w", username, kind, err)
	}

	if err = json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("unmarshal record %s/%s: %w", username, kind, err)
	}
	return nil
}

// Set marshals v and replaces the stored record of the given kind.
func (s *Store) Set(ctx context.Context, username, kind string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal record %s/%s: %w", username, kind, err)
	}

	_, err = s.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO records (username, kind, body) VALUES (?, ?, ?)
		ON CONFLICT (username, kind) DO UPDATE SET
			body = excluded.body,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ')`,
		username, kind, string(body))
	if err != nil {
		return fmt.Errorf("save record %s/%s: %w", username, kind, err)
	}
	return nil
}

// Delete removes the record of the given kind, if present.
func (s *Store) Delete(ctx context.Context, username, kind string) error {
	if _, err := s.db.ReadWrite.ExecContext(ctx, `
		DELETE FROM records WHERE username = ? AND kind = ?`,
		username, kind); err != nil {
		return fmt.Errorf("delete record %s/%s: %w", username, kind, err)
	}
	return nil
}

// CreateAccount registers a new account. Username and email uniqueness is
// enforced case-insensitively by the schema; violations map to the
// user-facing sentinels.
func (s *Store) CreateAccount(ctx context.Context, username, email string) error {
	_, err := s.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO accounts (username, email) VALUES (?, ?)`,
		username, email)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			if strings.Contains(err.Error(), "accounts.email") {
				return ErrEmailTaken
			}
			return ErrUsernameTaken
		}
		return fmt.Errorf("create account %s: %w", username, err)
	}
	return nil
}

// AccountEmail returns the email registered for username, or ErrNotFound.
func (s *Store) AccountEmail(ctx context.Context, username string) (string, error) {
	var email string
	err := s.db.ReadOnly.QueryRowContext(ctx, `
		SELECT email FROM accounts WHERE username = ?`, username).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: account %s", ErrNotFound, username)
	}
	if err != nil {
		return "", fmt.Errorf("query account %s: %w", username, err)
	}
	return email, nil
}

// DeleteAccount removes the account and, through the schema's cascade, every
// record the user owns.
func (s *Store) DeleteAccount(ctx context.Context, username string) error {
	if _, err := s.db.ReadWrite.ExecContext(ctx, `
		DELETE FROM accounts WHERE username = ?`, username); err != nil {
		return fmt.Errorf("delete account %s: %w", username, err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "deleted account", slog.String("username", username))
	return nil
}
