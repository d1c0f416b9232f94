package repository

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	domain "github.com/mohammadpnp/user-accounts/internal/domain/account"
)

// Store hands out sessions. It is the only way to reach the user and address
// tables for reads and writes.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewStore(gdb *gorm.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: gdb, logger: logger}
}

// WithSession opens a session, passes it to fn and releases it when fn
// returns. Work that fn did not commit is rolled back. The session must not
// be retained: once released every method returns domain.ErrSessionClosed.
func (s *Store) WithSession(ctx context.Context, fn func(domain.Session) error) (err error) {
	sess := &session{db: s.db, ctx: ctx, logger: s.logger}
	if err := sess.begin(); err != nil {
		return err
	}

	defer func() {
		if releaseErr := sess.release(); releaseErr != nil && err == nil {
			err = releaseErr
		}
	}()

	if err := fn(sess); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}
