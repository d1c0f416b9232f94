package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/mohammadpnp/user-accounts/internal/domain/account"
	"github.com/mohammadpnp/user-accounts/internal/infrastructure/db/models"
)

// session is a unit of work over one open transaction at a time. Commit and
// Rollback end the current transaction and start the next one, so the session
// stays usable until it is released.
type session struct {
	db     *gorm.DB
	ctx    context.Context
	logger *slog.Logger

	tx       *gorm.DB
	pending  []domain.User
	inserted []domain.User
	released bool
}

func (s *session) begin() error {
	tx := s.db.WithContext(s.ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin tx: %w", tx.Error)
	}
	s.tx = tx
	return nil
}

func (s *session) release() error {
	if s.released {
		return nil
	}
	s.released = true
	s.pending = nil

	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback().Error
	s.tx = nil
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("release session: %w", err)
	}
	return nil
}

func (s *session) ensureOpen() error {
	if s.released || s.tx == nil {
		return domain.ErrSessionClosed
	}
	return nil
}

// Add stages users and their addresses for the next Commit.
func (s *session) Add(users ...domain.User) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	s.pending = append(s.pending, users...)
	return nil
}

func (s *session) Commit(ctx context.Context) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	staged, err := s.flush(ctx)
	if err != nil {
		if restartErr := s.restart(); restartErr != nil {
			return errors.Join(err, restartErr)
		}
		return err
	}

	if err := s.tx.Commit().Error; err != nil {
		s.tx = nil
		return fmt.Errorf("commit: %w", err)
	}
	s.inserted = append(s.inserted, staged...)
	s.logger.DebugContext(ctx, "session committed", "users", len(staged))

	if err := s.begin(); err != nil {
		s.tx = nil
		return err
	}
	return nil
}

func (s *session) Rollback(ctx context.Context) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "session rolled back", "discarded_users", len(s.pending))
	return s.restart()
}

// Inserted returns the users committed through this session, with ids set.
func (s *session) Inserted() []domain.User {
	out := make([]domain.User, len(s.inserted))
	copy(out, s.inserted)
	return out
}

// flush inserts the staged users, one batch per table, inside the current
// transaction and returns them with generated ids.
func (s *session) flush(ctx context.Context) ([]domain.User, error) {
	if len(s.pending) == 0 {
		return nil, nil
	}

	tx := s.tx.WithContext(ctx)

	userRows := make([]models.UserAccount, 0, len(s.pending))
	for _, user := range s.pending {
		userRows = append(userRows, models.UserAccount{Name: user.Name, FullName: user.FullName})
	}
	if err := tx.Omit(clause.Associations).Create(&userRows).Error; err != nil {
		return nil, classifyWriteError("insert users", err)
	}

	addressRows := make([]models.Address, 0)
	for i, user := range s.pending {
		for _, address := range user.Addresses {
			addressRows = append(addressRows, models.Address{
				EmailAddress: address.EmailAddress,
				UserID:       userRows[i].ID,
			})
		}
	}
	if len(addressRows) > 0 {
		if err := tx.Create(&addressRows).Error; err != nil {
			return nil, classifyWriteError("insert addresses", err)
		}
	}

	staged := make([]domain.User, 0, len(s.pending))
	next := 0
	for i, user := range s.pending {
		committed := domain.User{
			ID:        userRows[i].ID,
			Name:      user.Name,
			FullName:  user.FullName,
			Addresses: make([]domain.Address, 0, len(user.Addresses)),
		}
		for range user.Addresses {
			committed.Addresses = append(committed.Addresses, toDomainAddress(addressRows[next]))
			next++
		}
		staged = append(staged, committed)
	}
	s.pending = nil

	return staged, nil
}

// restart discards the current transaction and staged users and opens a new
// transaction.
func (s *session) restart() error {
	s.pending = nil
	if err := s.tx.Rollback().Error; err != nil && !errors.Is(err, sql.ErrTxDone) {
		s.tx = nil
		return fmt.Errorf("rollback: %w", err)
	}
	if err := s.begin(); err != nil {
		s.tx = nil
		return err
	}
	return nil
}

// DeleteUser removes a user and, in the same transaction, every address it
// owns. The change is durable after Commit.
func (s *session) DeleteUser(ctx context.Context, id int64) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}

	tx := s.tx.WithContext(ctx)
	if err := tx.Where(models.AddressUserID.Eq(id).Expression()).Delete(&models.Address{}).Error; err != nil {
		return fmt.Errorf("delete addresses of user %d: %w", id, err)
	}

	result := tx.Where(models.UserID.Eq(id).Expression()).Delete(&models.UserAccount{})
	if result.Error != nil {
		return fmt.Errorf("delete user %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
