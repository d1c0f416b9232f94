package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/mohammadpnp/user-accounts/internal/domain/account"
	"github.com/mohammadpnp/user-accounts/internal/infrastructure/db/models"
)

func (s *session) FindUsersByNames(ctx context.Context, names ...string) ([]domain.User, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	values := make([]any, 0, len(names))
	for _, name := range names {
		values = append(values, name)
	}

	var rows []models.UserAccount
	err := selectFrom(s.tx.WithContext(ctx), models.UserName.In(values...)).
		Order(models.UserID.Asc().Clause()).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find users by names: %w", err)
	}
	return toDomainUsers(rows), nil
}

func (s *session) FindAddressesByUserID(ctx context.Context, userID int64) ([]domain.Address, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	var rows []models.Address
	err := selectFrom(s.tx.WithContext(ctx), models.AddressUserID.Eq(userID)).
		Order(models.AddressID.Asc().Clause()).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find addresses of user %d: %w", userID, err)
	}

	addresses := make([]domain.Address, 0, len(rows))
	for _, row := range rows {
		addresses = append(addresses, toDomainAddress(row))
	}
	return addresses, nil
}

func (s *session) ListUsersByFullNameDesc(ctx context.Context) ([]domain.User, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	var rows []models.UserAccount
	err := s.tx.WithContext(ctx).
		Order(models.UserFullName.Desc().Clause()).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list users by full name: %w", err)
	}
	return toDomainUsers(rows), nil
}

type userEmailRow struct {
	FullName     string
	EmailAddress string
}

func (s *session) ListUserEmails(ctx context.Context) ([]domain.UserEmail, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	join := fmt.Sprintf("JOIN %s ON %s = %s",
		models.UserID.Table(), models.UserID.Qualified(), models.AddressUserID.Qualified())

	var rows []userEmailRow
	err := s.tx.WithContext(ctx).
		Model(&models.Address{}).
		Select(models.UserFullName.Qualified(), models.AddressEmailAddress.Qualified()).
		Joins(join).
		Order(models.UserFullName.Asc().Clause()).
		Order(models.AddressEmailAddress.Asc().Clause()).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list user emails: %w", err)
	}

	out := make([]domain.UserEmail, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.UserEmail{FullName: row.FullName, EmailAddress: row.EmailAddress})
	}
	return out, nil
}

func (s *session) CountUsers(ctx context.Context) (int64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}

	var count int64
	if err := s.tx.WithContext(ctx).Model(&models.UserAccount{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func (s *session) CountAddresses(ctx context.Context) (int64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}

	var count int64
	if err := s.tx.WithContext(ctx).Model(&models.Address{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count addresses: %w", err)
	}
	return count, nil
}

// GetUser loads a user together with its addresses.
func (s *session) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}

	var row models.UserAccount
	err := s.tx.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order(models.AddressID.Asc().Clause())
		}).
		First(&row, models.UserID.Eq(id).Expression()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	user := toDomainUser(row)
	return &user, nil
}

// selectFrom applies predicates that all belong to model M.
func selectFrom[M models.Tabler](db *gorm.DB, predicates ...models.Predicate[M]) *gorm.DB {
	var model M
	db = db.Model(&model)
	for _, predicate := range predicates {
		db = db.Where(predicate.Expression())
	}
	return db
}
