package account

import (
	"context"
	"fmt"
	"log/slog"

	domain "github.com/mohammadpnp/user-accounts/internal/domain/account"
)

// Reporter receives the progress and results of a tour as they happen.
type Reporter interface {
	Step(message string)
	Schema(info domain.SchemaInfo)
	Users(title string, users []domain.User)
	Addresses(title string, addresses []domain.Address)
	UserEmails(title string, rows []domain.UserEmail)
	Count(title string, count int64)
}

type TourInput struct {
	Seed        []domain.User
	ResetSchema bool
	// Names filters the first query.
	Names []string
	// AddressOwnerID selects whose addresses the second query returns.
	AddressOwnerID int64
}

type TourOutput struct {
	Schema              domain.SchemaInfo
	Inserted            []domain.User
	UsersByName         []domain.User
	OwnerAddresses      []domain.Address
	UsersByFullNameDesc []domain.User
	UserEmails          []domain.UserEmail
	UserCount           int64
}

// Tour creates the schema, inserts the seed users in one unit of work and
// runs the read queries, stopping at the first failure.
type Tour struct {
	schema   domain.SchemaManager
	sessions domain.SessionRunner
	reporter Reporter
	logger   *slog.Logger
}

func NewTour(schema domain.SchemaManager, sessions domain.SessionRunner, reporter Reporter, logger *slog.Logger) *Tour {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tour{
		schema:   schema,
		sessions: sessions,
		reporter: reporter,
		logger:   logger,
	}
}

func (t *Tour) Execute(ctx context.Context, in TourInput) (TourOutput, error) {
	var out TourOutput

	if in.ResetSchema {
		if err := t.schema.DropSchema(ctx); err != nil {
			return TourOutput{}, fmt.Errorf("%w: %w", ErrResetSchema, err)
		}
		t.reporter.Step("dropped existing tables")
	}

	if err := t.schema.CreateSchema(ctx); err != nil {
		return TourOutput{}, fmt.Errorf("%w: %w", ErrCreateSchema, err)
	}
	t.reporter.Step("created tables")

	info, err := t.schema.Inspect(ctx)
	if err != nil {
		return TourOutput{}, fmt.Errorf("%w: %w", ErrInspectSchema, err)
	}
	out.Schema = info
	t.reporter.Schema(info)

	err = t.sessions.WithSession(ctx, func(s domain.Session) error {
		if err := t.seed(ctx, s, in.Seed, &out); err != nil {
			return err
		}
		return t.query(ctx, s, in, &out)
	})
	if err != nil {
		return TourOutput{}, err
	}

	t.logger.InfoContext(ctx, "tour finished", "users", out.UserCount, "inserted", len(out.Inserted))
	return out, nil
}

func (t *Tour) seed(ctx context.Context, s domain.Session, users []domain.User, out *TourOutput) error {
	if err := s.Add(users...); err != nil {
		return fmt.Errorf("%w: %w", ErrSeed, err)
	}
	if err := s.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrSeed, err)
	}

	out.Inserted = s.Inserted()
	t.reporter.Users("inserted users", out.Inserted)
	return nil
}

func (t *Tour) query(ctx context.Context, s domain.Session, in TourInput, out *TourOutput) error {
	var err error

	if out.UsersByName, err = s.FindUsersByNames(ctx, in.Names...); err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	t.reporter.Users(fmt.Sprintf("users named %v", in.Names), out.UsersByName)

	if out.OwnerAddresses, err = s.FindAddressesByUserID(ctx, in.AddressOwnerID); err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	t.reporter.Addresses(fmt.Sprintf("addresses of user %d", in.AddressOwnerID), out.OwnerAddresses)

	if out.UsersByFullNameDesc, err = s.ListUsersByFullNameDesc(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	t.reporter.Users("users by full name, descending", out.UsersByFullNameDesc)

	if out.UserEmails, err = s.ListUserEmails(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	t.reporter.UserEmails("users joined with their email addresses", out.UserEmails)

	if out.UserCount, err = s.CountUsers(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
	t.reporter.Count("total users", out.UserCount)

	return nil
}
