package account

import "context"

type SchemaInfo struct {
	// Present reports, per mapped table, whether the table exists.
	Present       map[string]bool
	Tables        []string
	DefaultSchema string
}

type SchemaManager interface {
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error
	Inspect(ctx context.Context) (SchemaInfo, error)
}

// Session is a unit of work bound to a single transaction. It is only valid
// inside the callback passed to SessionRunner.WithSession.
type Session interface {
	Add(users ...User) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Inserted() []User

	FindUsersByNames(ctx context.Context, names ...string) ([]User, error)
	FindAddressesByUserID(ctx context.Context, userID int64) ([]Address, error)
	ListUsersByFullNameDesc(ctx context.Context) ([]User, error)
	ListUserEmails(ctx context.Context) ([]UserEmail, error)
	CountUsers(ctx context.Context) (int64, error)
	CountAddresses(ctx context.Context) (int64, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type SessionRunner interface {
	WithSession(ctx context.Context, fn func(Session) error) error
}
