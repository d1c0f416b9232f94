package account_test

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/user-accounts/internal/domain/account"
)

type fakeSchema struct {
	calls     []string
	createErr error
	dropErr   error
	info      domain.SchemaInfo
}

func (f *fakeSchema) CreateSchema(ctx context.Context) error {
	f.calls = append(f.calls, "create")
	return f.createErr
}

func (f *fakeSchema) DropSchema(ctx context.Context) error {
	f.calls = append(f.calls, "drop")
	return f.dropErr
}

func (f *fakeSchema) Inspect(ctx context.Context) (domain.SchemaInfo, error) {
	f.calls = append(f.calls, "inspect")
	return f.info, nil
}

type fakeSession struct {
	pending   []domain.User
	inserted  []domain.User
	commitErr error
	countErr  error
	users     map[int64]domain.User
}

func (f *fakeSession) Add(users ...domain.User) error {
	f.pending = append(f.pending, users...)
	return nil
}

func (f *fakeSession) Commit(ctx context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	for _, user := range f.pending {
		user.ID = int64(len(f.inserted) + 1)
		f.inserted = append(f.inserted, user)
	}
	f.pending = nil
	return nil
}

func (f *fakeSession) Rollback(ctx context.Context) error {
	f.pending = nil
	return nil
}

func (f *fakeSession) Inserted() []domain.User {
	return f.inserted
}

func (f *fakeSession) FindUsersByNames(ctx context.Context, names ...string) ([]domain.User, error) {
	var out []domain.User
	for _, user := range f.inserted {
		for _, name := range names {
			if user.Name == name {
				out = append(out, user)
			}
		}
	}
	return out, nil
}

func (f *fakeSession) FindAddressesByUserID(ctx context.Context, userID int64) ([]domain.Address, error) {
	for _, user := range f.inserted {
		if user.ID == userID {
			return user.Addresses, nil
		}
	}
	return nil, nil
}

func (f *fakeSession) ListUsersByFullNameDesc(ctx context.Context) ([]domain.User, error) {
	return f.inserted, nil
}

func (f *fakeSession) ListUserEmails(ctx context.Context) ([]domain.UserEmail, error) {
	return nil, nil
}

func (f *fakeSession) CountUsers(ctx context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.inserted)), nil
}

func (f *fakeSession) CountAddresses(ctx context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeSession) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (f *fakeSession) DeleteUser(ctx context.Context, id int64) error {
	return nil
}

type fakeSessions struct {
	session *fakeSession
	err     error
}

func (f *fakeSessions) WithSession(ctx context.Context, fn func(domain.Session) error) error {
	if f.err != nil {
		return f.err
	}
	if err := fn(f.session); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

type recordingReporter struct {
	events []string
}

func (r *recordingReporter) Step(message string) {
	r.events = append(r.events, "step:"+message)
}

func (r *recordingReporter) Schema(info domain.SchemaInfo) {
	r.events = append(r.events, "schema")
}

func (r *recordingReporter) Users(title string, users []domain.User) {
	r.events = append(r.events, fmt.Sprintf("users:%s:%d", title, len(users)))
}

func (r *recordingReporter) Addresses(title string, addresses []domain.Address) {
	r.events = append(r.events, fmt.Sprintf("addresses:%s:%d", title, len(addresses)))
}

func (r *recordingReporter) UserEmails(title string, rows []domain.UserEmail) {
	r.events = append(r.events, fmt.Sprintf("emails:%d", len(rows)))
}

func (r *recordingReporter) Count(title string, count int64) {
	r.events = append(r.events, fmt.Sprintf("count:%d", count))
}
