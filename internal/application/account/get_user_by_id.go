package account

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/user-accounts/internal/domain/account"
)

type GetUserByIDInput struct {
	ID int64
}

type GetUserAddressOutput struct {
	ID           int64  `json:"id"`
	EmailAddress string `json:"email_address"`
}

type GetUserByIDOutput struct {
	ID        int64                  `json:"id"`
	Name      string                 `json:"name"`
	FullName  string                 `json:"full_name"`
	Addresses []GetUserAddressOutput `json:"addresses"`
}

type GetUserByID interface {
	Execute(ctx context.Context, in GetUserByIDInput) (GetUserByIDOutput, error)
}

type getUserByID struct {
	sessions domain.SessionRunner
}

func NewGetUserByID(sessions domain.SessionRunner) GetUserByID {
	return &getUserByID{sessions: sessions}
}

func (uc *getUserByID) Execute(ctx context.Context, in GetUserByIDInput) (GetUserByIDOutput, error) {
	if in.ID <= 0 {
		return GetUserByIDOutput{}, ErrInvalidUserID
	}

	var user *domain.User
	err := uc.sessions.WithSession(ctx, func(s domain.Session) error {
		var err error
		user, err = s.GetUser(ctx, in.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return GetUserByIDOutput{}, ErrUserNotFound
		}
		return GetUserByIDOutput{}, fmt.Errorf("%w: %v", ErrGetUserByID, err)
	}

	addresses := make([]GetUserAddressOutput, 0, len(user.Addresses))
	for _, address := range user.Addresses {
		addresses = append(addresses, GetUserAddressOutput{
			ID:           address.ID,
			EmailAddress: address.EmailAddress,
		})
	}

	return GetUserByIDOutput{
		ID:        user.ID,
		Name:      user.Name,
		FullName:  user.FullName,
		Addresses: addresses,
	}, nil
}
