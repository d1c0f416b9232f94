package account

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength         = 10
	MaxFullNameLength     = 30
	MaxEmailAddressLength = 50
)

// Address is an email address owned by exactly one user. It refers back to
// its owner by id only.
type Address struct {
	ID           int64
	UserID       int64
	EmailAddress string
}

func NewAddress(emailAddress string) (Address, error) {
	emailAddress = strings.TrimSpace(emailAddress)
	if emailAddress == "" {
		return Address{}, ErrInvalidEmail
	}
	if utf8.RuneCountInString(emailAddress) > MaxEmailAddressLength {
		return Address{}, fmt.Errorf("%w: email_address exceeds %d characters", ErrFieldTooLong, MaxEmailAddressLength)
	}

	parsed, err := mail.ParseAddress(emailAddress)
	if err != nil || parsed.Address != emailAddress {
		return Address{}, ErrInvalidEmail
	}

	return Address{EmailAddress: emailAddress}, nil
}

func (a Address) String() string {
	return fmt.Sprintf("Address(id=%d, email_address=%s)", a.ID, a.EmailAddress)
}

type User struct {
	ID        int64
	Name      string
	FullName  string
	Addresses []Address
}

func NewUser(name, fullName string, emailAddresses ...string) (User, error) {
	if utf8.RuneCountInString(name) > MaxNameLength {
		return User{}, fmt.Errorf("%w: name exceeds %d characters", ErrFieldTooLong, MaxNameLength)
	}
	if utf8.RuneCountInString(fullName) > MaxFullNameLength {
		return User{}, fmt.Errorf("%w: full_name exceeds %d characters", ErrFieldTooLong, MaxFullNameLength)
	}

	addresses := make([]Address, 0, len(emailAddresses))
	for _, emailAddress := range emailAddresses {
		address, err := NewAddress(emailAddress)
		if err != nil {
			return User{}, err
		}
		addresses = append(addresses, address)
	}

	return User{
		Name:      name,
		FullName:  fullName,
		Addresses: addresses,
	}, nil
}

func (u User) String() string {
	return fmt.Sprintf("User(id=%d, name=%s, fullname=%s)", u.ID, u.Name, u.FullName)
}

// UserEmail is one row of the user/address join.
type UserEmail struct {
	FullName     string
	EmailAddress string
}
