package repository

import (
	domain "github.com/mohammadpnp/user-accounts/internal/domain/account"
	"github.com/mohammadpnp/user-accounts/internal/infrastructure/db/models"
)

func toDomainUser(row models.UserAccount) domain.User {
	addresses := make([]domain.Address, 0, len(row.Addresses))
	for _, address := range row.Addresses {
		addresses = append(addresses, toDomainAddress(address))
	}

	return domain.User{
		ID:        row.ID,
		Name:      row.Name,
		FullName:  row.FullName,
		Addresses: addresses,
	}
}

func toDomainUsers(rows []models.UserAccount) []domain.User {
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toDomainUser(row))
	}
	return users
}

func toDomainAddress(row models.Address) domain.Address {
	return domain.Address{
		ID:           row.ID,
		UserID:       row.UserID,
		EmailAddress: row.EmailAddress,
	}
}
