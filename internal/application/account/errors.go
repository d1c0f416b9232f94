package account

import "errors"

var (
	ErrResetSchema   = errors.New("failed to reset schema")
	ErrCreateSchema  = errors.New("failed to create schema")
	ErrInspectSchema = errors.New("failed to inspect schema")
	ErrSeed          = errors.New("failed to insert seed users")
	ErrQuery         = errors.New("query failed")
	ErrInvalidUserID = errors.New("invalid user id")
	ErrUserNotFound  = errors.New("user not found")
	ErrGetUserByID   = errors.New("failed to get user by id")
)
