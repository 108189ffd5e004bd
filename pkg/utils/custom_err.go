package utils

import "errors"

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrAppNotFound          = errors.New("app not found")
	ErrFormNotFound         = errors.New("form not found")
	ErrSecretKeyNotFound    = errors.New("secret key not found")
	ErrResponseNotFound     = errors.New("response not found")
	ErrVerificationNotFound = errors.New("email verification request not found")
	ErrInvalidCode          = errors.New("invalid verification code")
	ErrExpiredCode          = errors.New("verification code expired")
	ErrForbidden            = errors.New("forbidden")
	ErrUnknownFieldType     = errors.New("field type must be string or number")
	ErrDatabaseError        = errors.New("database error")
)
