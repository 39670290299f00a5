package domain

import "errors"

var (
	ErrInvalidBps         = errors.New("fee rate exceeds 10000 basis points")
	ErrUnauthorized       = errors.New("caller is not the required identity")
	ErrDailyLimitExceeded = errors.New("daily spending limit exceeded")
	ErrSubAccountMismatch = errors.New("sub-account does not match derived address")
	ErrAlreadyExists      = errors.New("record already exists")
	ErrNotFound           = errors.New("record not found")
	ErrTransferFailed     = errors.New("token transfer failed")
)
