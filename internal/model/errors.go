package model

import "errors"

var (
	// Account errors
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Checking account errors, evaluated before the base withdrawal rule
	ErrWithdrawalCeilingExceeded = errors.New("withdrawal amount exceeds the per-withdrawal ceiling")
	ErrWithdrawalCountExceeded   = errors.New("maximum number of withdrawals reached")

	// Registry errors
	ErrClientNotFound  = errors.New("client not found")
	ErrAccountNotFound = errors.New("client has no account")
	ErrDuplicateClient = errors.New("a client with this tax id already exists")
)
