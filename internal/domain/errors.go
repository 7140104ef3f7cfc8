package domain

import "errors"

// Account errors
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("email already registered")
)

// Inventory errors
var (
	ErrVehicleNotFound        = errors.New("vehicle not found")
	ErrClassificationNotFound = errors.New("classification not found")
	ErrClassificationExists   = errors.New("classification already exists")
)
