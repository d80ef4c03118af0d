package service

import "errors"

// Error taxonomy shared by the services. Controllers map these onto localized
// toast messages; everything else surfaces as a transport error.
var (
	// ErrValidation means a required field is missing or malformed.
	ErrValidation = errors.New("required field missing or invalid")

	// ErrDuplicateIdentity means the username or email is already taken.
	ErrDuplicateIdentity = errors.New("username or email already exists")

	// ErrInvalidCredentials covers wrong email, wrong password and banned
	// accounts alike. The cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrForbidden means the acting user fails a role or ownership check.
	ErrForbidden = errors.New("forbidden")

	// ErrMissingProof means an order was submitted without a payment proof.
	ErrMissingProof = errors.New("payment proof required")

	// ErrNotFound means the selected entity does not exist or is inactive.
	ErrNotFound = errors.New("not found")

	// ErrOrderClosed means a status change hit an order that already left the
	// pending state. Terminal states never transition again.
	ErrOrderClosed = errors.New("order already processed")
)
