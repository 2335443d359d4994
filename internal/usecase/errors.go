package usecase

import "errors"

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so the failure surface cannot be used to enumerate
	// accounts.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrUnauthenticated covers every bad-token shape: missing, malformed,
	// bad signature, expired, and subjects that no longer resolve to a user.
	ErrUnauthenticated = errors.New("could not validate credentials")

	// ErrAccountDisabled means the token was valid but the account is
	// inactive.
	ErrAccountDisabled = errors.New("inactive user")

	ErrProductExists   = errors.New("product already exists")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderExists     = errors.New("order already exists")
	ErrOrderNotFound   = errors.New("order not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrForbidden = errors.New("not authorized to view this order")
)
