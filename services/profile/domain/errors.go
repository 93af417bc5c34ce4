package domain

import "errors"

// Sentinel errors for the profile domain. Use errors.Is() to check these.
var (
	// ErrProfileNotFound indicates the requested profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrEmailTaken indicates a profile is already registered for the email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidProfile indicates profile fields violate domain constraints.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrInvalidCredentials indicates a failed login attempt. The message is
	// deliberately identical for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrRoleImmutable indicates an attempt to change the role through the
	// user-facing update operation. Role changes are administrative only.
	ErrRoleImmutable = errors.New("role cannot be changed")
)
