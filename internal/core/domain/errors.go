package domain

import "errors"

// Registration and CRUD errors.
var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidRole = errors.New("invalid role")
var ErrUserExists = errors.New("user already exists")
var ErrCompanyExists = errors.New("company already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrCompanyNotFound = errors.New("company not found")

// Authentication errors. ErrPrincipalNotFound and ErrSecretMismatch are kept
// distinct for logging but must render as the same client response.
var ErrPrincipalNotFound = errors.New("principal not found")
var ErrSecretMismatch = errors.New("secret mismatch")
var ErrTooManyAttempts = errors.New("too many failed attempts")

// Token errors.
var ErrEmptySecret = errors.New("secret must not be empty")
var ErrNoSigningSecret = errors.New("signing secret is not configured")
var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
