package domain

import "errors"

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrRequestNotFound   = errors.New("mentorship request not found")
	ErrDuplicateRequest  = errors.New("mentorship request id already exists")
	ErrIllegalTransition = errors.New("illegal mentorship request status transition")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole       = errors.New("invalid role")
)
