package service

import "errors"

var (
	ErrSectionNotFound     = errors.New("section not found")
	ErrSectionExists       = errors.New("section already exists")
	ErrPageNotFound        = errors.New("page not found")
	ErrPageExists          = errors.New("page already exists")
	ErrPageFileNotFound    = errors.New("page file not found")
	ErrPageSectionNotFound = errors.New("page section not found")
	ErrInvalidTemplateType = errors.New("unknown page template type")
	ErrInvalidSectionType  = errors.New("unknown section type")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account has been deactivated")
	ErrInvalidSignupCode  = errors.New("invalid signup code")
	ErrEmailInUse         = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
)
