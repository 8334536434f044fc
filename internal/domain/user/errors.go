package user

import "foodgram/internal/pkg/apperr"

var (
	ErrInvalidRequest     = apperr.Validation("VALIDATION_ERROR", "Invalid request")
	ErrEmailTaken         = apperr.Validation("EMAIL_TAKEN", "A user with this email already exists")
	ErrUsernameTaken      = apperr.Validation("USERNAME_TAKEN", "A user with this username already exists")
	ErrUserExists         = apperr.Validation("USER_EXISTS", "A user with this email or username already exists")
	ErrWrongPassword      = apperr.Validation("WRONG_PASSWORD", "Current password is incorrect")
	ErrInvalidCredentials = apperr.Authentication("INVALID_CREDENTIALS", "Invalid email or password")
	ErrNotFound           = apperr.NotFound("USER_NOT_FOUND", "User not found")
)
