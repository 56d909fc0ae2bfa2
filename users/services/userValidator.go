package services

import (
	"strings"
	"unicode/utf8"

	"licensing-backend/utils"
)

const (
	minLoginLength    = 3
	maxLoginLength    = 50
	minPasswordLength = 6
)

type RegisterInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

func ValidateRegistration(in RegisterInput) error {
	login := strings.TrimSpace(in.Login)
	if n := utf8.RuneCountInString(login); n < minLoginLength || n > maxLoginLength {
		return utils.NewBadRequestError("login must be between %d and %d characters", minLoginLength, maxLoginLength)
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		return utils.NewBadRequestError("password must be at least %d characters", minPasswordLength)
	}
	if !strings.Contains(in.Email, "@") {
		return utils.NewBadRequestError("a valid email is required")
	}
	return nil
}
