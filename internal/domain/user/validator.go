package user

import (
	"fmt"
	"net/mail"
)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateRegister(fullname, email, password string) error
	ValidateLogin(email, password string) error
}

type CredentialsValidator struct{}

// NewCredentialsValidator создает новый валидатор
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{}
}

// ValidateRegister валидирует данные для регистрации
func (v *CredentialsValidator) ValidateRegister(fullname, email, password string) error {
	if fullname == "" {
		return fmt.Errorf("fullname is required")
	}
	if err := v.validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ValidateLogin валидирует данные для входа
func (v *CredentialsValidator) ValidateLogin(email, password string) error {
	if err := v.validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

func (v *CredentialsValidator) validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
