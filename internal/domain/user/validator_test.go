package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsValidator_ValidateRegister(t *testing.T) {
	v := NewCredentialsValidator()

	tests := []struct {
		name     string
		fullname string
		email    string
		password string
		wantErr  bool
	}{
		{name: "valid", fullname: "John Doe", email: "john@example.com", password: "secret", wantErr: false},
		{name: "empty fullname", fullname: "", email: "john@example.com", password: "secret", wantErr: true},
		{name: "empty email", fullname: "John", email: "", password: "secret", wantErr: true},
		{name: "malformed email", fullname: "John", email: "john.example.com", password: "secret", wantErr: true},
		{name: "empty password", fullname: "John", email: "john@example.com", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegister(tt.fullname, tt.email, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCredentialsValidator_ValidateLogin(t *testing.T) {
	v := NewCredentialsValidator()

	assert.NoError(t, v.ValidateLogin("john@example.com", "secret"))
	assert.Error(t, v.ValidateLogin("", "secret"))
	assert.Error(t, v.ValidateLogin("bad-email", "secret"))
	assert.Error(t, v.ValidateLogin("john@example.com", ""))
}
