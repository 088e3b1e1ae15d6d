package account

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Credentials for the upstream login call. The remote API owns the real
// check; this only refuses obviously empty input.
type Credentials struct {
	email    string
	password string
}

func NewCredentials(email, password string) (Credentials, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Credentials{}, ErrEmptyEmail
	}
	if password == "" {
		return Credentials{}, ErrEmptyPassword
	}
	return Credentials{email: email, password: password}, nil
}

func (c Credentials) Email() string    { return c.email }
func (c Credentials) Password() string { return c.password }

// SignupForm carries the raw signup input. Validate returns a field name
// to message map so the form can show per-field feedback instead of a
// single toast; an empty map means the form is valid.
type SignupForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

const (
	minUsernameLength = 3
	minPasswordLength = 8
)

func (f SignupForm) Validate() map[string]string {
	fields := make(map[string]string)

	if len(strings.TrimSpace(f.Username)) < minUsernameLength {
		fields["username"] = "Username must be at least 3 characters"
	}
	if !emailRegex.MatchString(f.Email) {
		fields["email"] = "Invalid email address"
	}
	if len(f.Password) < minPasswordLength {
		fields["password"] = "Password must be at least 8 characters"
	}
	if f.Password != f.ConfirmPassword {
		fields["confirmPassword"] = "Passwords don't match"
	}

	return fields
}
