//go:build unit || e2e

package builder

import (
	reqdto "offerbee-storefront/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "merchant@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

type SignupBuilder struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

func NewSignupBuilder() *SignupBuilder {
	return &SignupBuilder{
		Username:        "merchant",
		Email:           "merchant@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func (b *SignupBuilder) BuildDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Username:        b.Username,
		Email:           b.Email,
		Password:        b.Password,
		ConfirmPassword: b.ConfirmPassword,
	}
}
