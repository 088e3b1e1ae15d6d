package commands

import (
	"context"

	"offerbee-storefront/internal/domain/account"
	"offerbee-storefront/internal/infra"
	"offerbee-storefront/internal/pkg/errs"
	"offerbee-storefront/internal/usecase/shared"
)

// AuthCommands proxies login/signup to the upstream API. Token issuance
// and validation are server-owned; the only local work is form-level
// validation and converting upstream failures into the usecase taxonomy.
type AuthCommands interface {
	Login(ctx context.Context, credentials account.Credentials) (string, error)
	Signup(ctx context.Context, form account.SignupForm) error
}

type authCommandsImpl struct {
	gateway shared.AuthGateway
}

func NewAuthCommands(gateway shared.AuthGateway) AuthCommands {
	return &authCommandsImpl{gateway: gateway}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials account.Credentials) (string, error) {
	token, err := a.gateway.Login(ctx, credentials.Email(), credentials.Password())
	if err != nil {
		if infra.IsKind(err, infra.KindRejected) {
			return "", errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return "", errs.Mark(err, errs.ErrUpstreamUnreachable)
	}
	return token, nil
}

func (a *authCommandsImpl) Signup(ctx context.Context, form account.SignupForm) error {
	if fields := form.Validate(); len(fields) > 0 {
		return errs.NewValidationError(fields)
	}

	err := a.gateway.Signup(ctx, form.Username, form.Email, form.Password)
	if err != nil {
		if infra.IsKind(err, infra.KindRejected) {
			return errs.Mark(err, errs.ErrSignupRejected)
		}
		return errs.Mark(err, errs.ErrUpstreamUnreachable)
	}
	return nil
}
