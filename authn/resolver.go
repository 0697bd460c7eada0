package authn

import (
	"context"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

// Resolver executes auth domain operations against the auth backend.
type Resolver struct {
	res resolver.Resources
}

func NewResolver(res resolver.Resources) *Resolver {
	return &Resolver{res: res}
}

func (r *Resolver) Register(ctx context.Context, cc core.CallContext, input RegisterInput) core.Envelope[Session] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[RegisterInput, Session]{
		Domain:    core.DomainAuth,
		Operation: "Register",
		Label:     "register user",
		Encode: func(in RegisterInput) (any, error) {
			return registerRequest{
				Email:    in.Email,
				Username: in.Username,
				Password: in.Password,
				FullName: in.FullName,
			}, nil
		},
		Decode: decodeSession,
	}, input)
}

func (r *Resolver) Login(ctx context.Context, cc core.CallContext, input LoginInput) core.Envelope[Session] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[LoginInput, Session]{
		Domain:    core.DomainAuth,
		Operation: "Login",
		Label:     "login",
		Encode: func(in LoginInput) (any, error) {
			return loginRequest{Email: in.Email, Password: in.Password}, nil
		},
		Decode: decodeSession,
	}, input)
}

func (r *Resolver) RefreshToken(ctx context.Context, cc core.CallContext, input RefreshTokenInput) core.Envelope[Session] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[RefreshTokenInput, Session]{
		Domain:    core.DomainAuth,
		Operation: "RefreshToken",
		Label:     "refresh token",
		Encode: func(in RefreshTokenInput) (any, error) {
			return refreshTokenRequest{RefreshToken: in.RefreshToken}, nil
		},
		Decode: decodeSession,
	}, input)
}

func (r *Resolver) Logout(ctx context.Context, cc core.CallContext, input LogoutInput) core.Envelope[core.Ack] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[LogoutInput, core.Ack]{
		Domain:    core.DomainAuth,
		Operation: "Logout",
		Label:     "logout",
		Encode: func(in LogoutInput) (any, error) {
			return refreshTokenRequest{RefreshToken: in.RefreshToken}, nil
		},
		Decode: decodeAck,
	}, input)
}

func (r *Resolver) VerifyToken(ctx context.Context, cc core.CallContext, input VerifyTokenInput) core.Envelope[TokenInfo] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[VerifyTokenInput, TokenInfo]{
		Domain:    core.DomainAuth,
		Operation: "VerifyToken",
		Label:     "verify token",
		Encode: func(in VerifyTokenInput) (any, error) {
			return verifyTokenRequest{Token: in.Token}, nil
		},
		Decode: decodeTokenInfo,
	}, input)
}

func decodeSession(result core.BackendResult) (core.Envelope[Session], error) {
	wire, err := resolver.DecodeJSON[sessionResponse](result)
	if err != nil {
		return core.Envelope[Session]{}, err
	}
	if wire.Session == nil {
		return core.StatusOnly[Session](wire.Status, wire.Message), nil
	}
	return core.OK(wire.Status, wire.Message, wire.Session.toPublic()), nil
}

func decodeTokenInfo(result core.BackendResult) (core.Envelope[TokenInfo], error) {
	wire, err := resolver.DecodeJSON[tokenInfoResponse](result)
	if err != nil {
		return core.Envelope[TokenInfo]{}, err
	}
	info := TokenInfo{
		UserID:    wire.UserID,
		Email:     wire.Email,
		Valid:     wire.Valid,
		ExpiresAt: wire.ExpiresAt.RFC3339(),
	}
	return core.OK(wire.Status, wire.Message, info), nil
}

func decodeAck(result core.BackendResult) (core.Envelope[core.Ack], error) {
	wire, err := resolver.DecodeJSON[ackResponse](result)
	if err != nil {
		return core.Envelope[core.Ack]{}, err
	}
	return core.StatusOnly[core.Ack](wire.Status, wire.Message), nil
}
