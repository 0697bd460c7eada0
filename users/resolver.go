package users

import (
	"context"

	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/resolver"
)

// Resolver executes user domain operations against the user backend.
type Resolver struct {
	res resolver.Resources
}

func NewResolver(res resolver.Resources) *Resolver {
	return &Resolver{res: res}
}

func (r *Resolver) GetUser(ctx context.Context, cc core.CallContext, input GetUserInput) core.Envelope[User] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[GetUserInput, User]{
		Domain:    core.DomainUser,
		Operation: "GetUser",
		Label:     "fetch user",
		Encode: func(in GetUserInput) (any, error) {
			return getUserRequest{UserID: in.UserID}, nil
		},
		Decode: decodeUser,
	}, input)
}

func (r *Resolver) ListUsers(ctx context.Context, cc core.CallContext, input ListUsersInput) core.Envelope[UserList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[ListUsersInput, UserList]{
		Domain:    core.DomainUser,
		Operation: "ListUsers",
		Label:     "list users",
		Encode: func(in ListUsersInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			return listUsersRequest{Page: page, Limit: limit}, nil
		},
		Decode: decodeUserList,
	}, input)
}

func (r *Resolver) UpdateUser(ctx context.Context, cc core.CallContext, input UpdateUserInput) core.Envelope[User] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[UpdateUserInput, User]{
		Domain:    core.DomainUser,
		Operation: "UpdateUser",
		Label:     "update user",
		Encode: func(in UpdateUserInput) (any, error) {
			return updateUserRequest{
				UserID:    in.UserID,
				FullName:  in.FullName,
				AvatarURL: in.AvatarURL,
				Language:  in.Language,
			}, nil
		},
		Decode: decodeUser,
	}, input)
}

func (r *Resolver) DeleteUser(ctx context.Context, cc core.CallContext, input DeleteUserInput) core.Envelope[core.Ack] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[DeleteUserInput, core.Ack]{
		Domain:    core.DomainUser,
		Operation: "DeleteUser",
		Label:     "delete user",
		Encode: func(in DeleteUserInput) (any, error) {
			return getUserRequest{UserID: in.UserID}, nil
		},
		Decode: decodeAck,
	}, input)
}

func (r *Resolver) SearchUsers(ctx context.Context, cc core.CallContext, input SearchUsersInput) core.Envelope[UserList] {
	return resolver.Run(ctx, r.res, cc, resolver.Call[SearchUsersInput, UserList]{
		Domain:    core.DomainUser,
		Operation: "SearchUsers",
		Label:     "search users",
		Encode: func(in SearchUsersInput) (any, error) {
			page, limit := core.NormalizePage(in.Page, in.Limit)
			return searchUsersRequest{Query: in.Query, Page: page, Limit: limit}, nil
		},
		Decode: decodeUserList,
	}, input)
}

func decodeUser(result core.BackendResult) (core.Envelope[User], error) {
	wire, err := resolver.DecodeJSON[userResponse](result)
	if err != nil {
		return core.Envelope[User]{}, err
	}
	if wire.User == nil {
		return core.StatusOnly[User](wire.Status, wire.Message), nil
	}
	return core.OK(wire.Status, wire.Message, wire.User.toPublic()), nil
}

func decodeUserList(result core.BackendResult) (core.Envelope[UserList], error) {
	wire, err := resolver.DecodeJSON[userListResponse](result)
	if err != nil {
		return core.Envelope[UserList]{}, err
	}
	list := UserList{
		Users:      make([]User, 0, len(wire.Users)),
		Pagination: wire.Pagination.Meta(),
	}
	for _, user := range wire.Users {
		list.Users = append(list.Users, user.toPublic())
	}
	return core.OK(wire.Status, wire.Message, list), nil
}

func decodeAck(result core.BackendResult) (core.Envelope[core.Ack], error) {
	wire, err := resolver.DecodeJSON[ackResponse](result)
	if err != nil {
		return core.Envelope[core.Ack]{}, err
	}
	return core.StatusOnly[core.Ack](wire.Status, wire.Message), nil
}
