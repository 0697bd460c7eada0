// Package users exposes the user domain operations: profile lookup, listing,
// updates, deletion and search.
package users

import "github.com/goliatone/go-gateway/core"

// User is the public user shape.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl"`
	Language  string `json:"language"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// UserList is the payload for paginated user listings.
type UserList struct {
	Users      []User               `json:"users"`
	Pagination *core.PaginationMeta `json:"pagination,omitempty"`
}

type GetUserInput struct {
	UserID string `json:"userId"`
}

type ListUsersInput struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

type UpdateUserInput struct {
	UserID    string `json:"userId"`
	FullName  string `json:"fullName,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Language  string `json:"language,omitempty"`
}

type DeleteUserInput struct {
	UserID string `json:"userId"`
}

type SearchUsersInput struct {
	Query string `json:"query"`
	Page  int    `json:"page,omitempty"`
	Limit int    `json:"limit,omitempty"`
}
