package users

import "github.com/goliatone/go-gateway/core"

type wireUser struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	FullName  string          `json:"full_name"`
	AvatarURL string          `json:"avatar_url"`
	Language  string          `json:"language"`
	CreatedAt *core.Timestamp `json:"created_at,omitempty"`
	UpdatedAt *core.Timestamp `json:"updated_at,omitempty"`
}

func (w wireUser) toPublic() User {
	return User{
		ID:        w.ID,
		Email:     w.Email,
		Username:  w.Username,
		FullName:  w.FullName,
		AvatarURL: w.AvatarURL,
		Language:  w.Language,
		CreatedAt: w.CreatedAt.RFC3339(),
		UpdatedAt: w.UpdatedAt.RFC3339(),
	}
}

type getUserRequest struct {
	UserID string `json:"user_id"`
}

type listUsersRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type updateUserRequest struct {
	UserID    string `json:"user_id"`
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Language  string `json:"language,omitempty"`
}

type searchUsersRequest struct {
	Query string `json:"query"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

type userResponse struct {
	core.BackendStatus
	User *wireUser `json:"user"`
}

type userListResponse struct {
	core.BackendStatus
	Users      []wireUser              `json:"users"`
	Pagination *core.BackendPagination `json:"pagination"`
}

type ackResponse struct {
	core.BackendStatus
}
