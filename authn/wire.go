package authn

import "github.com/goliatone/go-gateway/core"

type wireSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (w wireSession) toPublic() Session {
	return Session{
		AccessToken:  w.AccessToken,
		RefreshToken: w.RefreshToken,
		TokenType:    w.TokenType,
		ExpiresIn:    w.ExpiresIn,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

type sessionResponse struct {
	core.BackendStatus
	Session *wireSession `json:"session"`
}

type tokenInfoResponse struct {
	core.BackendStatus
	UserID    string          `json:"user_id"`
	Email     string          `json:"email"`
	Valid     bool            `json:"valid"`
	ExpiresAt *core.Timestamp `json:"expires_at,omitempty"`
}

type ackResponse struct {
	core.BackendStatus
}
