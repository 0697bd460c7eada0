// Package authn exposes the auth domain operations: registration, login,
// token refresh, logout and token verification.
package authn

// Session is the public token pair returned by register, login and refresh.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// TokenInfo is the public result of a token verification.
type TokenInfo struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Valid     bool   `json:"valid"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

type RegisterInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken"`
}

type LogoutInput struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

type VerifyTokenInput struct {
	Token string `json:"token"`
}
