package response

import (
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
)

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginResponse struct {
	UserID string            `json:"user_id"`
	Role   string            `json:"role"`
	Tokens TokenPairResponse `json:"tokens"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		UserID: result.UserID.String(),
		Role:   string(result.Role),
		Tokens: TokenPairResponse{
			AccessToken:  result.TokenPair.AccessToken,
			RefreshToken: result.TokenPair.RefreshToken,
		},
	}
}

func FromTokenPair(pair *commands.TokenPair) *TokenPairResponse {
	return &TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}

func FromUserView(view *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        view.ID.String(),
		Name:      view.Name,
		Email:     view.Email,
		Role:      view.Role,
		CreatedAt: view.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
