package commands

import (
	"context"

	"venuebook/internal/domain/user"
	reqdto "venuebook/internal/handler/dto/request"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/pkg/jwt"
	"venuebook/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidUserInput   = errs.New("invalid user input")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error) {
	role := user.RoleUser
	if req.Role != "" {
		parsed, err := user.NewRole(req.Role)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidUserInput)
		}
		role = parsed
	}
	if role == user.RoleSuperAdmin {
		// Super admins are provisioned out of band, never self-registered.
		return nil, ErrInvalidUserInput
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}

	entity, err := user.NewUser(req.Name, req.Email, hash, role, a.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}

	userID, err := a.userRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return a.issueTokens(userID, role)
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	snapshot, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(snapshot.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	return a.issueTokens(snapshot.ID, role)
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	result, err := a.issueTokens(claims.UserID, role)
	if err != nil {
		return nil, err
	}
	return result.TokenPair, nil
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*LoginResult, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID: userID,
		Role:   role,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}
