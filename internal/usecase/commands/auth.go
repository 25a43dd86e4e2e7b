package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=mock_commands

import (
	"context"
	"log/slog"

	"glamping-api/internal/domain/user"
	reqdto "glamping-api/internal/handler/dto/request"
	"glamping-api/internal/pkg/errs"
	"glamping-api/internal/pkg/jwt"
	"glamping-api/internal/pkg/password"
	"glamping-api/internal/usecase/queries"
	"glamping-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.Mark(errs.New("invalid credentials"), errs.ErrUnauthorized)
	ErrUserInactive         = errs.Mark(errs.New("user inactive"), errs.ErrForbidden)
	ErrAuthenticationFailed = errs.Mark(errs.New("authentication failed"), errs.ErrUnauthorized)
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.Mark(errs.New("token validation failed"), errs.ErrUnauthorized)
)

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	admin, err := a.validateUser(ctx, credentials.Email().Value(), credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(admin.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issue(admin.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, admin.ID)
	})
	if err != nil {
		// login already succeeded; only last_login is stale
		slog.Warn("failed to update last login", "user_id", admin.ID, "error", err.Error())
	}

	return &LoginResult{UserID: admin.ID, Role: role, TokenPair: pair}, nil
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

	admin, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || admin == nil {
		return nil, ErrTokenValidation
	}
	if !admin.IsActive {
		return nil, ErrUserInactive
	}

	return a.issue(claims.UserID, role)
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, email, plain string) (*queries.AuthorizedUserView, error) {
	admin, hashed, err := a.readStore.FindByEmail(ctx, email)
	if err != nil || admin == nil {
		// same answer as a wrong password so accounts cannot be enumerated
		return nil, ErrInvalidCredentials
	}
	if !admin.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(hashed, plain); err != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}
