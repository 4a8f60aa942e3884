package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/app/models/dto"
	"github.com/okandemir/melodia/internal/app/repositories"
	"github.com/okandemir/melodia/internal/pkg/apperrors"
	"github.com/okandemir/melodia/internal/pkg/auth"
	"github.com/okandemir/melodia/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new staff account.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing password")
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		RoleType:     models.RoleType(req.RoleType),
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	user.ID = id

	return user, nil
}

// Login verifies the credentials and issues a token pair. Lookups that miss
// and wrong passwords are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.issueTokens(user)
}

// RefreshTokens exchanges a valid refresh token for a new token pair.
func (s *authServiceImpl) RefreshTokens(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.issueTokens(user)
}

func (s *authServiceImpl) issueTokens(user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error generating token pair")
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}
