package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"repair-tracking/internal/dto"
	"repair-tracking/internal/repositories"
	"repair-tracking/pkg/contextkeys"
	apperrors "repair-tracking/pkg/errors"
	"repair-tracking/pkg/service"
	"repair-tracking/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*dto.MeDTO, error)
}

type AuthService struct {
	userRepository repositories.UserRepositoryInterface
	tokenCache     repositories.TokenCacheRepositoryInterface
	jwtService     service.JWTService
	logger         *zap.Logger
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	tokenCache repositories.TokenCacheRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		tokenCache:     tokenCache,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func refreshTokenKey(userID uint64) string {
	return fmt.Sprintf("refresh_token:%d", userID)
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepository.FindByUsername(ctx, payload.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.PasswordHash, payload.Password); err != nil {
		s.logger.Warn("login rejected", zap.String("username", payload.Username))
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	if err := s.tokenCache.Set(ctx, refreshTokenKey(user.ID), refreshToken, s.jwtService.GetRefreshTokenTTL()); err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("username", user.Username))

	return &dto.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// Refresh validates the presented refresh token against the stored one and
// rotates the pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	stored, err := s.tokenCache.Get(ctx, refreshTokenKey(claims.UserID))
	if err != nil {
		return nil, err
	}
	if stored != refreshToken {
		return nil, apperrors.ErrInvalidToken
	}

	accessToken, newRefreshToken, err := s.jwtService.GenerateTokens(claims.UserID, claims.Username)
	if err != nil {
		return nil, err
	}

	if err := s.tokenCache.Set(ctx, refreshTokenKey(claims.UserID), newRefreshToken, s.jwtService.GetRefreshTokenTTL()); err != nil {
		return nil, err
	}

	return &dto.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		TokenType:    "bearer",
	}, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return apperrors.ErrUserIDNotFoundInContext
	}
	return s.tokenCache.Del(ctx, refreshTokenKey(userID))
}

func (s *AuthService) Me(ctx context.Context) (*dto.MeDTO, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return nil, apperrors.ErrUserIDNotFoundInContext
	}

	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.MeDTO{ID: user.ID, Username: user.Username}, nil
}
