package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain"
	"github.com/marcos-nsantos/image-processing-backend/internal/domain/entity"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/auth"
)

type Service struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	jwtSvc           *auth.JWTService
	passwordHasher   *auth.PasswordHasher
	refreshTokenTTL  time.Duration
}

func NewService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	jwtSvc *auth.JWTService,
	passwordHasher *auth.PasswordHasher,
	refreshTokenTTL time.Duration,
) *Service {
	return &Service{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtSvc:           jwtSvc,
		passwordHasher:   passwordHasher,
		refreshTokenTTL:  refreshTokenTTL,
	}
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

type RegisterInput struct {
	Username string
	Password string
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	username := normalizeUsername(input.Username)

	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := entity.NewUser(username, hash)
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

type LoginInput struct {
	Username string
	Password string
}

func (s *Service) Login(ctx context.Context, input LoginInput) (*TokenPair, *entity.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, normalizeUsername(input.Username))
	if err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if err := s.passwordHasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.generateTokenPair(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return tokens, user, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	rt, err := s.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	if rt.IsRevoked() {
		return nil, domain.ErrTokenRevoked
	}

	if rt.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	if err := s.refreshTokenRepo.Revoke(ctx, rt.ID); err != nil {
		return nil, fmt.Errorf("revoking old token: %w", err)
	}

	tokens, err := s.generateTokenPair(ctx, rt.UserID)
	if err != nil {
		return nil, err
	}

	return tokens, nil
}

func (s *Service) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.refreshTokenRepo.RevokeByUserID(ctx, userID); err != nil {
		return fmt.Errorf("revoking tokens: %w", err)
	}
	return nil
}

// PurgeExpiredTokens deletes refresh tokens past their expiry.
func (s *Service) PurgeExpiredTokens(ctx context.Context) error {
	if err := s.refreshTokenRepo.DeleteExpired(ctx); err != nil {
		return fmt.Errorf("deleting expired tokens: %w", err)
	}
	return nil
}

func (s *Service) generateTokenPair(ctx context.Context, userID uuid.UUID) (*TokenPair, error) {
	accessToken, expiresAt, err := s.jwtSvc.GenerateAccessToken(userID)
	if err != nil {
		return nil, fmt.Errorf("generating access token: %w", err)
	}

	refreshTokenStr, err := s.jwtSvc.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generating refresh token: %w", err)
	}

	rt := entity.NewRefreshToken(userID, refreshTokenStr, time.Now().UTC().Add(s.refreshTokenTTL))
	if err := s.refreshTokenRepo.Create(ctx, rt); err != nil {
		return nil, fmt.Errorf("storing refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenStr,
		ExpiresAt:    expiresAt,
	}, nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
