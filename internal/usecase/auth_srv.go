package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-rating/internal/data/entity"
	"movie-rating/internal/data/repository"
	"movie-rating/internal/dto/request"
	"movie-rating/internal/dto/response"
	"movie-rating/pkg/apperror"
	"movie-rating/pkg/metrics"
	"movie-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, identity utils.Identity) error

	// Authenticate resolves a signed session token to the identity that owns it.
	Authenticate(ctx context.Context, signed string) (utils.Identity, error)
}

type authService struct {
	repo   *repository.Repository // user and session repositories
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if err := utils.Validate(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	user := &entity.User{
		Base:     entity.Base{CreatedAt: time.Now().UTC()},
		Username: req.Username,
		Email:    req.Email,
	}
	if err := user.SetPassword(req.Password); err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrDuplicateUsername) || errors.Is(err, apperror.ErrDuplicateEmail) {
			s.log.Info("Registration rejected",
				zap.String("username", req.Username),
				zap.String("reason", err.Error()))
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	metrics.UsersRegisteredTotal.Inc()
	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if err := utils.Validate(req); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	// Unknown user and wrong password look the same to the caller.
	if user == nil || !user.CheckPassword(req.Password) {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		s.log.Warn("Invalid credentials", zap.String("username", req.Username))
		return nil, apperror.ErrInvalidCredentials
	}

	session, err := s.createSession(ctx, user.ID, req)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("login: %w", err)
	}

	signed, err := utils.SignSessionToken(s.config.Session.Secret, user.ID, session.Token, session.ExpiresAt)
	if err != nil {
		s.log.Error("Failed to sign session token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("login: %w", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, session, signed)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, identity utils.Identity) error {
	if err := identity.Require(); err != nil {
		return err
	}

	if err := s.repo.Session.Revoke(ctx, identity.Token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err), zap.Int64("user_id", identity.UserID))
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info("User logged out", zap.Int64("user_id", identity.UserID))
	return nil
}

func (s *authService) Authenticate(ctx context.Context, signed string) (utils.Identity, error) {
	claims, err := utils.ParseSessionToken(s.config.Session.Secret, signed)
	if err != nil {
		return utils.Anonymous(), apperror.ErrUnauthorized
	}

	userID, err := claims.UserID()
	if err != nil {
		return utils.Anonymous(), apperror.ErrUnauthorized
	}
	token, err := claims.SessionToken()
	if err != nil {
		return utils.Anonymous(), apperror.ErrUnauthorized
	}

	session, err := s.repo.Session.FindValidSession(ctx, token)
	if err != nil {
		return utils.Anonymous(), fmt.Errorf("authenticate: %w", err)
	}
	if session == nil || session.UserID != userID {
		return utils.Anonymous(), apperror.ErrUnauthorized
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return utils.Anonymous(), fmt.Errorf("authenticate: %w", err)
	}
	if user == nil {
		return utils.Anonymous(), apperror.ErrUnauthorized
	}

	return utils.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Token:    session.Token,
	}, nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, userID int64, req *request.LoginRequest) (*entity.Session, error) {
	now := time.Now().UTC()
	session := &entity.Session{
		Base:      entity.Base{CreatedAt: now},
		UserID:    userID,
		Token:     uuid.New(),
		UserAgent: req.UserAgent,
		IPAddress: req.IPAddress,
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
