package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cinefeel/cinefeel-backend/internal/common"
	"github.com/cinefeel/cinefeel-backend/internal/domain"
	"github.com/cinefeel/cinefeel-backend/internal/repository"
	"github.com/cinefeel/cinefeel-backend/pkg/auth"
	"github.com/cinefeel/cinefeel-backend/pkg/jwt"
	"gorm.io/gorm"
)

// AuthService authentication business logic
type AuthService interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	CurrentUser(ctx context.Context, userID uint64) (*domain.UserResponse, error)
}

// AuthResult authenticated user plus the session token for the cookie
type AuthResult struct {
	User  *domain.UserResponse
	Token string
}

type authService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Register creates an account and signs the new user in
func (s *authService) Register(ctx context.Context, req *domain.RegisterRequest) (*AuthResult, error) {
	email := strings.TrimSpace(req.Email)
	nickname := strings.TrimSpace(req.Nickname)
	if email == "" || req.Password == "" || nickname == "" {
		return nil, common.ErrInvalidInput
	}
	if len(req.Password) > auth.MaxPasswordBytes {
		return nil, common.ErrInvalidInput
	}

	// 1. Duplicate check (the unique index still guards concurrent signups)
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, common.ErrEmailTaken
	}

	// 2. Hash password
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// 3. Create user
	user := &domain.User{
		Email:    email,
		Password: hashed,
		Nickname: nickname,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issue(user)
}

// Login verifies credentials. Unknown email and wrong password both yield
// ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.Password) {
		return nil, common.ErrInvalidCredentials
	}

	return s.issue(user)
}

// CurrentUser loads the user behind a verified session
func (s *authService) CurrentUser(ctx context.Context, userID uint64) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user.ToResponse(), nil
}

func (s *authService) issue(user *domain.User) (*AuthResult, error) {
	token, err := s.jwtManager.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResult{User: user.ToResponse(), Token: token}, nil
}
