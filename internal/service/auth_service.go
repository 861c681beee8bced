package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"recipe-be/internal/cache"
	"recipe-be/internal/common"
	"recipe-be/internal/entities"
	"recipe-be/internal/jwt"
	"recipe-be/internal/logging"
	"recipe-be/internal/models"
	"recipe-be/internal/repository"
	"recipe-be/internal/validation"
)

// userCacheTTL bounds how long a revoked or deactivated account can keep
// authenticating through a cached record.
const userCacheTTL = 5 * time.Minute

const duplicateEmailMessage = "user with this email already exists."

// AuthService defines the interface for signup, token issuance and token
// verification
type AuthService interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*entities.User, error)
	Login(ctx context.Context, req *models.TokenRequest) (string, error)
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	cache      cache.Cache
	log        logging.Logger
}

// NewAuthService creates a new auth service. cacheClient may be nil, in which
// case every authenticated request reads the user from the database.
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService, cacheClient cache.Cache, log logging.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		cache:      cacheClient,
		log:        log,
	}
}

// Register creates a regular, active account
func (s *authService) Register(ctx context.Context, req *models.CreateUserRequest) (*entities.User, error) {
	user, err := createAccount(ctx, s.userRepo, req, false)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies the credentials and issues a token. Every failure past
// field validation is reported as common.ErrorInvalidCredentials.
func (s *authService) Login(ctx context.Context, req *models.TokenRequest) (string, error) {
	if err := validation.Struct(req); err != nil {
		return "", err
	}

	user, err := s.userRepo.FindByEmail(ctx, NormalizeEmail(req.Email))
	if errors.Is(err, common.ErrorNotFound) {
		return "", common.ErrorInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", common.ErrorInvalidCredentials
	}
	if !user.IsActive {
		return "", common.ErrorInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a bearer token to an active user
func (s *authService) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.loadUser(ctx, claims.UserID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInvalidToken
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, common.ErrorInactiveUser
	}
	return user, nil
}

func (s *authService) loadUser(ctx context.Context, id int64) (*entities.User, error) {
	if s.cache != nil {
		var cached entities.User
		err := s.cache.GetJSON(ctx, cache.UserKey(id), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn(ctx, "user cache read failed", "user_id", id, "error", err)
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cache.UserKey(id), user, userCacheTTL); err != nil {
			s.log.Warn(ctx, "user cache write failed", "user_id", id, "error", err)
		}
	}
	return user, nil
}

// NormalizeEmail trims and lower-cases an address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// createAccount validates req, normalizes the email and persists the user.
// Duplicate emails come back as a field error on "email".
func createAccount(ctx context.Context, repo repository.UserRepository, req *models.CreateUserRequest, superuser bool) (*entities.User, error) {
	req.Email = NormalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	_, err := repo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, validation.Field("email", duplicateEmailMessage)
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := repo.Create(ctx, &entities.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hashed,
		IsActive:     true,
		IsStaff:      superuser,
		IsSuperuser:  superuser,
	})
	if errors.Is(err, common.ErrorAlreadyExists) {
		return nil, validation.Field("email", duplicateEmailMessage)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
