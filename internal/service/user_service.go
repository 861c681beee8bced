package service

import (
	"context"
	"errors"
	"strings"

	"recipe-be/internal/cache"
	"recipe-be/internal/common"
	"recipe-be/internal/entities"
	"recipe-be/internal/logging"
	"recipe-be/internal/models"
	"recipe-be/internal/repository"
	"recipe-be/internal/validation"
)

// UserService manages the caller's own profile and the admin user listing
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*entities.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *models.UpdateUserRequest, partial bool) (*entities.User, error)
	ListUsers(ctx context.Context, search string) ([]*entities.User, error)
	CreateSuperuser(ctx context.Context, req *models.CreateUserRequest) (*entities.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	cache    cache.Cache
	log      logging.Logger
}

func NewUserService(userRepo repository.UserRepository, cacheClient cache.Cache, log logging.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		cache:    cacheClient,
		log:      log,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*entities.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile applies req to the caller's account. A partial update touches
// only the fields present; a full update requires email and password and
// resets an absent name. A supplied password is re-hashed.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, req *models.UpdateUserRequest, partial bool) (*entities.User, error) {
	if req.Email != nil {
		email := NormalizeEmail(*req.Email)
		req.Email = &email
	}
	if err := validateUpdate(req, partial); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, *req.Email)
		switch {
		case err == nil && existing.ID != user.ID:
			return nil, validation.Field("email", duplicateEmailMessage)
		case err != nil && !errors.Is(err, common.ErrorNotFound):
			return nil, err
		}
		user.Email = *req.Email
	}

	switch {
	case req.Name != nil:
		user.Name = strings.TrimSpace(*req.Name)
	case !partial:
		user.Name = ""
	}

	if req.Password != nil {
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	updated, err := s.userRepo.Update(ctx, user)
	if errors.Is(err, common.ErrorAlreadyExists) {
		return nil, validation.Field("email", duplicateEmailMessage)
	}
	if err != nil {
		return nil, err
	}

	s.evict(ctx, userID)
	return updated, nil
}

func validateUpdate(req *models.UpdateUserRequest, partial bool) error {
	errs := validation.Errors{}
	if err := validation.Struct(req); err != nil {
		verr, ok := validation.As(err)
		if !ok {
			return err
		}
		errs = verr
	}
	if !partial {
		if req.Email == nil {
			errs.Add("email", "This field is required.")
		}
		if req.Password == nil {
			errs.Add("password", "This field is required.")
		}
	}
	return errs.OrNil()
}

func (s *userService) evict(ctx context.Context, userID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.UserKey(userID)); err != nil {
		s.log.Warn(ctx, "user cache eviction failed", "user_id", userID, "error", err)
	}
}

// ListUsers returns all accounts, optionally narrowed by an email or name
// search.
func (s *userService) ListUsers(ctx context.Context, search string) ([]*entities.User, error) {
	return s.userRepo.List(ctx, search)
}

// CreateSuperuser provisions an active staff account with full privileges
func (s *userService) CreateSuperuser(ctx context.Context, req *models.CreateUserRequest) (*entities.User, error) {
	user, err := createAccount(ctx, s.userRepo, req, true)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "superuser created", "user_id", user.ID)
	return user, nil
}
