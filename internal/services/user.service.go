package services

import (
	"context"
	"errors"
	"strings"

	"foodgram/internal/auth"
	"foodgram/internal/logging"
	"foodgram/internal/models"
	"foodgram/internal/pagination"
	"foodgram/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*UserCreatedResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	Me(ctx context.Context, user *models.User) (*UserResponse, error)
	Get(ctx context.Context, viewer *models.User, id uint) (*UserResponse, error)
	List(ctx context.Context, viewer *models.User, page pagination.Params) ([]UserResponse, int64, error)
	SetPassword(ctx context.Context, user *models.User, req SetPasswordRequest) error
}

type userService struct {
	users   repository.UserRepository
	tokens  *auth.TokenManager
	revoked *auth.RevocationList
	present *presenter
}

func NewUserService(users repository.UserRepository, subscriptions repository.SubscriptionRepository, tokens *auth.TokenManager, revoked *auth.RevocationList) UserService {
	return &userService{
		users:   users,
		tokens:  tokens,
		revoked: revoked,
		present: &presenter{subscriptions: subscriptions},
	}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*UserCreatedResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Username:     strings.TrimSpace(req.Username),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, NewValidationError("errors", "A user with that email or username already exists.")
		}
		return nil, err
	}

	logging.Ctx(ctx).Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("User registered")
	return &UserCreatedResponse{
		Email:     user.Email,
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	token, _, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{AuthToken: token}, nil
}

func (s *userService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil {
		return ErrForbidden
	}
	return s.revoked.Revoke(ctx, claims)
}

func (s *userService) Me(ctx context.Context, user *models.User) (*UserResponse, error) {
	if user == nil {
		return nil, ErrForbidden
	}
	resp := userResponse(user, false)
	return &resp, nil
}

func (s *userService) Get(ctx context.Context, viewer *models.User, id uint) (*UserResponse, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.present.user(ctx, viewer, user)
}

func (s *userService) List(ctx context.Context, viewer *models.User, page pagination.Params) ([]UserResponse, int64, error) {
	users, count, err := s.users.ListUsers(ctx, repository.Page{Limit: page.Limit, Offset: page.Offset()})
	if err != nil {
		return nil, 0, err
	}
	resp, err := s.present.users(ctx, viewer, users)
	if err != nil {
		return nil, 0, err
	}
	return resp, count, nil
}

func (s *userService) SetPassword(ctx context.Context, user *models.User, req SetPasswordRequest) error {
	if user == nil {
		return ErrForbidden
	}
	if err := auth.CheckPassword(user.PasswordHash, req.CurrentPassword); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return NewValidationError("current_password", "Invalid password.")
		}
		return err
	}
	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}
	logging.Ctx(ctx).Info().Uint("user_id", user.ID).Msg("Password changed")
	return nil
}
