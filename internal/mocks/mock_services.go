package mocks

import (
	"context"

	"foodgram/internal/auth"
	"foodgram/internal/models"
	"foodgram/internal/pagination"
	"foodgram/internal/services"

	"github.com/stretchr/testify/mock"
)

// Shared MockRecipeService
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Create(ctx context.Context, author *models.User, req services.RecipeWriteRequest) (*services.RecipeResponse, error) {
	args := m.Called(ctx, author, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) Update(ctx context.Context, actor *models.User, id uint, req services.RecipeWriteRequest) (*services.RecipeResponse, error) {
	args := m.Called(ctx, actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, actor *models.User, id uint) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockRecipeService) Get(ctx context.Context, viewer *models.User, id uint) (*services.RecipeResponse, error) {
	args := m.Called(ctx, viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) List(ctx context.Context, viewer *models.User, query services.RecipeQuery, page pagination.Params) ([]services.RecipeResponse, int64, error) {
	args := m.Called(ctx, viewer, query, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]services.RecipeResponse), args.Get(1).(int64), args.Error(2)
}

// Shared MockRelationService
type MockRelationService struct {
	mock.Mock
}

func (m *MockRelationService) AddFavorite(ctx context.Context, user *models.User, recipeID uint) (*services.RecipeShortResponse, error) {
	args := m.Called(ctx, user, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.RecipeShortResponse), args.Error(1)
}

func (m *MockRelationService) RemoveFavorite(ctx context.Context, user *models.User, recipeID uint) error {
	args := m.Called(ctx, user, recipeID)
	return args.Error(0)
}

func (m *MockRelationService) AddToCart(ctx context.Context, user *models.User, recipeID uint) (*services.RecipeShortResponse, error) {
	args := m.Called(ctx, user, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.RecipeShortResponse), args.Error(1)
}

func (m *MockRelationService) RemoveFromCart(ctx context.Context, user *models.User, recipeID uint) error {
	args := m.Called(ctx, user, recipeID)
	return args.Error(0)
}

// Shared MockSubscriptionService
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Subscribe(ctx context.Context, user *models.User, authorID uint, recipesLimit int) (*services.SubscriptionResponse, error) {
	args := m.Called(ctx, user, authorID, recipesLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SubscriptionResponse), args.Error(1)
}

func (m *MockSubscriptionService) Unsubscribe(ctx context.Context, user *models.User, authorID uint) error {
	args := m.Called(ctx, user, authorID)
	return args.Error(0)
}

func (m *MockSubscriptionService) List(ctx context.Context, user *models.User, page pagination.Params, recipesLimit int) ([]services.SubscriptionResponse, int64, error) {
	args := m.Called(ctx, user, page, recipesLimit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]services.SubscriptionResponse), args.Get(1).(int64), args.Error(2)
}

// Shared MockShoppingListService
type MockShoppingListService struct {
	mock.Mock
}

func (m *MockShoppingListService) Export(ctx context.Context, userID uint) ([]byte, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Shared MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req services.RegisterRequest) (*services.UserCreatedResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.UserCreatedResponse), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req services.LoginRequest) (*services.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenResponse), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, claims *auth.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *MockUserService) Me(ctx context.Context, user *models.User) (*services.UserResponse, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.UserResponse), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, viewer *models.User, id uint) (*services.UserResponse, error) {
	args := m.Called(ctx, viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.UserResponse), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, viewer *models.User, page pagination.Params) ([]services.UserResponse, int64, error) {
	args := m.Called(ctx, viewer, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]services.UserResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserService) SetPassword(ctx context.Context, user *models.User, req services.SetPasswordRequest) error {
	args := m.Called(ctx, user, req)
	return args.Error(0)
}
