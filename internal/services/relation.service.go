package services

import (
	"context"
	"errors"

	"foodgram/internal/models"
	"foodgram/internal/repository"
	"foodgram/internal/storage"
)

// RelationService manages a user's favorites and shopping cart.
type RelationService interface {
	AddFavorite(ctx context.Context, user *models.User, recipeID uint) (*RecipeShortResponse, error)
	RemoveFavorite(ctx context.Context, user *models.User, recipeID uint) error
	AddToCart(ctx context.Context, user *models.User, recipeID uint) (*RecipeShortResponse, error)
	RemoveFromCart(ctx context.Context, user *models.User, recipeID uint) error
}

type recipeLinks interface {
	Add(ctx context.Context, userID, recipeID uint) error
	Remove(ctx context.Context, userID, recipeID uint) error
}

type relationService struct {
	recipes   repository.RecipeRepository
	favorites repository.FavoriteRepository
	cart      repository.ShoppingCartRepository
	present   *presenter
}

func NewRelationService(recipes repository.RecipeRepository, favorites repository.FavoriteRepository, cart repository.ShoppingCartRepository, images storage.ImageStore) RelationService {
	return &relationService{
		recipes:   recipes,
		favorites: favorites,
		cart:      cart,
		present:   &presenter{images: images},
	}
}

func (s *relationService) add(ctx context.Context, links recipeLinks, user *models.User, recipeID uint, duplicate string) (*RecipeShortResponse, error) {
	if user == nil {
		return nil, ErrForbidden
	}
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := links.Add(ctx, user.ID, recipe.ID); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, NewValidationError("errors", duplicate)
		}
		return nil, err
	}
	resp := s.present.short(recipe)
	return &resp, nil
}

func (s *relationService) remove(ctx context.Context, links recipeLinks, user *models.User, recipeID uint) error {
	if user == nil {
		return ErrForbidden
	}
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		return err
	}
	return links.Remove(ctx, user.ID, recipeID)
}

func (s *relationService) AddFavorite(ctx context.Context, user *models.User, recipeID uint) (*RecipeShortResponse, error) {
	return s.add(ctx, s.favorites, user, recipeID, "Recipe is already in favorites.")
}

func (s *relationService) RemoveFavorite(ctx context.Context, user *models.User, recipeID uint) error {
	return s.remove(ctx, s.favorites, user, recipeID)
}

func (s *relationService) AddToCart(ctx context.Context, user *models.User, recipeID uint) (*RecipeShortResponse, error) {
	return s.add(ctx, s.cart, user, recipeID, "Recipe is already in the shopping cart.")
}

func (s *relationService) RemoveFromCart(ctx context.Context, user *models.User, recipeID uint) error {
	return s.remove(ctx, s.cart, user, recipeID)
}
