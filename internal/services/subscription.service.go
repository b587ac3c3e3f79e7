package services

import (
	"context"
	"errors"
	"strconv"

	"foodgram/internal/logging"
	"foodgram/internal/models"
	"foodgram/internal/pagination"
	"foodgram/internal/repository"
	"foodgram/internal/storage"
)

const RecipesLimitParam = "recipes_limit"

type SubscriptionService interface {
	// Subscribe makes user follow authorID. recipesLimit caps the embedded
	// recipe list; a negative value means no cap.
	Subscribe(ctx context.Context, user *models.User, authorID uint, recipesLimit int) (*SubscriptionResponse, error)
	Unsubscribe(ctx context.Context, user *models.User, authorID uint) error
	List(ctx context.Context, user *models.User, page pagination.Params, recipesLimit int) ([]SubscriptionResponse, int64, error)
}

// ParseRecipesLimit reads the recipes_limit query value. Empty means no cap.
func ParseRecipesLimit(raw string) (int, error) {
	if raw == "" {
		return -1, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, NewValidationError(RecipesLimitParam, "A non-negative integer is required.")
	}
	return limit, nil
}

type subscriptionService struct {
	users         repository.UserRepository
	recipes       repository.RecipeRepository
	subscriptions repository.SubscriptionRepository
	present       *presenter
}

func NewSubscriptionService(users repository.UserRepository, recipes repository.RecipeRepository, subscriptions repository.SubscriptionRepository, images storage.ImageStore) SubscriptionService {
	return &subscriptionService{
		users:         users,
		recipes:       recipes,
		subscriptions: subscriptions,
		present:       &presenter{subscriptions: subscriptions, images: images},
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, user *models.User, authorID uint, recipesLimit int) (*SubscriptionResponse, error) {
	if user == nil {
		return nil, ErrForbidden
	}
	author, err := s.users.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if err := s.subscriptions.Add(ctx, user.ID, author.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrSelfSubscription):
			return nil, NewValidationError("errors", "You cannot subscribe to yourself.")
		case errors.Is(err, repository.ErrAlreadyExists):
			return nil, NewValidationError("errors", "You are already subscribed to this author.")
		default:
			return nil, err
		}
	}
	logging.Ctx(ctx).Info().Uint("user_id", user.ID).Uint("author_id", author.ID).Msg("Subscribed to author")

	resp, err := s.build(ctx, user, []models.User{*author}, recipesLimit)
	if err != nil {
		return nil, err
	}
	return &resp[0], nil
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, user *models.User, authorID uint) error {
	if user == nil {
		return ErrForbidden
	}
	if _, err := s.users.GetUserByID(ctx, authorID); err != nil {
		return err
	}
	return s.subscriptions.Remove(ctx, user.ID, authorID)
}

func (s *subscriptionService) List(ctx context.Context, user *models.User, page pagination.Params, recipesLimit int) ([]SubscriptionResponse, int64, error) {
	if user == nil {
		return nil, 0, ErrForbidden
	}
	authors, count, err := s.subscriptions.ListAuthors(ctx, user.ID, repository.Page{Limit: page.Limit, Offset: page.Offset()})
	if err != nil {
		return nil, 0, err
	}
	resp, err := s.build(ctx, user, authors, recipesLimit)
	if err != nil {
		return nil, 0, err
	}
	return resp, count, nil
}

func (s *subscriptionService) build(ctx context.Context, viewer *models.User, authors []models.User, recipesLimit int) ([]SubscriptionResponse, error) {
	users, err := s.present.users(ctx, viewer, authors)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}
	counts, err := s.recipes.CountByAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]SubscriptionResponse, 0, len(authors))
	for i, a := range authors {
		var recipes []models.Recipe
		if recipesLimit != 0 {
			if recipes, err = s.recipes.ListByAuthor(ctx, a.ID, recipesLimit); err != nil {
				return nil, err
			}
		}
		short := make([]RecipeShortResponse, 0, len(recipes))
		for j := range recipes {
			short = append(short, s.present.short(&recipes[j]))
		}
		out = append(out, SubscriptionResponse{
			UserResponse: users[i],
			Recipes:      short,
			RecipesCount: counts[a.ID],
		})
	}
	return out, nil
}
