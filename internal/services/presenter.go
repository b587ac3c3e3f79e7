package services

import (
	"context"

	"foodgram/internal/models"
	"foodgram/internal/repository"
	"foodgram/internal/storage"
)

// presenter turns models into responses, resolving the viewer-relative
// flags for a whole page with one query per flag.
type presenter struct {
	favorites     repository.FavoriteRepository
	cart          repository.ShoppingCartRepository
	subscriptions repository.SubscriptionRepository
	images        storage.ImageStore
}

func viewerID(viewer *models.User) uint {
	if viewer == nil {
		return 0
	}
	return viewer.ID
}

func (p *presenter) imageURL(key string) string {
	if p.images == nil {
		return key
	}
	return p.images.URL(key)
}

func userResponse(u *models.User, subscribed bool) UserResponse {
	return UserResponse{
		Email:        u.Email,
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: subscribed,
	}
}

func (p *presenter) users(ctx context.Context, viewer *models.User, users []models.User) ([]UserResponse, error) {
	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	subscribed, err := p.subscriptions.AuthorIDsFor(ctx, viewerID(viewer), ids)
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userResponse(&users[i], subscribed[users[i].ID]))
	}
	return out, nil
}

func (p *presenter) user(ctx context.Context, viewer *models.User, u *models.User) (*UserResponse, error) {
	resp, err := p.users(ctx, viewer, []models.User{*u})
	if err != nil {
		return nil, err
	}
	return &resp[0], nil
}

func (p *presenter) recipes(ctx context.Context, viewer *models.User, recipes []models.Recipe) ([]RecipeResponse, error) {
	vid := viewerID(viewer)
	recipeIDs := make([]uint, 0, len(recipes))
	authorIDs := make([]uint, 0, len(recipes))
	for _, r := range recipes {
		recipeIDs = append(recipeIDs, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}

	favorited, err := p.favorites.RecipeIDsFor(ctx, vid, recipeIDs)
	if err != nil {
		return nil, err
	}
	inCart, err := p.cart.RecipeIDsFor(ctx, vid, recipeIDs)
	if err != nil {
		return nil, err
	}
	subscribed, err := p.subscriptions.AuthorIDsFor(ctx, vid, authorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		tags := r.Tags
		if tags == nil {
			tags = []models.Tag{}
		}
		ingredients := make([]RecipeIngredientResponse, 0, len(r.Ingredients))
		for _, ri := range r.Ingredients {
			ingredients = append(ingredients, RecipeIngredientResponse{
				ID:              ri.IngredientID,
				Name:            ri.Ingredient.Name,
				MeasurementUnit: ri.Ingredient.MeasurementUnit,
				Amount:          ri.Amount,
			})
		}
		out = append(out, RecipeResponse{
			ID:               r.ID,
			Tags:             tags,
			Author:           userResponse(&r.Author, subscribed[r.AuthorID]),
			Ingredients:      ingredients,
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			Name:             r.Name,
			Image:            p.imageURL(r.Image),
			Text:             r.Text,
			CookingTime:      r.CookingTime,
		})
	}
	return out, nil
}

func (p *presenter) recipe(ctx context.Context, viewer *models.User, r *models.Recipe) (*RecipeResponse, error) {
	resp, err := p.recipes(ctx, viewer, []models.Recipe{*r})
	if err != nil {
		return nil, err
	}
	return &resp[0], nil
}

func (p *presenter) short(r *models.Recipe) RecipeShortResponse {
	return RecipeShortResponse{
		ID:          r.ID,
		Name:        r.Name,
		Image:       p.imageURL(r.Image),
		CookingTime: r.CookingTime,
	}
}
