package services

import (
	"context"
	"fmt"
	"strings"

	"foodgram/internal/authz"
	"foodgram/internal/logging"
	"foodgram/internal/models"
	"foodgram/internal/pagination"
	"foodgram/internal/repository"
	"foodgram/internal/storage"
	"foodgram/internal/validation"
)

const recipeImagePrefix = "recipes/images"

type RecipeService interface {
	Create(ctx context.Context, author *models.User, req RecipeWriteRequest) (*RecipeResponse, error)
	Update(ctx context.Context, actor *models.User, id uint, req RecipeWriteRequest) (*RecipeResponse, error)
	Delete(ctx context.Context, actor *models.User, id uint) error
	Get(ctx context.Context, viewer *models.User, id uint) (*RecipeResponse, error)
	List(ctx context.Context, viewer *models.User, query RecipeQuery, page pagination.Params) ([]RecipeResponse, int64, error)
}

type recipeService struct {
	recipes     repository.RecipeRepository
	tags        repository.TagRepository
	ingredients repository.IngredientRepository
	images      storage.ImageStore
	enforcer    *authz.Enforcer
	present     *presenter
}

type RecipeServiceDeps struct {
	Recipes       repository.RecipeRepository
	Tags          repository.TagRepository
	Ingredients   repository.IngredientRepository
	Favorites     repository.FavoriteRepository
	Cart          repository.ShoppingCartRepository
	Subscriptions repository.SubscriptionRepository
	Images        storage.ImageStore
	Enforcer      *authz.Enforcer
}

func NewRecipeService(deps RecipeServiceDeps) RecipeService {
	return &recipeService{
		recipes:     deps.Recipes,
		tags:        deps.Tags,
		ingredients: deps.Ingredients,
		images:      deps.Images,
		enforcer:    deps.Enforcer,
		present: &presenter{
			favorites:     deps.Favorites,
			cart:          deps.Cart,
			subscriptions: deps.Subscriptions,
			images:        deps.Images,
		},
	}
}

// ValidateRecipeWrite checks a create or update request against its binding
// rules. It does not touch storage. Failures are *ValidationError.
func ValidateRecipeWrite(req RecipeWriteRequest, requireImage bool) error {
	fields, err := validation.Struct(req)
	if err != nil {
		return fmt.Errorf("validate recipe: %w", err)
	}
	verr := &ValidationError{Fields: fields}
	if requireImage && req.Image == "" {
		verr.Add("image", "This field is required.")
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

// resolve checks that every referenced tag and ingredient exists and
// builds the recipe links.
func (s *recipeService) resolve(ctx context.Context, req RecipeWriteRequest) ([]models.Tag, []models.RecipeIngredient, error) {
	tagIDs := req.Tags
	tags, err := s.tags.FindByIDs(ctx, tagIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(tags) != len(tagIDs) {
		found := make(map[uint]bool, len(tags))
		for _, t := range tags {
			found[t.ID] = true
		}
		for _, id := range tagIDs {
			if !found[id] {
				return nil, nil, NewValidationError("tags", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
			}
		}
	}

	ingredientIDs := make([]uint, 0, len(req.Ingredients))
	for _, in := range req.Ingredients {
		ingredientIDs = append(ingredientIDs, in.ID)
	}
	ingredients, err := s.ingredients.FindByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, nil, err
	}
	known := make(map[uint]bool, len(ingredients))
	for _, ing := range ingredients {
		known[ing.ID] = true
	}
	links := make([]models.RecipeIngredient, 0, len(req.Ingredients))
	for _, in := range req.Ingredients {
		if !known[in.ID] {
			return nil, nil, NewValidationError("ingredients", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", in.ID))
		}
		links = append(links, models.RecipeIngredient{IngredientID: in.ID, Amount: in.Amount})
	}

	// keep the order the client sent
	byID := make(map[uint]models.Tag, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}
	ordered := make([]models.Tag, 0, len(tagIDs))
	for _, id := range tagIDs {
		ordered = append(ordered, byID[id])
	}
	return ordered, links, nil
}

func (s *recipeService) saveImage(ctx context.Context, dataURI string) (string, error) {
	img, err := storage.DecodeDataURI(dataURI)
	if err != nil {
		return "", NewValidationError("image", "Upload a valid image. The file you uploaded was either not an image or a corrupted image.")
	}
	key, err := s.images.Save(ctx, recipeImagePrefix, img)
	if err != nil {
		return "", fmt.Errorf("save recipe image: %w", err)
	}
	return key, nil
}

func (s *recipeService) dropImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.images.Delete(ctx, key); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("image", key).Msg("Failed to delete recipe image")
	}
}

func (s *recipeService) Create(ctx context.Context, author *models.User, req RecipeWriteRequest) (*RecipeResponse, error) {
	if author == nil {
		return nil, ErrForbidden
	}
	if err := ValidateRecipeWrite(req, true); err != nil {
		return nil, err
	}
	tags, links, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	imageKey, err := s.saveImage(ctx, req.Image)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Name:        strings.TrimSpace(req.Name),
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       imageKey,
		AuthorID:    author.ID,
		Tags:        tags,
		Ingredients: links,
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		s.dropImage(ctx, imageKey)
		return nil, err
	}

	logging.Ctx(ctx).Info().Uint("recipe_id", recipe.ID).Uint("author_id", author.ID).Msg("Recipe created")
	return s.Get(ctx, author, recipe.ID)
}

func (s *recipeService) Update(ctx context.Context, actor *models.User, id uint, req RecipeWriteRequest) (*RecipeResponse, error) {
	existing, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.enforcer.CanModify(actor, authz.ObjRecipe, existing.AuthorID) {
		return nil, ErrForbidden
	}
	if err := ValidateRecipeWrite(req, false); err != nil {
		return nil, err
	}
	tags, links, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	imageKey := existing.Image
	if req.Image != "" {
		if imageKey, err = s.saveImage(ctx, req.Image); err != nil {
			return nil, err
		}
	}

	recipe := &models.Recipe{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       imageKey,
		AuthorID:    existing.AuthorID,
		Tags:        tags,
		Ingredients: links,
	}
	if err := s.recipes.Update(ctx, recipe); err != nil {
		if imageKey != existing.Image {
			s.dropImage(ctx, imageKey)
		}
		return nil, err
	}
	if imageKey != existing.Image {
		s.dropImage(ctx, existing.Image)
	}

	logging.Ctx(ctx).Info().Uint("recipe_id", id).Uint("actor_id", actor.ID).Msg("Recipe updated")
	return s.Get(ctx, actor, id)
}

func (s *recipeService) Delete(ctx context.Context, actor *models.User, id uint) error {
	existing, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.enforcer.CanModify(actor, authz.ObjRecipe, existing.AuthorID) {
		return ErrForbidden
	}
	if err := s.recipes.Delete(ctx, id); err != nil {
		return err
	}
	s.dropImage(ctx, existing.Image)

	logging.Ctx(ctx).Info().Uint("recipe_id", id).Uint("actor_id", actor.ID).Msg("Recipe deleted")
	return nil
}

func (s *recipeService) Get(ctx context.Context, viewer *models.User, id uint) (*RecipeResponse, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.present.recipe(ctx, viewer, recipe)
}

func (s *recipeService) List(ctx context.Context, viewer *models.User, query RecipeQuery, page pagination.Params) ([]RecipeResponse, int64, error) {
	filter := models.RecipeFilter{AuthorID: query.Author, TagSlugs: query.Tags}
	// viewer-relative filters mean nothing for anonymous requests
	if viewer != nil {
		if query.IsFavorited {
			filter.FavoritedBy = viewer.ID
		}
		if query.IsInShoppingCart {
			filter.InShoppingCartOf = viewer.ID
		}
	}

	recipes, count, err := s.recipes.List(ctx, filter, repository.Page{Limit: page.Limit, Offset: page.Offset()})
	if err != nil {
		return nil, 0, err
	}
	resp, err := s.present.recipes(ctx, viewer, recipes)
	if err != nil {
		return nil, 0, err
	}
	return resp, count, nil
}
