package services

import "foodgram/internal/models"

type UserResponse struct {
	Email        string `json:"email" example:"vpupkin@yandex.ru"`
	ID           uint   `json:"id" example:"1"`
	Username     string `json:"username" example:"vasya.pupkin"`
	FirstName    string `json:"first_name" example:"Vasya"`
	LastName     string `json:"last_name" example:"Pupkin"`
	IsSubscribed bool   `json:"is_subscribed" example:"false"`
}

// UserCreatedResponse is returned by registration; it has no
// is_subscribed flag.
type UserCreatedResponse struct {
	Email     string `json:"email"`
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RecipeIngredientResponse struct {
	ID              uint   `json:"id" example:"1123"`
	Name            string `json:"name" example:"Potato"`
	MeasurementUnit string `json:"measurement_unit" example:"g"`
	Amount          int    `json:"amount" example:"10"`
}

type RecipeResponse struct {
	ID               uint                       `json:"id" example:"1"`
	Tags             []models.Tag               `json:"tags"`
	Author           UserResponse               `json:"author"`
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name" example:"Borscht"`
	Image            string                     `json:"image" example:"http://foodgram.example.org/media/recipes/images/image.jpeg"`
	Text             string                     `json:"text"`
	CookingTime      int                        `json:"cooking_time" example:"30"`
}

type RecipeShortResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

type SubscriptionResponse struct {
	UserResponse
	Recipes      []RecipeShortResponse `json:"recipes"`
	RecipesCount int64                 `json:"recipes_count"`
}

type RecipeIngredientInput struct {
	ID     uint `json:"id" binding:"required"`
	Amount int  `json:"amount" binding:"gte=1"`
}

type RecipeWriteRequest struct {
	Ingredients []RecipeIngredientInput `json:"ingredients" binding:"required,min=1,unique=ID,dive"`
	Tags        []uint                  `json:"tags" binding:"required,min=1,unique,dive,required"`
	// Image is a base64 data URI, e.g. "data:image/png;base64,iVBOR...".
	// Required on create only, which the service checks.
	Image       string `json:"image"`
	Name        string `json:"name" binding:"required,notblank,max=200"`
	Text        string `json:"text" binding:"required,notblank"`
	CookingTime int    `json:"cooking_time" binding:"gte=1"`
}

// RecipeQuery holds the list filters as the client sent them.
type RecipeQuery struct {
	Author           uint
	Tags             []string
	IsFavorited      bool
	IsInShoppingCart bool
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=254"`
	Username  string `json:"username" binding:"required,max=150,username"`
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AuthToken string `json:"auth_token"`
}

type SetPasswordRequest struct {
	NewPassword     string `json:"new_password" binding:"required,min=8,max=128"`
	CurrentPassword string `json:"current_password" binding:"required"`
}
