package controllers

import (
	"net/http"

	"foodgram/internal/middleware"
	"foodgram/internal/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users         services.UserService
	subscriptions services.SubscriptionService
	pager         Pager
}

func NewUserController(users services.UserService, subscriptions services.SubscriptionService, pager Pager) *UserController {
	return &UserController{users: users, subscriptions: subscriptions, pager: pager}
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{} "Users retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Invalid page"
// @Router /api/users/ [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	params, ok := uc.pager.params(c)
	if !ok {
		return
	}

	users, count, err := uc.users.List(c.Request.Context(), middleware.CurrentUser(c), params)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve users")
		return
	}
	page, err := uc.pager.page(c, params, count, users)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve users")
		return
	}

	respondSuccess(c, http.StatusOK, "Users retrieved successfully", page)
}

// CreateUser godoc
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body services.RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "User registered successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/users/ [post]
func (uc *UserController) CreateUser(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := uc.users.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create user")
		return
	}

	respondSuccess(c, http.StatusCreated, "User registered successfully", user)
}

// Me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Security TokenAuth
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Authentication credentials were not provided"
// @Router /api/users/me/ [get]
func (uc *UserController) Me(c *gin.Context) {
	user, err := uc.users.Me(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve user")
		return
	}
	respondSuccess(c, http.StatusOK, "User retrieved successfully", user)
}

// GetUserByID godoc
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /api/users/{id}/ [get]
func (uc *UserController) GetUserByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := uc.users.Get(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve user")
		return
	}

	respondSuccess(c, http.StatusOK, "User retrieved successfully", user)
}

// SetPassword godoc
// @Summary Change the current user's password
// @Tags users
// @Accept json
// @Security TokenAuth
// @Param passwords body services.SetPasswordRequest true "Current and new password"
// @Success 204 "Password changed"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/users/set_password/ [post]
func (uc *UserController) SetPassword(c *gin.Context) {
	var req services.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := uc.users.SetPassword(c.Request.Context(), middleware.CurrentUser(c), req); err != nil {
		respondServiceError(c, err, "Failed to change password")
		return
	}

	c.Status(http.StatusNoContent)
}

// Subscriptions godoc
// @Summary Authors the current user follows
// @Tags users
// @Produce json
// @Security TokenAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param recipes_limit query int false "Max recipes per author"
// @Success 200 {object} map[string]interface{} "Subscriptions retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid recipes_limit"
// @Router /api/users/subscriptions/ [get]
func (uc *UserController) Subscriptions(c *gin.Context) {
	recipesLimit, err := services.ParseRecipesLimit(c.Query(services.RecipesLimitParam))
	if err != nil {
		respondServiceError(c, err, "Invalid request data")
		return
	}
	params, ok := uc.pager.params(c)
	if !ok {
		return
	}

	subs, count, err := uc.subscriptions.List(c.Request.Context(), middleware.CurrentUser(c), params, recipesLimit)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve subscriptions")
		return
	}
	page, err := uc.pager.page(c, params, count, subs)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve subscriptions")
		return
	}

	respondSuccess(c, http.StatusOK, "Subscriptions retrieved successfully", page)
}

// Subscribe godoc
// @Summary Follow an author
// @Tags users
// @Produce json
// @Security TokenAuth
// @Param id path int true "Author ID"
// @Param recipes_limit query int false "Max recipes in the response"
// @Success 201 {object} map[string]interface{} "Subscribed successfully"
// @Failure 400 {object} map[string]interface{} "Already subscribed or self-subscription"
// @Failure 404 {object} map[string]interface{} "Author not found"
// @Router /api/users/{id}/subscribe/ [post]
func (uc *UserController) Subscribe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	recipesLimit, err := services.ParseRecipesLimit(c.Query(services.RecipesLimitParam))
	if err != nil {
		respondServiceError(c, err, "Invalid request data")
		return
	}

	sub, err := uc.subscriptions.Subscribe(c.Request.Context(), middleware.CurrentUser(c), id, recipesLimit)
	if err != nil {
		respondServiceError(c, err, "Failed to subscribe")
		return
	}

	respondSuccess(c, http.StatusCreated, "Subscribed successfully", sub)
}

// Unsubscribe godoc
// @Summary Unfollow an author
// @Tags users
// @Security TokenAuth
// @Param id path int true "Author ID"
// @Success 204 "Unsubscribed"
// @Failure 404 {object} map[string]interface{} "Not subscribed"
// @Router /api/users/{id}/subscribe/ [delete]
func (uc *UserController) Unsubscribe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := uc.subscriptions.Unsubscribe(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondServiceError(c, err, "Failed to unsubscribe")
		return
	}

	c.Status(http.StatusNoContent)
}
