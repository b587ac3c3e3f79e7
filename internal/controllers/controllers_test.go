package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodgram/internal/controllers"
	"foodgram/internal/mocks"
	"foodgram/internal/models"
	"foodgram/internal/pagination"
	"foodgram/internal/repository"
	"foodgram/internal/services"
	"foodgram/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testPager = controllers.Pager{
	Paginator: pagination.Paginator{PageSize: 2, MaxPageSize: 10},
	BaseURL:   "http://foodgram.test",
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())
	return gin.New()
}

func withUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set("user_id", user.ID)
			c.Set("user", user)
		}
		c.Next()
	}
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

type recipeMocks struct {
	recipes   *mocks.MockRecipeService
	relations *mocks.MockRelationService
	shopping  *mocks.MockShoppingListService
}

func setupRecipeRouter(t *testing.T, user *models.User) (*gin.Engine, *recipeMocks) {
	m := &recipeMocks{
		recipes:   new(mocks.MockRecipeService),
		relations: new(mocks.MockRelationService),
		shopping:  new(mocks.MockShoppingListService),
	}
	controller := controllers.NewRecipeController(m.recipes, m.relations, m.shopping, testPager)

	router := setupTestRouter(t)
	router.Use(withUser(user))
	router.GET("/api/recipes/", controller.ListRecipes)
	router.POST("/api/recipes/", controller.CreateRecipe)
	router.GET("/api/recipes/download_shopping_cart/", controller.DownloadShoppingCart)
	router.GET("/api/recipes/:id/", controller.GetRecipeByID)
	router.PATCH("/api/recipes/:id/", controller.UpdateRecipe)
	router.DELETE("/api/recipes/:id/", controller.DeleteRecipe)
	router.POST("/api/recipes/:id/favorite/", controller.AddFavorite)
	router.DELETE("/api/recipes/:id/favorite/", controller.RemoveFavorite)
	router.POST("/api/recipes/:id/shopping_cart/", controller.AddToShoppingCart)
	router.DELETE("/api/recipes/:id/shopping_cart/", controller.RemoveFromShoppingCart)
	return router, m
}

func TestListRecipes(t *testing.T) {
	viewer := &models.User{ID: 7, Username: "viewer"}

	tests := []struct {
		name           string
		path           string
		setupMocks     func(*recipeMocks)
		expectedStatus int
		check          func(*testing.T, map[string]interface{})
	}{
		{
			name: "first page with filters",
			path: "/api/recipes/?tags=lunch&tags=dinner&is_favorited=1&author=3",
			setupMocks: func(m *recipeMocks) {
				query := services.RecipeQuery{Author: 3, Tags: []string{"lunch", "dinner"}, IsFavorited: true}
				m.recipes.On("List", mock.Anything, viewer, query, pagination.Params{Page: 1, Limit: 2}).
					Return([]services.RecipeResponse{{ID: 1}, {ID: 2}}, int64(3), nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp map[string]interface{}) {
				data := resp["data"].(map[string]interface{})
				assert.EqualValues(t, 3, data["count"])
				assert.Len(t, data["results"], 2)
				assert.Contains(t, data["next"], "http://foodgram.test/api/recipes/?")
				assert.Contains(t, data["next"], "page=2")
				assert.Nil(t, data["previous"])
			},
		},
		{
			name: "page past the end",
			path: "/api/recipes/?page=3",
			setupMocks: func(m *recipeMocks) {
				m.recipes.On("List", mock.Anything, viewer, services.RecipeQuery{}, pagination.Params{Page: 3, Limit: 2}).
					Return([]services.RecipeResponse{}, int64(3), nil)
			},
			expectedStatus: http.StatusNotFound,
			check: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "Invalid page.", resp["message"])
			},
		},
		{
			name:           "malformed page",
			path:           "/api/recipes/?page=abc",
			setupMocks:     func(*recipeMocks) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed author",
			path:           "/api/recipes/?author=me",
			setupMocks:     func(*recipeMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupRecipeRouter(t, viewer)
			tt.setupMocks(m)

			w := doRequest(router, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.check != nil {
				tt.check(t, decode(t, w))
			}
			m.recipes.AssertExpectations(t)
		})
	}
}

func TestCreateRecipe(t *testing.T) {
	author := &models.User{ID: 1, Username: "author"}
	body := map[string]interface{}{
		"ingredients":  []map[string]interface{}{{"id": 1, "amount": 10}},
		"tags":         []int{1},
		"image":        "data:image/png;base64,AAAA",
		"name":         "Soup",
		"text":         "Boil",
		"cooking_time": 5,
	}
	expectedReq := services.RecipeWriteRequest{
		Ingredients: []services.RecipeIngredientInput{{ID: 1, Amount: 10}},
		Tags:        []uint{1},
		Image:       "data:image/png;base64,AAAA",
		Name:        "Soup",
		Text:        "Boil",
		CookingTime: 5,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*recipeMocks)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "created",
			body: body,
			setupMocks: func(m *recipeMocks) {
				m.recipes.On("Create", mock.Anything, author, expectedReq).
					Return(&services.RecipeResponse{ID: 5, Name: "Soup"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Recipe created successfully",
		},
		{
			name: "unknown ingredient",
			body: body,
			setupMocks: func(m *recipeMocks) {
				m.recipes.On("Create", mock.Anything, author, expectedReq).
					Return(nil, services.NewValidationError("ingredients", `Invalid pk "1" - object does not exist.`))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "duplicate ingredients rejected before the service",
			body: map[string]interface{}{
				"ingredients":  []map[string]interface{}{{"id": 1, "amount": 10}, {"id": 1, "amount": 2}},
				"tags":         []int{1},
				"name":         "Soup",
				"text":         "Boil",
				"cooking_time": 5,
			},
			setupMocks:     func(*recipeMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "zero cooking time rejected before the service",
			body: map[string]interface{}{
				"ingredients":  []map[string]interface{}{{"id": 1, "amount": 10}},
				"tags":         []int{1},
				"name":         "Soup",
				"text":         "Boil",
				"cooking_time": 0,
			},
			setupMocks:     func(*recipeMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:           "malformed body",
			body:           map[string]interface{}{"tags": "lunch"},
			setupMocks:     func(*recipeMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupRecipeRouter(t, author)
			tt.setupMocks(m)

			w := doRequest(router, http.MethodPost, "/api/recipes/", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedMsg, decode(t, w)["message"])
			m.recipes.AssertExpectations(t)
		})
	}
}

func TestRecipeDetailErrors(t *testing.T) {
	user := &models.User{ID: 2}

	t.Run("not found", func(t *testing.T) {
		router, m := setupRecipeRouter(t, user)
		m.recipes.On("Get", mock.Anything, user, uint(42)).Return(nil, repository.ErrNotFound)

		w := doRequest(router, http.MethodGet, "/api/recipes/42/", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non numeric id", func(t *testing.T) {
		router, _ := setupRecipeRouter(t, user)
		w := doRequest(router, http.MethodGet, "/api/recipes/abc/", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update by stranger", func(t *testing.T) {
		router, m := setupRecipeRouter(t, user)
		m.recipes.On("Update", mock.Anything, user, uint(3), mock.Anything).Return(nil, services.ErrForbidden)

		w := doRequest(router, http.MethodPatch, "/api/recipes/3/", map[string]interface{}{
			"ingredients":  []map[string]interface{}{{"id": 1, "amount": 1}},
			"tags":         []int{1},
			"name":         "x",
			"text":         "y",
			"cooking_time": 1,
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("check constraint on update", func(t *testing.T) {
		router, m := setupRecipeRouter(t, user)
		m.recipes.On("Update", mock.Anything, user, uint(4), mock.Anything).
			Return(nil, fmt.Errorf("update recipe: %w", repository.ErrCheckViolated))

		w := doRequest(router, http.MethodPatch, "/api/recipes/4/", map[string]interface{}{
			"ingredients":  []map[string]interface{}{{"id": 1, "amount": 1}},
			"tags":         []int{1},
			"name":         "x",
			"text":         "y",
			"cooking_time": 1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "error", decode(t, w)["status"])
	})

	t.Run("delete", func(t *testing.T) {
		router, m := setupRecipeRouter(t, user)
		m.recipes.On("Delete", mock.Anything, user, uint(3)).Return(nil)

		w := doRequest(router, http.MethodDelete, "/api/recipes/3/", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		m.recipes.AssertExpectations(t)
	})
}

func TestFavoriteAndCart(t *testing.T) {
	user := &models.User{ID: 2}

	tests := []struct {
		name           string
		method         string
		path           string
		setupMocks     func(*recipeMocks)
		expectedStatus int
	}{
		{
			name:   "add favorite",
			method: http.MethodPost,
			path:   "/api/recipes/1/favorite/",
			setupMocks: func(m *recipeMocks) {
				m.relations.On("AddFavorite", mock.Anything, user, uint(1)).
					Return(&services.RecipeShortResponse{ID: 1, Name: "Soup"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "duplicate favorite",
			method: http.MethodPost,
			path:   "/api/recipes/1/favorite/",
			setupMocks: func(m *recipeMocks) {
				m.relations.On("AddFavorite", mock.Anything, user, uint(1)).
					Return(nil, services.NewValidationError("errors", "Recipe is already in favorites."))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "remove missing favorite",
			method: http.MethodDelete,
			path:   "/api/recipes/1/favorite/",
			setupMocks: func(m *recipeMocks) {
				m.relations.On("RemoveFavorite", mock.Anything, user, uint(1)).Return(repository.ErrNotInRelation)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "add to cart of missing recipe",
			method: http.MethodPost,
			path:   "/api/recipes/9/shopping_cart/",
			setupMocks: func(m *recipeMocks) {
				m.relations.On("AddToCart", mock.Anything, user, uint(9)).Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "remove from cart",
			method: http.MethodDelete,
			path:   "/api/recipes/1/shopping_cart/",
			setupMocks: func(m *recipeMocks) {
				m.relations.On("RemoveFromCart", mock.Anything, user, uint(1)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupRecipeRouter(t, user)
			tt.setupMocks(m)

			w := doRequest(router, tt.method, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			m.relations.AssertExpectations(t)
		})
	}
}

func TestDownloadShoppingCart(t *testing.T) {
	user := &models.User{ID: 4}
	router, m := setupRecipeRouter(t, user)
	pdf := []byte("%PDF-1.3 fake")
	m.shopping.On("Export", mock.Anything, uint(4)).Return(pdf, nil)

	w := doRequest(router, http.MethodGet, "/api/recipes/download_shopping_cart/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="shopping_cart.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, pdf, w.Body.Bytes())

	anonymous, _ := setupRecipeRouter(t, nil)
	w = doRequest(anonymous, http.MethodGet, "/api/recipes/download_shopping_cart/", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func setupUserRouter(t *testing.T, user *models.User) (*gin.Engine, *mocks.MockUserService, *mocks.MockSubscriptionService) {
	users := new(mocks.MockUserService)
	subs := new(mocks.MockSubscriptionService)
	controller := controllers.NewUserController(users, subs, testPager)
	authController := controllers.NewAuthController(users)

	router := setupTestRouter(t)
	router.Use(withUser(user))
	router.POST("/api/auth/token/login/", authController.Login)
	router.GET("/api/users/", controller.ListUsers)
	router.POST("/api/users/", controller.CreateUser)
	router.GET("/api/users/me/", controller.Me)
	router.POST("/api/users/set_password/", controller.SetPassword)
	router.GET("/api/users/subscriptions/", controller.Subscriptions)
	router.GET("/api/users/:id/", controller.GetUserByID)
	router.POST("/api/users/:id/subscribe/", controller.Subscribe)
	router.DELETE("/api/users/:id/subscribe/", controller.Unsubscribe)
	return router, users, subs
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		setupMocks     func(*mocks.MockUserService)
		expectedStatus int
	}{
		{
			name: "success",
			body: map[string]interface{}{"email": "a@b.c", "password": "secret123"},
			setupMocks: func(users *mocks.MockUserService) {
				users.On("Login", mock.Anything, services.LoginRequest{Email: "a@b.c", Password: "secret123"}).
					Return(&services.TokenResponse{AuthToken: "tok"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			body: map[string]interface{}{"email": "a@b.c", "password": "nope"},
			setupMocks: func(users *mocks.MockUserService) {
				users.On("Login", mock.Anything, mock.Anything).Return(nil, services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			body:           map[string]interface{}{"email": "a@b.c"},
			setupMocks:     func(*mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, users, _ := setupUserRouter(t, nil)
			tt.setupMocks(users)

			w := doRequest(router, http.MethodPost, "/api/auth/token/login/", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				data := decode(t, w)["data"].(map[string]interface{})
				assert.Equal(t, "tok", data["auth_token"])
			}
			users.AssertExpectations(t)
		})
	}
}

func TestCreateUserValidation(t *testing.T) {
	router, users, _ := setupUserRouter(t, nil)

	w := doRequest(router, http.MethodPost, "/api/users/", map[string]interface{}{
		"email":      "not-an-email",
		"username":   "bad name!",
		"first_name": "A",
		"last_name":  "B",
		"password":   "secret-pass",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields := decode(t, w)["error"].(map[string]interface{})
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "username")
	users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestSubscriptions(t *testing.T) {
	user := &models.User{ID: 1}

	t.Run("bad recipes_limit", func(t *testing.T) {
		router, _, subs := setupUserRouter(t, user)
		w := doRequest(router, http.MethodGet, "/api/users/subscriptions/?recipes_limit=-2", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		subs.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("list with limit", func(t *testing.T) {
		router, _, subs := setupUserRouter(t, user)
		subs.On("List", mock.Anything, user, pagination.Params{Page: 1, Limit: 2}, 3).
			Return([]services.SubscriptionResponse{{UserResponse: services.UserResponse{ID: 9}}}, int64(1), nil)

		w := doRequest(router, http.MethodGet, "/api/users/subscriptions/?recipes_limit=3", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		subs.AssertExpectations(t)
	})

	t.Run("self subscription", func(t *testing.T) {
		router, _, subs := setupUserRouter(t, user)
		subs.On("Subscribe", mock.Anything, user, uint(1), -1).
			Return(nil, services.NewValidationError("errors", "You cannot subscribe to yourself."))

		w := doRequest(router, http.MethodPost, "/api/users/1/subscribe/", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w)["error"], "errors")
	})

	t.Run("unsubscribe when not subscribed", func(t *testing.T) {
		router, _, subs := setupUserRouter(t, user)
		subs.On("Unsubscribe", mock.Anything, user, uint(5)).Return(repository.ErrNotInRelation)

		w := doRequest(router, http.MethodDelete, "/api/users/5/subscribe/", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTagController(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mocks.MockTagRepository) {
		repo := new(mocks.MockTagRepository)
		controller := controllers.NewTagController(repo)
		router := setupTestRouter(t)
		router.GET("/api/tags/", controller.ListTags)
		router.POST("/api/tags/", controller.CreateTag)
		router.DELETE("/api/tags/:id/", controller.DeleteTag)
		return router, repo
	}

	t.Run("list", func(t *testing.T) {
		router, repo := setup(t)
		repo.On("FindAll", mock.Anything).Return([]models.Tag{{ID: 1, Slug: "lunch"}}, nil)

		w := doRequest(router, http.MethodGet, "/api/tags/", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode(t, w)["data"], 1)
	})

	t.Run("invalid color", func(t *testing.T) {
		router, repo := setup(t)
		w := doRequest(router, http.MethodPost, "/api/tags/", map[string]interface{}{
			"name": "Lunch", "color": "red", "slug": "lunch",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w)["error"], "color")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		router, repo := setup(t)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Tag")).Return(repository.ErrAlreadyExists)

		w := doRequest(router, http.MethodPost, "/api/tags/", map[string]interface{}{
			"name": "Lunch", "color": "#49B64E", "slug": "lunch",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete missing", func(t *testing.T) {
		router, repo := setup(t)
		repo.On("Delete", mock.Anything, uint(8)).Return(repository.ErrNotFound)

		w := doRequest(router, http.MethodDelete, "/api/tags/8/", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestIngredientController(t *testing.T) {
	repo := new(mocks.MockIngredientRepository)
	controller := controllers.NewIngredientController(repo)
	router := setupTestRouter(t)
	router.GET("/api/ingredients/", controller.ListIngredients)
	router.DELETE("/api/ingredients/:id/", controller.DeleteIngredient)

	repo.On("FindAll", mock.Anything, "sal").
		Return([]models.Ingredient{{ID: 1, Name: "salt", MeasurementUnit: "g"}}, nil)
	repo.On("Delete", mock.Anything, uint(1)).Return(repository.ErrInUse)

	w := doRequest(router, http.MethodGet, "/api/ingredients/?name=sal", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "salt", data[0].(map[string]interface{})["name"])

	w = doRequest(router, http.MethodDelete, "/api/ingredients/1/", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertExpectations(t)
}
