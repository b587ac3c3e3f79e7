package routes

import (
	"foodgram/internal/authz"
	"foodgram/internal/controllers"
	"foodgram/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth        *controllers.AuthController
	Users       *controllers.UserController
	Tags        *controllers.TagController
	Ingredients *controllers.IngredientController
	Recipes     *controllers.RecipeController
}

type RouterConfig struct {
	// AllowOrigins lists the frontend origins allowed by CORS.
	AllowOrigins []string
	// MediaURL and MediaRoot serve uploaded images when they live on local
	// disk. Leave MediaRoot empty when images are served elsewhere.
	MediaURL  string
	MediaRoot string
}

// NewRouter builds the engine with the shared middleware chain and the /api
// routes. Operational endpoints are added by the caller.
func NewRouter(cfg RouterConfig, h Handlers, authn *middleware.Authenticator, enforcer *authz.Enforcer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(), middleware.Metrics())

	if len(cfg.AllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.AllowOrigins,
			AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders: []string{"Content-Disposition", middleware.RequestIDHeader},
		}))
	}

	if cfg.MediaRoot != "" && cfg.MediaURL != "" {
		router.Static(cfg.MediaURL, cfg.MediaRoot)
	}

	api := router.Group("/api")
	api.Use(authn.OptionalAuth())

	RegisterAuthRoutes(api, h.Auth, authn, enforcer)
	RegisterUserRoutes(api, h.Users, enforcer)
	RegisterTagRoutes(api, h.Tags, enforcer)
	RegisterIngredientRoutes(api, h.Ingredients, enforcer)
	RegisterRecipeRoutes(api, h.Recipes, enforcer)
	RegisterSwaggerRoutes(router)

	return router
}
