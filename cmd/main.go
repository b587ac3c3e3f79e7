package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"foodgram/database"
	"foodgram/docs"
	"foodgram/internal/auth"
	"foodgram/internal/authz"
	"foodgram/internal/cache"
	"foodgram/internal/config"
	"foodgram/internal/controllers"
	"foodgram/internal/logging"
	"foodgram/internal/middleware"
	"foodgram/internal/pagination"
	"foodgram/internal/repository"
	"foodgram/internal/services"
	"foodgram/internal/storage"
	"foodgram/internal/utils"
	"foodgram/internal/validation"
	"foodgram/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server stopped")
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	gin.SetMode(cfg.Server.Mode)

	if err := validation.Register(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Foodgram API"
	docs.SwaggerInfo.Description = "Recipes, favorites, shopping cart and subscriptions."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectDatabase(cfg.DB)
	if err != nil {
		return err
	}
	if err := database.MigrateDatabase(db); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	database.MonitorDBConnections(ctx, db, cfg.DB.MaxOpenConns)

	var (
		appCache    cache.Cache
		cacheStatus routes.StatusReporter
	)
	if cfg.Redis.URL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		appCache, cacheStatus = redisClient, redisClient
		logging.Info().Msg("Using Redis cache")
	} else {
		lru, err := cache.NewLRUCache(cfg.Cache.LRUSize)
		if err != nil {
			return err
		}
		appCache = lru
		logging.Warn().Msg("REDIS_URL not set, using in-process cache")
	}

	images, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return err
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db, appCache, cfg.Cache.TTL)
	ingredientRepo := repository.NewIngredientRepository(db, appCache, cfg.Cache.TTL)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewShoppingCartRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	// Services
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireHours)*time.Hour)
	revoked := auth.NewRevocationList(repository.NewRevokedTokenRepository(db))
	revoked.StartPurge(ctx, time.Hour)
	userService := services.NewUserService(userRepo, subscriptionRepo, tokens, revoked)
	subscriptionService := services.NewSubscriptionService(userRepo, recipeRepo, subscriptionRepo, images)
	recipeService := services.NewRecipeService(services.RecipeServiceDeps{
		Recipes:       recipeRepo,
		Tags:          tagRepo,
		Ingredients:   ingredientRepo,
		Favorites:     favoriteRepo,
		Cart:          cartRepo,
		Subscriptions: subscriptionRepo,
		Images:        images,
		Enforcer:      enforcer,
	})
	relationService := services.NewRelationService(recipeRepo, favoriteRepo, cartRepo, images)
	shoppingService := services.NewShoppingListService(cartRepo, utils.PDFOptions{FontPath: cfg.PDF.FontPath})

	// Controllers
	pager := controllers.Pager{
		Paginator: pagination.Paginator{PageSize: cfg.Pagination.PageSize, MaxPageSize: cfg.Pagination.MaxPageSize},
		BaseURL:   cfg.Server.BaseURL,
	}
	handlers := routes.Handlers{
		Auth:        controllers.NewAuthController(userService),
		Users:       controllers.NewUserController(userService, subscriptionService, pager),
		Tags:        controllers.NewTagController(tagRepo),
		Ingredients: controllers.NewIngredientController(ingredientRepo),
		Recipes:     controllers.NewRecipeController(recipeService, relationService, shoppingService, pager),
	}

	routerCfg := routes.RouterConfig{}
	if cfg.Server.FrontendURL != "" {
		routerCfg.AllowOrigins = strings.Split(cfg.Server.FrontendURL, ",")
	}
	if local, ok := images.(*storage.LocalStore); ok {
		routerCfg.MediaURL = cfg.Storage.MediaURL
		routerCfg.MediaRoot = local.Root()
	}

	authn := middleware.NewAuthenticator(tokens, revoked, userRepo)
	router := routes.NewRouter(routerCfg, handlers, authn, enforcer)
	routes.RegisterHealthRoutes(router, db, cacheStatus)

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Int("port", cfg.Server.Port).
			Str("docs", fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.Server.Port)).
			Msg("Foodgram API server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
	}

	logging.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}
