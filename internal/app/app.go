// Package app assembles repositories, services and handlers into the HTTP
// router served by cmd/api.
package app

import (
	"fmt"
	"net/http"

	"foodgram/internal/config"
	"foodgram/internal/domain/follow"
	"foodgram/internal/domain/ingredient"
	"foodgram/internal/domain/membership"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/shopping"
	"foodgram/internal/domain/tag"
	"foodgram/internal/domain/user"
	"foodgram/internal/middleware"
	"foodgram/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Models lists every persisted type in migration order.
func Models() []any {
	return []any{
		&user.User{},
		&tag.Tag{},
		&ingredient.Ingredient{},
		&recipe.Recipe{},
		&recipe.IngredientLink{},
		&membership.CartEntry{},
		&membership.Favorite{},
		&follow.Follow{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

type App struct {
	Router *gin.Engine
	JWT    *jwt.Service

	Users     *user.Service
	Recipes   *recipe.Service
	Cart      *membership.Service
	Favorites *membership.Service
	Follows   *follow.Service
	Shopping  *shopping.Aggregator
}

// New wires the application on top of an already migrated database.
func New(cfg *config.Config, db *gorm.DB) *App {
	jwtService := jwt.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	followRepo := follow.NewRepository(db)
	userRepo := user.NewRepository(db)
	tagRepo := tag.NewRepository(db)
	ingredientRepo := ingredient.NewRepository(db)
	recipeRepo := recipe.NewRepository(db, membership.Cart.Table, membership.Favorites.Table)
	cartRepo := membership.NewRepository(db, membership.Cart)
	favoriteRepo := membership.NewRepository(db, membership.Favorites)

	userService := user.NewService(userRepo, jwtService, followRepo)
	tagService := tag.NewService(tagRepo)
	recipeService := recipe.NewService(recipeRepo, ingredientRepo, tagRepo, userService, favoriteRepo, cartRepo)
	cartService := membership.NewService(cartRepo, recipeRepo)
	favoriteService := membership.NewService(favoriteRepo, recipeRepo)
	followService := follow.NewService(followRepo, userService, recipeRepo)
	aggregator := shopping.NewAggregator(cartRepo, recipeRepo)

	limits := cfg.Pagination
	userHandler := user.NewHandler(userService, limits.DefaultLimit, limits.MaxLimit)
	tagHandler := tag.NewHandler(tagService)
	ingredientHandler := ingredient.NewHandler(ingredientRepo)
	recipeHandler := recipe.NewHandler(recipeService, limits.DefaultLimit, limits.MaxLimit)
	membershipHandler := membership.NewHandler(cartService, favoriteService)
	followHandler := follow.NewHandler(followService, limits.DefaultLimit, limits.MaxLimit)
	shoppingHandler := shopping.NewHandler(aggregator, shopping.DefaultRenderers(cfg.Document.Title, cfg.Document.FontPath))

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(),
		middleware.AccessLog(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.JWTAuth(jwtService)
	optionalAuth := middleware.OptionalJWTAuth(jwtService)

	api := r.Group("/api")
	user.RegisterRoutes(api, userHandler, auth, optionalAuth)
	follow.RegisterRoutes(api, followHandler, auth)
	tag.RegisterRoutes(api, tagHandler, auth, middleware.AdminOnly())
	ingredient.RegisterRoutes(api, ingredientHandler)
	shopping.RegisterRoutes(api, shoppingHandler, auth)
	recipe.RegisterRoutes(api, recipeHandler, auth, optionalAuth)
	membership.RegisterRoutes(api, membershipHandler, auth)

	return &App{
		Router:    r,
		JWT:       jwtService,
		Users:     userService,
		Recipes:   recipeService,
		Cart:      cartService,
		Favorites: favoriteService,
		Follows:   followService,
		Shopping:  aggregator,
	}
}
