package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/localspot/directory-api/docs"
	"github.com/localspot/directory-api/internal/api/handler"
	"github.com/localspot/directory-api/internal/api/middleware"
	"github.com/localspot/directory-api/internal/core/ports"
	"github.com/localspot/directory-api/internal/core/service"
	mongodb "github.com/localspot/directory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/localspot/directory-api/internal/infrastructure/db/redis"
	"github.com/localspot/directory-api/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered. The logo
// store, cache backend and view-event sink are optional collaborators; the
// API degrades gracefully without them.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	logos ports.LogoStore,
	views ports.ViewEventSink,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("directory"))

	// --- Dependencies ---
	userRepo := mongodb.NewAuthRepository(db)
	businessRepo := mongodb.NewBusinessRepository(db)
	favoriteRepo := mongodb.NewFavoriteRepository(db)

	var cache ports.ListingCache
	if rdb != nil {
		cache = redisdb.NewListingCache(rdb, log)
	}

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	businessService := service.NewBusinessService(businessRepo, userRepo, favoriteRepo, logos, cache, views, log)
	favoriteService := service.NewFavoriteService(favoriteRepo, businessRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	businessHandler := handler.NewBusinessHandler(businessService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)

	authenticated := middleware.Auth(tokenService, userRepo)
	ownerOnly := middleware.BusinessOwnerOnly()
	regularOnly := middleware.RegularUserOnly()

	// --- API banner ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"success": true,
			"message": "Community Business Discovery Platform API",
			"version": "1.0.0",
		})
	})

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authenticated)

	// --- Business routes ---
	// Owner-scoped routes are registered before /:id so "my" never binds as
	// an id parameter.
	businesses := e.Group("/api/businesses")
	businesses.GET("", businessHandler.List)
	businesses.GET("/my/profile", businessHandler.GetMine, authenticated, ownerOnly)
	businesses.POST("/my/logo", businessHandler.UploadLogo, authenticated, ownerOnly)
	businesses.POST("", businessHandler.Create, authenticated, ownerOnly)
	businesses.PUT("/:id", businessHandler.Update, authenticated, ownerOnly)
	businesses.DELETE("/:id", businessHandler.Delete, authenticated, ownerOnly)
	businesses.GET("/:id", businessHandler.Get)

	// --- Favorite routes (regular users only) ---
	favorites := e.Group("/api/favorites", authenticated, regularOnly)
	favorites.GET("", favoriteHandler.List)
	favorites.POST("/:businessId", favoriteHandler.Add)
	favorites.DELETE("/:businessId", favoriteHandler.Remove)
	favorites.GET("/check/:businessId", favoriteHandler.Check)

	// --- Health probes, metrics, API docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
