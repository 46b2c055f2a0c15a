package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/taxdesk/practice-api/internal/api/handler"
	"github.com/taxdesk/practice-api/internal/api/middleware"
	"github.com/taxdesk/practice-api/internal/core/service"
	"github.com/taxdesk/practice-api/internal/infrastructure/db/memory"
	"github.com/taxdesk/practice-api/internal/infrastructure/files"
	"github.com/taxdesk/practice-api/internal/vault"

	_ "github.com/taxdesk/practice-api/docs"
)

const tokenTTL = 7 * 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
// The store is the one constructed in main; nothing here reaches for ambient
// state.
func NewRouter(store *memory.Store, v *vault.Vault, uploads *files.Store, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("practice"))

	// --- Dependencies ---
	userRepo := memory.NewUserRepository(store)
	clientRepo := memory.NewClientRepository(store)
	taskRepo := memory.NewTaskRepository(store)

	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL, log)
	clientService := service.NewClientService(clientRepo, v, log)
	taskService := service.NewTaskService(taskRepo, clientRepo, log)
	statsService := service.NewStatsService(clientRepo, taskRepo)

	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	taskHandler := handler.NewTaskHandler(taskService)
	statsHandler := handler.NewStatsHandler(statsService)
	uploadHandler := handler.NewUploadHandler(uploads, log)
	healthHandler := handler.NewHealthHandler()

	// --- Public routes ---
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/register", authHandler.Register)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads", uploads.Dir())

	// --- Protected routes ---
	api := e.Group("/api", middleware.Auth(jwtSecret))

	api.GET("/clients", clientHandler.List)
	api.POST("/clients", clientHandler.Create)
	api.GET("/clients/:id", clientHandler.Get)
	api.PUT("/clients/:id", clientHandler.Update)
	api.DELETE("/clients/:id", clientHandler.Delete)

	api.GET("/tasks", taskHandler.List)
	api.GET("/tasks/client/:clientId", taskHandler.ListByClient)
	api.POST("/tasks", taskHandler.Create)
	api.PUT("/tasks/:id", taskHandler.Update)
	api.DELETE("/tasks/:id", taskHandler.Delete)

	api.GET("/stats", statsHandler.Get)
	api.POST("/upload", uploadHandler.Upload)

	return e
}
