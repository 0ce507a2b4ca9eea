package app

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	config "github.com/anon-d/redirector/internal/config/flag"
	"github.com/anon-d/redirector/internal/handler"
	"github.com/anon-d/redirector/internal/logger"
	"github.com/anon-d/redirector/internal/middleware"
)

type App struct {
	server          *http.Server
	router          *gin.Engine
	redirectHandler *handler.RedirectHandler
	path            string
}

func New(cfg *config.ServerConfig) (*App, error) {

	if err := cfg.Validate(); err != nil {
		return &App{}, err
	}

	logger, err := logger.New(cfg.Env)
	if err != nil {
		return &App{}, err
	}

	redirectHandler := handler.NewRedirectHandler(cfg.TargetURL, logger)

	// init Gin and http
	if cfg.Env == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Location"},
		AllowCredentials: false,
	}))

	// Security headers
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		c.Next()
	})

	// middleware
	router.Use(middleware.GlobalMiddleware(logger)...)

	router.HandleMethodNotAllowed = true

	httpServer := &http.Server{
		Addr:    cfg.AddrServer,
		Handler: router,
	}

	return &App{
		server:          httpServer,
		router:          router,
		redirectHandler: redirectHandler,
		path:            cfg.Path,
	}, nil
}

func (a *App) SetupRoutes() {
	maintenance := a.router.Group("/maintenance")
	{
		maintenance.GET("/health", a.redirectHandler.HealthCheck)
	}

	a.router.GET(a.path, a.redirectHandler.Redirect)
	a.router.NoMethod(a.redirectHandler.NotAllowed)
	a.router.NoRoute(a.redirectHandler.NotFound)
}

func (a *App) Run() error {
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
