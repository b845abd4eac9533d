package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/weather-companion/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
		corsMiddleware(cfg.HTTP.CORSOrigins),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	api.Use(rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger))
	{
		api.POST("/sessions", handler.StartSession)
		api.GET("/sessions/:id", handler.GetSession)
		api.POST("/sessions/:id/messages", handler.SendMessage)
		api.POST("/sessions/:id/fun-facts", handler.FunFacts)
		api.GET("/backgrounds", handler.Background)
	}

	if dir := cfg.HTTP.StaticDir; dir != "" {
		files := http.FileServer(http.Dir(dir))
		router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				abortWithError(c, NewHTTPError(http.StatusNotFound, "not_found", "route not found", nil))
				return
			}
			files.ServeHTTP(c.Writer, c.Request)
		})
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
