package http

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")

	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(SecurityHeadersMiddleware())

	healthController := NewHealthController(cfg.Content, cfg.Version)
	router.GET("/health", healthController.Status)

	contentController := NewContentController(cfg.Content, cfg.SiteURL, logger)
	router.GET("/llms.txt", contentController.LLMsText)
	router.GET("/jsonld/:lang", contentController.JSONLD)

	return router
}
