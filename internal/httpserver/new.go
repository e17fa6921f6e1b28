package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/assistant"
	tgDelivery "hr-assistant/internal/assistant/delivery/telegram"
	"hr-assistant/internal/comparison"
	"hr-assistant/internal/contextmgr"
	"hr-assistant/internal/middleware"
	"hr-assistant/internal/modelregistry"
	"hr-assistant/internal/rag"
	"hr-assistant/internal/router"
	"hr-assistant/internal/strategy"
	"hr-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Core
	contexts contextmgr.UseCase
	models   modelregistry.UseCase
	router   router.Router

	// Applications
	rag         rag.UseCase
	assistant   assistant.UseCase
	comparisons comparison.UseCase
	strategies  strategy.UseCase

	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New(). Nil use cases are skipped
// when routes are registered; contexts, models and router are required.
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	Contexts contextmgr.UseCase
	Models   modelregistry.UseCase
	Router   router.Router

	RAG         rag.UseCase
	Assistant   assistant.UseCase
	Comparisons comparison.UseCase
	Strategies  strategy.UseCase

	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		contexts:        cfg.Contexts,
		models:          cfg.Models,
		router:          cfg.Router,
		rag:             cfg.RAG,
		assistant:       cfg.Assistant,
		comparisons:     cfg.Comparisons,
		strategies:      cfg.Strategies,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.contexts == nil {
		return errors.New("context manager is required")
	}
	if srv.models == nil {
		return errors.New("model registry is required")
	}
	if srv.router == nil {
		return errors.New("router is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
