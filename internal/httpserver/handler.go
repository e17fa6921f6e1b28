package httpserver

import (
	"context"

	assistantHTTP "hr-assistant/internal/assistant/delivery/http"
	comparisonHTTP "hr-assistant/internal/comparison/delivery/http"
	contextHTTP "hr-assistant/internal/contextmgr/delivery/http"
	"hr-assistant/internal/model"
	modelHTTP "hr-assistant/internal/modelregistry/delivery/http"
	ragHTTP "hr-assistant/internal/rag/delivery/http"
	routerHTTP "hr-assistant/internal/router/delivery/http"
	strategyHTTP "hr-assistant/internal/strategy/delivery/http"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.Recovery(), srv.mw.RequestLogger())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes. Everything under /api/v1
// is rate limited per client.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1", srv.mw.RateLimit())

	contextHTTP.RegisterRoutes(api.Group("/contexts"), contextHTTP.New(srv.l, srv.contexts))
	modelHTTP.RegisterRoutes(api.Group("/models"), modelHTTP.New(srv.l, srv.models))
	routerHTTP.RegisterRoutes(api.Group("/routes"), routerHTTP.New(srv.l, srv.router, srv.contexts))

	if srv.rag != nil {
		ragHTTP.RegisterRoutes(api, ragHTTP.New(srv.l, srv.rag))
	} else {
		srv.l.Infof(ctx, "RAG not configured, skipping /rag and /documents routes")
	}

	if srv.assistant != nil {
		assistantHTTP.RegisterRoutes(api.Group("/assistant"), assistantHTTP.New(srv.l, srv.assistant))
	}

	if srv.comparisons != nil {
		comparisonHTTP.RegisterRoutes(api.Group("/comparisons"), comparisonHTTP.New(srv.l, srv.comparisons))
	}

	if srv.strategies != nil {
		strategyHTTP.RegisterRoutes(api.Group("/strategies"), strategyHTTP.New(srv.l, srv.strategies))
	}

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
