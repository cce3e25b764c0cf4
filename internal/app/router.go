package app

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/retodia/retodia-backend/internal/http/handlers"
	httpmw "github.com/retodia/retodia-backend/internal/http/middleware"
	"github.com/retodia/retodia-backend/internal/observability"
	"github.com/retodia/retodia-backend/internal/platform/envutil"
	"github.com/retodia/retodia-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, h Handlers, mw Middleware) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(observability.ServiceName))
	router.Use(httpmw.RequestLog(log))

	origins := strings.Split(envutil.Str("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173"), ",")
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/register", h.Auth.Register)
		api.POST("/login", h.Auth.Login)
		api.GET("/welcome/active", h.Welcome.GetActive)
	}

	protected := api.Group("/")
	protected.Use(mw.Auth.RequireAuth())
	{
		protected.POST("/refresh", h.Auth.Refresh)
		protected.POST("/logout", h.Auth.Logout)
		protected.GET("/user", h.User.GetMe)

		protected.GET("/fractal/state", h.Fractal.GetState)
		protected.POST("/fractal/turn", h.Fractal.Turn)
		protected.POST("/fractal/reset", h.Fractal.Reset)
		protected.GET("/fractal/history", h.Fractal.History)

		protected.POST("/challenge/turn", h.Challenge.Turn)
	}

	admin := protected.Group("/admin")
	admin.Use(mw.Auth.RequireAdmin())
	{
		admin.GET("/welcome", h.Welcome.List)
		admin.POST("/welcome", h.Welcome.Upsert)
		admin.POST("/welcome/:id/activate", h.Welcome.Activate)
		admin.DELETE("/welcome/:id", h.Welcome.Delete)
	}

	return router
}
