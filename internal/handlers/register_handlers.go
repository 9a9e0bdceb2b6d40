package handlers

import (
	"time"

	"github.com/SscSPs/ledger_statements/cmd/docs"
	portssvc "github.com/SscSPs/ledger_statements/internal/core/ports/services"
	"github.com/SscSPs/ledger_statements/internal/middleware"
	"github.com/SscSPs/ledger_statements/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// tracker may be nil when product analytics are disabled.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	tracker middleware.EventTracker,
) error {
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/health", getHealth)

	if err := setupAPIV1Routes(r, cfg, services, tracker); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.FrontendBaseURL == "" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = []string{cfg.FrontendBaseURL}
	}
	return c
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	tracker middleware.EventTracker,
) error {
	reportLimiter, err := middleware.NewReportLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	company := v1.Group("/companies/:company_id")
	RegisterReportingRoutes(company, services.Reporting,
		middleware.RateLimit(reportLimiter),
		middleware.PosthogMiddleware(tracker),
	)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
