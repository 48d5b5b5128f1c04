package handlers

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/SscSPs/household_ledger/cmd/docs"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/SscSPs/household_ledger/internal/platform/filestore"
	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	avatars *filestore.LocalStore,
	posthog *utils.PosthogClientWrapper,
) error {
	if err := registerValidators(); err != nil {
		return err
	}
	r.Use(corsMiddleware(cfg.CORSAllowedOrigins))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	r.Static(filestore.PublicPrefix, avatars.Dir())

	authLimiter, err := middleware.NewIPLimiter(cfg.AuthRateLimit)
	if err != nil {
		return fmt.Errorf("configure auth rate limit: %w", err)
	}

	public := r.Group("/api")
	registerAuthRoutes(public, middleware.RateLimit(authLimiter), services.Account, services.Token)

	setupAPIRoutes(r, cfg, services, avatars, posthog)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes configures the authenticated /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	avatars *filestore.LocalStore,
	posthog *utils.PosthogClientWrapper,
) {
	api := r.Group("/api",
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		middleware.PosthogMiddleware(posthog),
	)

	registerUserRoutes(api, services, avatars, cfg.MaxAvatarBytes)
	registerExpenseRoutes(api, services.Ledger)
	registerBudgetRoutes(api, services.Budget)
	registerAdminRoutes(api, services.Admin)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	if len(origins) == 0 || slices.Contains(origins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return cors.New(corsCfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
