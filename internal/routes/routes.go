package routes

import (
	"talentswipe_backend/internal/handlers"
	"talentswipe_backend/internal/logger"
	"talentswipe_backend/internal/middleware"
	"talentswipe_backend/internal/proxy"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route: the versioned API, the
// health endpoint and the candidate-matching proxy mount.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	matchingProxy *proxy.MatchingProxy,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.InteractionHandler.RegisterRoutes(api)
		appHandlers.GeneratedCandidateHandler.RegisterRoutes(api)
		appHandlers.PipelineHandler.RegisterRoutes(api)
		appHandlers.OutreachHandler.RegisterRoutes(api)
		appHandlers.JDHandler.RegisterRoutes(api)
		appHandlers.CoachHandler.RegisterRoutes(api)
		appHandlers.TrainingHandler.RegisterRoutes(api)
	}

	appHandlers.HealthHandler.RegisterRoutes(ginRouter)

	// Sourcing and search stay in the external matching service; every
	// method and subpath under /candidates is forwarded as-is.
	candidates := ginRouter.Group("/candidates")
	candidates.Use(middleware.AuthMiddleware())
	{
		candidates.Any("/*proxyPath", matchingProxy.Handler())
	}
	logger.Info("Matching proxy mounted at /candidates")
}
