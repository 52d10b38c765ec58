package routes

import (
	"github.com/gin-gonic/gin"

	"healthreach_backend/internal/handlers"
)

// RegisterRoutes registers all HTTP routes under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProviderHandler.RegisterRoutes(api)
		appHandlers.SchoolHandler.RegisterRoutes(api)
		appHandlers.PartnerHandler.RegisterRoutes(api)
		appHandlers.SpecialtyHandler.RegisterRoutes(api)
	}
}
