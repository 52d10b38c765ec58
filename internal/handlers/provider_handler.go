package handlers

import (
	"github.com/gin-gonic/gin"

	"healthreach_backend/internal/auth"
	"healthreach_backend/internal/middleware"
	"healthreach_backend/internal/services"
)

type ProviderHandler struct {
	*BaseHandler
	providerService services.ProviderService
}

func NewProviderHandler(base *BaseHandler, providerService services.ProviderService) *ProviderHandler {
	return &ProviderHandler{
		BaseHandler:     base,
		providerService: providerService,
	}
}

func (h *ProviderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	providers := rg.Group("/providers")
	providers.Use(middleware.AuthMiddleware())
	{
		providers.GET("", h.List)
		providers.GET("/:email", h.Get)
	}

	moderation := rg.Group("/providers")
	moderation.Use(middleware.AuthMiddleware())
	moderation.Use(middleware.RequireRole(auth.RoleCurator))
	{
		moderation.PUT("/:email/approve", h.Approve)
		moderation.PUT("/:email/reject", h.Reject)
	}
}

func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.providerService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, providers)
}

func (h *ProviderHandler) Get(c *gin.Context) {
	provider, err := h.providerService.Get(c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, provider)
}

func (h *ProviderHandler) Approve(c *gin.Context) {
	provider, err := h.providerService.Approve(c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKWithMessage(c, provider, "Provider approved")
}

func (h *ProviderHandler) Reject(c *gin.Context) {
	provider, err := h.providerService.Reject(c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKWithMessage(c, provider, "Provider rejected")
}
