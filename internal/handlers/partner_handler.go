package handlers

import (
	"github.com/gin-gonic/gin"

	"healthreach_backend/internal/auth"
	"healthreach_backend/internal/middleware"
	"healthreach_backend/internal/services"
	"healthreach_backend/internal/services/dto"
)

type PartnerHandler struct {
	*BaseHandler
	partnerService services.PartnerService
}

func NewPartnerHandler(base *BaseHandler, partnerService services.PartnerService) *PartnerHandler {
	return &PartnerHandler{
		BaseHandler:    base,
		partnerService: partnerService,
	}
}

func (h *PartnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	partners := rg.Group("/partners")
	partners.Use(middleware.AuthMiddleware())
	{
		partners.GET("", h.List)
	}

	curation := rg.Group("/partners")
	curation.Use(middleware.AuthMiddleware())
	curation.Use(middleware.RequireRole(auth.RoleCurator))
	{
		curation.POST("", h.Create)
	}
}

func (h *PartnerHandler) List(c *gin.Context) {
	partners, err := h.partnerService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, partners)
}

func (h *PartnerHandler) Create(c *gin.Context) {
	var req dto.CreatePartnerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	partner, err := h.partnerService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, partner)
}
