package handlers

import (
	"github.com/gin-gonic/gin"

	"healthreach_backend/internal/auth"
	"healthreach_backend/internal/middleware"
	"healthreach_backend/internal/services"
	"healthreach_backend/internal/services/dto"
)

type SpecialtyHandler struct {
	*BaseHandler
	specialtyService services.SpecialtyService
}

func NewSpecialtyHandler(base *BaseHandler, specialtyService services.SpecialtyService) *SpecialtyHandler {
	return &SpecialtyHandler{
		BaseHandler:      base,
		specialtyService: specialtyService,
	}
}

func (h *SpecialtyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	specialties := rg.Group("/specialties")
	specialties.Use(middleware.AuthMiddleware())
	{
		specialties.GET("", h.List)
	}

	curation := rg.Group("/specialties")
	curation.Use(middleware.AuthMiddleware())
	curation.Use(middleware.RequireRole(auth.RoleCurator))
	{
		curation.POST("", h.Create)
	}
}

func (h *SpecialtyHandler) List(c *gin.Context) {
	specialties, err := h.specialtyService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, specialties)
}

func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req dto.CreateSpecialtyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	specialty, err := h.specialtyService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, specialty)
}
