package handlers

import (
	"github.com/gin-gonic/gin"

	"healthreach_backend/internal/auth"
	"healthreach_backend/internal/middleware"
	"healthreach_backend/internal/services"
	"healthreach_backend/internal/services/dto"
)

type SchoolHandler struct {
	*BaseHandler
	schoolService services.SchoolService
}

func NewSchoolHandler(base *BaseHandler, schoolService services.SchoolService) *SchoolHandler {
	return &SchoolHandler{
		BaseHandler:   base,
		schoolService: schoolService,
	}
}

func (h *SchoolHandler) RegisterRoutes(rg *gin.RouterGroup) {
	schools := rg.Group("/schools")
	schools.Use(middleware.AuthMiddleware())
	{
		schools.GET("", h.List)
		schools.GET("/:id", h.Get)
		schools.GET("/:id/reach", h.Reach)
		schools.GET("/:id/partners", h.Partners)
	}

	curation := rg.Group("/schools")
	curation.Use(middleware.AuthMiddleware())
	curation.Use(middleware.RequireRole(auth.RoleCurator))
	{
		curation.POST("", h.Create)
		curation.PUT("/:id/disable", h.Disable)
	}
}

func (h *SchoolHandler) List(c *gin.Context) {
	schools, err := h.schoolService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, schools)
}

func (h *SchoolHandler) Get(c *gin.Context) {
	school, err := h.schoolService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, school)
}

func (h *SchoolHandler) Create(c *gin.Context) {
	var req dto.CreateSchoolRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	school, err := h.schoolService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, school)
}

func (h *SchoolHandler) Disable(c *gin.Context) {
	school, err := h.schoolService.Disable(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OKWithMessage(c, school, "School disabled")
}

func (h *SchoolHandler) Reach(c *gin.Context) {
	reach, err := h.schoolService.Reach(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, reach)
}

func (h *SchoolHandler) Partners(c *gin.Context) {
	partners, err := h.schoolService.Partners(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, partners)
}
