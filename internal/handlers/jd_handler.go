package handlers

import (
	"net/http"

	"talentswipe_backend/internal/middleware"
	"talentswipe_backend/internal/services"
	"talentswipe_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JDHandler struct {
	*BaseHandler
	jdService services.JDService
}

func NewJDHandler(base *BaseHandler, jdService services.JDService) *JDHandler {
	return &JDHandler{
		BaseHandler: base,
		jdService:   jdService,
	}
}

func (h *JDHandler) RegisterRoutes(r *gin.RouterGroup) {
	jd := r.Group("/jd")
	jd.Use(middleware.AuthMiddleware())
	{
		jd.POST("/generate", h.Generate)
		// Original path kept so existing clients keep working.
		jd.POST("/generate_jd", h.Generate)
	}
}

// Generate godoc
// @Summary Generate a job description from structured role details
// @Tags job-descriptions
// @Accept json
// @Produce json
// @Param request body dto.GenerateJDRequest true "Role details"
// @Success 200 {object} dto.GenerateJDResponse
// @Router /jd/generate [post]
func (h *JDHandler) Generate(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.GenerateJDRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.jdService.GenerateJD(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
