package handlers

import (
	"net/http"

	"talentswipe_backend/internal/middleware"
	"talentswipe_backend/internal/services"
	"talentswipe_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CoachHandler struct {
	*BaseHandler
	coachService services.CoachService
}

func NewCoachHandler(base *BaseHandler, coachService services.CoachService) *CoachHandler {
	return &CoachHandler{
		BaseHandler:  base,
		coachService: coachService,
	}
}

func (h *CoachHandler) RegisterRoutes(r *gin.RouterGroup) {
	coach := r.Group("/coach")
	coach.Use(middleware.AuthMiddleware())
	{
		coach.POST("/respond", h.Chat)
	}
}

// Chat godoc
// @Summary Exchange one turn with the interview coaching assistant
// @Tags coach
// @Accept json
// @Produce json
// @Param request body dto.CoachRequest true "Message and dialogue history"
// @Success 200 {object} dto.CoachReply
// @Router /coach/respond [post]
func (h *CoachHandler) Chat(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.CoachRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	reply, err := h.coachService.Reply(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}
