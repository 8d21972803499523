package handlers

import (
	"net/http"

	"talentswipe_backend/internal/middleware"
	"talentswipe_backend/internal/services"
	"talentswipe_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	*BaseHandler
	interactionService services.InteractionService
}

func NewInteractionHandler(base *BaseHandler, interactionService services.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		BaseHandler:        base,
		interactionService: interactionService,
	}
}

func (h *InteractionHandler) RegisterRoutes(r *gin.RouterGroup) {
	interactions := r.Group("/candidate-interactions")
	interactions.Use(middleware.AuthMiddleware())
	{
		interactions.POST("", h.RecordInteraction)
		interactions.GET("", h.GetUserInteractions)
		interactions.GET("/candidate/:candidateId", h.GetCandidateInteractions)
	}
}

// RecordInteraction godoc
// @Summary Record a view or swipe on a candidate
// @Tags interactions
// @Accept json
// @Produce json
// @Param request body dto.RecordInteractionRequest true "Interaction"
// @Success 201 {object} models.CandidateInteraction
// @Router /candidate-interactions [post]
func (h *InteractionHandler) RecordInteraction(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RecordInteractionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	req.UserID = userID

	interaction, err := h.interactionService.RecordInteraction(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, interaction)
}

func (h *InteractionHandler) GetUserInteractions(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	interactions, err := h.interactionService.GetUserInteractions(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"interactions": interactions})
}

func (h *InteractionHandler) GetCandidateInteractions(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	stats, err := h.interactionService.GetCandidateInteractions(c.Param("candidateId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
