package handlers

import (
	"net/http"

	"talentswipe_backend/internal/middleware"
	"talentswipe_backend/internal/services"
	"talentswipe_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PipelineHandler struct {
	*BaseHandler
	pipelineService services.PipelineService
}

func NewPipelineHandler(base *BaseHandler, pipelineService services.PipelineService) *PipelineHandler {
	return &PipelineHandler{
		BaseHandler:     base,
		pipelineService: pipelineService,
	}
}

func (h *PipelineHandler) RegisterRoutes(r *gin.RouterGroup) {
	pipeline := r.Group("/pipeline")
	pipeline.Use(middleware.AuthMiddleware())
	{
		pipeline.POST("", h.Enter)
		pipeline.GET("", h.GetForUser)
		pipeline.GET("/:id", h.GetByID)
		pipeline.POST("/:id/advance", h.Advance)
		pipeline.POST("/:id/reject", h.Reject)

		pipeline.PUT("/:id/offer", h.SetOfferDetails)
		pipeline.POST("/:id/offer/send", h.SendOffer)
		pipeline.POST("/:id/offer/response", h.RespondToOffer)
	}
}

// Enter godoc
// @Summary Enter a candidate into the interview pipeline
// @Tags pipeline
// @Accept json
// @Produce json
// @Param request body dto.EnterPipelineRequest true "Pipeline entry"
// @Success 201 {object} models.PipelineCandidate
// @Router /pipeline [post]
func (h *PipelineHandler) Enter(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.EnterPipelineRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	req.UserID = userID

	candidate, err := h.pipelineService.Enter(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, candidate)
}

func (h *PipelineHandler) GetForUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	candidates, err := h.pipelineService.GetForUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

func (h *PipelineHandler) GetByID(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	candidate, err := h.pipelineService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// Advance moves the candidate to the next stage. The target stage is
// computed server-side; the body carries only optional feedback.
func (h *PipelineHandler) Advance(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	req := h.bindTransition(c)
	if req == nil {
		return
	}

	candidate, err := h.pipelineService.Advance(c.Param("id"), req.Feedback)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

func (h *PipelineHandler) Reject(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	req := h.bindTransition(c)
	if req == nil {
		return
	}

	candidate, err := h.pipelineService.Reject(c.Param("id"), req.Feedback)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

func (h *PipelineHandler) SetOfferDetails(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.OfferDetailsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	candidate, err := h.pipelineService.SetOfferDetails(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

func (h *PipelineHandler) SendOffer(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	candidate, err := h.pipelineService.SendOffer(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

func (h *PipelineHandler) RespondToOffer(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.OfferResponseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	candidate, err := h.pipelineService.RespondToOffer(c.Param("id"), *req.Accepted)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// bindTransition tolerates an empty body: feedback is optional on both
// advance and reject.
func (h *PipelineHandler) bindTransition(c *gin.Context) *dto.TransitionRequest {
	var req dto.TransitionRequest
	if c.Request.ContentLength == 0 {
		return &req
	}
	if !h.BindAndValidate_JSON(c, &req) {
		return nil
	}
	return &req
}
