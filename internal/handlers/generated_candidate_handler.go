package handlers

import (
	"net/http"

	"talentswipe_backend/internal/middleware"
	"talentswipe_backend/internal/services"
	"talentswipe_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GeneratedCandidateHandler struct {
	*BaseHandler
	generatedService services.GeneratedCandidateService
}

func NewGeneratedCandidateHandler(base *BaseHandler, generatedService services.GeneratedCandidateService) *GeneratedCandidateHandler {
	return &GeneratedCandidateHandler{
		BaseHandler:      base,
		generatedService: generatedService,
	}
}

func (h *GeneratedCandidateHandler) RegisterRoutes(r *gin.RouterGroup) {
	generated := r.Group("/generated-candidates")
	generated.Use(middleware.AuthMiddleware())
	{
		generated.POST("", h.Store)
		generated.GET("", h.GetForUser)
		generated.PATCH("/:id/status", h.UpdateStatus)
		generated.PATCH("/:id", h.UpdateData)
	}
}

// Store godoc
// @Summary Store a candidate snapshot for the current user
// @Tags generated-candidates
// @Accept json
// @Produce json
// @Param request body dto.StoreGeneratedCandidateRequest true "Candidate snapshot"
// @Success 201 {object} models.GeneratedCandidate
// @Router /generated-candidates [post]
func (h *GeneratedCandidateHandler) Store(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.StoreGeneratedCandidateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	req.UserID = userID

	candidate, err := h.generatedService.Store(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, candidate)
}

// GetForUser lists the user's stored candidates. ?status= filters by
// status, defaults to ACTIVE; ?status=all returns everything.
func (h *GeneratedCandidateHandler) GetForUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	candidates, err := h.generatedService.GetForUser(userID, c.Query("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

func (h *GeneratedCandidateHandler) UpdateStatus(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.UpdateGeneratedStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	candidate, err := h.generatedService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

func (h *GeneratedCandidateHandler) UpdateData(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.UpdateGeneratedDataRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	candidate, err := h.generatedService.UpdateData(c.Param("id"), req.CandidateData)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}
