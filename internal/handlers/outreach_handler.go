package handlers

import (
	"net/http"

	"talentswipe_backend/internal/middleware"
	"talentswipe_backend/internal/services"
	"talentswipe_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OutreachHandler struct {
	*BaseHandler
	outreachService services.OutreachService
}

func NewOutreachHandler(base *BaseHandler, outreachService services.OutreachService) *OutreachHandler {
	return &OutreachHandler{
		BaseHandler:     base,
		outreachService: outreachService,
	}
}

func (h *OutreachHandler) RegisterRoutes(r *gin.RouterGroup) {
	outreach := r.Group("/outreach")
	outreach.Use(middleware.AuthMiddleware())
	{
		outreach.POST("/generate", h.Generate)
		outreach.POST("/send", h.Send)
		// Original paths kept so existing clients keep working.
		outreach.POST("/generate-outreach", h.Generate)
		outreach.POST("/send-outreach-emails", h.Send)
	}
}

// Generate godoc
// @Summary Draft personalized outreach messages for a set of candidates
// @Tags outreach
// @Accept json
// @Produce json
// @Param request body dto.GenerateOutreachRequest true "Candidate ids"
// @Success 200 {object} map[string][]dto.CandidateMessage
// @Router /outreach/generate [post]
func (h *OutreachHandler) Generate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.GenerateOutreachRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	req.UserID = userID

	messages, err := h.outreachService.GenerateOutreach(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// Send emails every drafted message. Responds 200 when every send
// succeeded and 207 when only part of the batch went out; per-candidate
// results are returned either way.
func (h *OutreachHandler) Send(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendOutreachRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	req.UserID = userID

	results, allOK, err := h.outreachService.SendOutreachEmails(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if !allOK {
		status = http.StatusMultiStatus
	}
	c.JSON(status, gin.H{"results": results})
}
