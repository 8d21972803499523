package handlers

import (
	"net/http"

	"talentswipe_backend/internal/middleware"
	"talentswipe_backend/internal/services/dto"
	"talentswipe_backend/internal/training"
	"talentswipe_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// TrainingHandler serves the static training catalog and the two pure
// computations on top of it. There is no service layer underneath:
// nothing here touches storage.
type TrainingHandler struct {
	*BaseHandler
}

func NewTrainingHandler(base *BaseHandler) *TrainingHandler {
	return &TrainingHandler{BaseHandler: base}
}

func (h *TrainingHandler) RegisterRoutes(r *gin.RouterGroup) {
	t := r.Group("/training")
	t.Use(middleware.AuthMiddleware())
	{
		t.GET("/modules", h.GetModules)
		t.GET("/modules/:moduleId", h.GetModule)
		t.GET("/modules/:moduleId/scenarios/:scenarioId", h.GetScenario)
		t.POST("/modules/:moduleId/progress", h.GetProgress)
		t.POST("/scenarios/:scenarioId/answer", h.SubmitAnswer)
	}
}

func (h *TrainingHandler) GetModules(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"modules": training.GetModules()})
}

func (h *TrainingHandler) GetModule(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	module, err := training.GetModuleByID(c.Param("moduleId"))
	if err != nil {
		h.handleTrainingError(c, err)
		return
	}

	c.JSON(http.StatusOK, module)
}

func (h *TrainingHandler) GetScenario(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	scenario, err := training.GetScenarioByID(c.Param("moduleId"), c.Param("scenarioId"))
	if err != nil {
		h.handleTrainingError(c, err)
		return
	}

	c.JSON(http.StatusOK, scenario)
}

// GetProgress computes completion for one module from the scenario ids
// the client has finished. Progress is session-local: nothing is stored.
func (h *TrainingHandler) GetProgress(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.ModuleProgressRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	moduleID := c.Param("moduleId")
	progress, err := training.CalculateModuleProgress(moduleID, req.CompletedScenarioIDs)
	if err != nil {
		h.handleTrainingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ModuleProgressResponse{
		ModuleID: moduleID,
		Progress: progress,
	})
}

func (h *TrainingHandler) SubmitAnswer(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.SubmitAnswerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := training.EvaluateAnswer(req.ModuleID, c.Param("scenarioId"), *req.SelectedOption, req.Confidence)
	if err != nil {
		h.handleTrainingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *TrainingHandler) handleTrainingError(c *gin.Context, err error) {
	switch err {
	case training.ErrModuleNotFound, training.ErrScenarioNotFound:
		h.HandleServiceError(c, apperrors.ErrNotFound(err))
	case training.ErrInvalidOption:
		h.HandleServiceError(c, apperrors.NewBadRequestError(err.Error()))
	default:
		h.HandleServiceError(c, err)
	}
}
