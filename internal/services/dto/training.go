package dto

type ModuleProgressRequest struct {
	CompletedScenarioIDs []string `json:"completed_scenario_ids" validate:"max=500"`
}

type ModuleProgressResponse struct {
	ModuleID string  `json:"module_id"`
	Progress float64 `json:"progress"`
}

type SubmitAnswerRequest struct {
	ModuleID       string `json:"module_id" binding:"required" validate:"required"`
	SelectedOption *int   `json:"selected_option" binding:"required" validate:"required"`
	Confidence     int    `json:"confidence" validate:"min=0,max=5"`
}
