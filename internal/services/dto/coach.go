package dto

// CoachTurn is one prior exchange in the interview-simulation dialogue.
type CoachTurn struct {
	Role    string `json:"role" validate:"required,oneof=user coach"`
	Content string `json:"content" validate:"required,max=5000"`
}

type CoachRequest struct {
	ScenarioID string      `json:"scenario_id" validate:"max=100"`
	History    []CoachTurn `json:"history" validate:"max=50,dive"`
	Message    string      `json:"message" binding:"required" validate:"required,min=1,max=5000"`
}

// CoachReply is the single, explicit response contract for the coaching
// LLM. The service validates the model's output against this shape at
// the boundary; anything else is an upstream error.
type CoachReply struct {
	Reply string   `json:"reply"`
	Tone  string   `json:"tone"`
	Tips  []string `json:"tips"`
}
