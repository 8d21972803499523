package dto

type EnterPipelineRequest struct {
	// UserID is set by the handler from the authenticated identity.
	UserID        string   `json:"-"`
	CandidateID   string   `json:"candidate_id" binding:"required" validate:"required"`
	CandidateName string   `json:"candidate_name" validate:"max=200"`
	Score         *float64 `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
	Notes         string   `json:"notes" validate:"max=5000"`
}

// TransitionRequest carries the recruiter's feedback attached to the
// candidate at the moment of an accept or reject transition.
type TransitionRequest struct {
	Feedback string `json:"feedback" validate:"max=5000"`
}

type OfferDetailsRequest struct {
	Salary    string `json:"salary" validate:"max=100"`
	Position  string `json:"position" validate:"max=200"`
	StartDate string `json:"start_date" validate:"max=50"`
	Deadline  string `json:"deadline" validate:"max=50"`
}

type OfferResponseRequest struct {
	Accepted *bool `json:"accepted" binding:"required" validate:"required"`
}
