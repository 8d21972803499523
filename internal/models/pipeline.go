package models

import (
	"time"
)

// PipelineCandidate tracks a candidate through the interview pipeline.
// Stage transitions are validated server-side; clients request "advance"
// or "reject", never a target stage.
type PipelineCandidate struct {
	BaseModel
	UserID        string         `gorm:"not null;index" json:"user_id"`
	CandidateID   string         `gorm:"not null;index" json:"candidate_id"`
	CandidateName string         `json:"candidate_name"`
	Stage         PipelineStage  `gorm:"type:varchar(30);not null;default:'first_interview'" json:"stage"`
	Status        PipelineStatus `gorm:"type:varchar(30);not null;default:'scheduled'" json:"status"`
	Score         *float64       `json:"score,omitempty"`
	Feedback      string         `gorm:"type:text" json:"feedback"`
	Notes         string         `gorm:"type:text" json:"notes"`

	// Offer sub-flow
	OfferSalary       string     `json:"offer_salary"`
	OfferPosition     string     `json:"offer_position"`
	OfferStartDate    string     `json:"offer_start_date"`
	OfferDeadline     string     `json:"offer_deadline"`
	OfferSent         bool       `gorm:"default:false" json:"offer_sent"`
	OfferSentDate     *time.Time `json:"offer_sent_date,omitempty"`
	OfferAccepted     *bool      `json:"offer_accepted,omitempty"`
	OfferResponseDate *time.Time `json:"offer_response_date,omitempty"`
}

// stageTransitions is the forward-only transition table. Each stage has a
// single successor; rejected and hired have none.
var stageTransitions = map[PipelineStage]PipelineStage{
	StageFirstInterview: StageTechnicalRound,
	StageTechnicalRound: StageFinalInterview,
	StageFinalInterview: StageOfferStage,
	StageOfferStage:     StageHired,
}

// NextStage returns the successor of the given stage, or false when the
// stage is terminal or unknown.
func NextStage(stage PipelineStage) (PipelineStage, bool) {
	next, ok := stageTransitions[stage]
	return next, ok
}

// TerminalStage reports whether no transition can leave the stage.
func TerminalStage(stage PipelineStage) bool {
	return stage == StageHired || stage == StageRejected
}
