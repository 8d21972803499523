package dto

import (
	"encoding/json"
)

type RecordInteractionRequest struct {
	// UserID is set by the handler from the authenticated identity, never
	// taken from the request body.
	UserID          string `json:"-"`
	CandidateID     string `json:"candidate_id" binding:"required" validate:"required"`
	InteractionType string `json:"interaction_type" binding:"required" validate:"required,interaction_type"`

	// Optional candidate snapshot. When present on a SWIPE_RIGHT, the
	// candidate is also stored in the generated-candidate store.
	Candidate json.RawMessage `json:"candidate,omitempty"`
	// Source of the snapshot when Candidate is present.
	SourceType string `json:"source_type,omitempty" validate:"omitempty,oneof=AI_GENERATED SEARCH_RESULT MANUAL"`
}

type CandidateInteractionStats struct {
	CandidateID  string           `json:"candidate_id"`
	Counts       map[string]int64 `json:"counts"`
	Interactions interface{}      `json:"interactions"`
}
