package dto

import (
	"encoding/json"
)

type StoreGeneratedCandidateRequest struct {
	// UserID is set by the handler from the authenticated identity.
	UserID        string          `json:"-"`
	CandidateID   string          `json:"candidate_id" binding:"required" validate:"required"`
	CandidateData json.RawMessage `json:"candidate_data" binding:"required" validate:"required"`
	SourceType    string          `json:"source_type" validate:"omitempty,oneof=AI_GENERATED SEARCH_RESULT MANUAL"`
}

type UpdateGeneratedStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,oneof=ACTIVE ARCHIVED CONTACTED REJECTED"`
}

type UpdateGeneratedDataRequest struct {
	CandidateData json.RawMessage `json:"candidate_data" binding:"required" validate:"required"`
}
