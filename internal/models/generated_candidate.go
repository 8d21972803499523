package models

import (
	"gorm.io/datatypes"
)

// GeneratedCandidate persists a point-in-time snapshot of a candidate the
// recruiter selected or liked. CandidateData is a copy, not a live
// reference; later edits to the source candidate do not propagate.
// (user_id, candidate_id) is unique: repeated selection refreshes the
// snapshot instead of duplicating the row.
type GeneratedCandidate struct {
	BaseModel
	UserID        string                   `gorm:"not null;index;uniqueIndex:idx_user_generated_candidate" json:"user_id"`
	CandidateID   string                   `gorm:"not null;uniqueIndex:idx_user_generated_candidate" json:"candidate_id"`
	CandidateData datatypes.JSON           `gorm:"not null" json:"candidate_data"`
	SourceType    SourceType               `gorm:"type:varchar(30);not null;default:'AI_GENERATED'" json:"source_type"`
	Status        GeneratedCandidateStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
}
