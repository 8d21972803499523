package models

// CandidateInteraction is the audit trail of recruiter attention. At most
// one row exists per (user, candidate, type); repeating the same action
// refreshes created_at instead of inserting a duplicate.
type CandidateInteraction struct {
	BaseModel
	UserID          string          `gorm:"not null;index;uniqueIndex:idx_user_candidate_type" json:"user_id"`
	CandidateID     string          `gorm:"not null;index;uniqueIndex:idx_user_candidate_type" json:"candidate_id"`
	InteractionType InteractionType `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_candidate_type" json:"interaction_type"`
}
