package models

type UserStatus string
type UserRole string
type InteractionType string
type SourceType string
type GeneratedCandidateStatus string
type PipelineStage string
type PipelineStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"

	InteractionView       InteractionType = "VIEW"
	InteractionSwipeLeft  InteractionType = "SWIPE_LEFT"
	InteractionSwipeRight InteractionType = "SWIPE_RIGHT"

	SourceTypeAIGenerated  SourceType = "AI_GENERATED"
	SourceTypeSearchResult SourceType = "SEARCH_RESULT"
	SourceTypeManual       SourceType = "MANUAL"

	GeneratedStatusActive    GeneratedCandidateStatus = "ACTIVE"
	GeneratedStatusArchived  GeneratedCandidateStatus = "ARCHIVED"
	GeneratedStatusContacted GeneratedCandidateStatus = "CONTACTED"
	GeneratedStatusRejected  GeneratedCandidateStatus = "REJECTED"

	StageFirstInterview PipelineStage = "first_interview"
	StageTechnicalRound PipelineStage = "technical_round"
	StageFinalInterview PipelineStage = "final_interview"
	StageOfferStage     PipelineStage = "offer_stage"
	StageHired          PipelineStage = "hired"
	StageRejected       PipelineStage = "rejected"

	PipelineStatusScheduled     PipelineStatus = "scheduled"
	PipelineStatusProgressed    PipelineStatus = "progressed"
	PipelineStatusHired         PipelineStatus = "hired"
	PipelineStatusRejected      PipelineStatus = "rejected"
	PipelineStatusOfferDeclined PipelineStatus = "offer_declined"
)

// ValidInteractionType reports whether t is one of the three recruiter
// actions the swipe UI produces.
func ValidInteractionType(t InteractionType) bool {
	switch t {
	case InteractionView, InteractionSwipeLeft, InteractionSwipeRight:
		return true
	}
	return false
}

// ValidGeneratedStatus reports whether s is a known lifecycle status.
func ValidGeneratedStatus(s GeneratedCandidateStatus) bool {
	switch s {
	case GeneratedStatusActive, GeneratedStatusArchived, GeneratedStatusContacted, GeneratedStatusRejected:
		return true
	}
	return false
}
