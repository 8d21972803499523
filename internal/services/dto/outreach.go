package dto

type GenerateOutreachRequest struct {
	// UserID is set by the handler from the authenticated identity.
	UserID       string   `json:"-"`
	CandidateIDs []string `json:"candidate_ids" binding:"required" validate:"required,min=1,max=50"`
}

// CandidateMessage is one drafted outreach message.
type CandidateMessage struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Message     string `json:"message"`
}

type SendOutreachRequest struct {
	// UserID is set by the handler from the authenticated identity.
	UserID   string             `json:"-"`
	Messages []CandidateMessage `json:"messages" binding:"required" validate:"required,min=1,max=50"`
}

// SendResult reports the per-candidate outcome of a batch send. The
// results slice always has one entry per input message.
type SendResult struct {
	CandidateID string `json:"candidate_id"`
	Email       string `json:"email"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
}
