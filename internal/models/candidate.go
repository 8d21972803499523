package models

import (
	"gorm.io/datatypes"
)

// Candidate is a sourced profile from the external matching service.
// Rows are read-mostly; the platform never edits them, it only snapshots
// them into GeneratedCandidate at selection time.
type Candidate struct {
	BaseModel
	Name              string         `gorm:"not null" json:"name"`
	Email             string         `gorm:"index" json:"email"`
	Title             string         `json:"title"`
	Company           string         `json:"company"`
	Location          string         `json:"location"`
	YearsOfExperience int            `json:"years_of_experience"`
	Skills            datatypes.JSON `json:"skills"`       // ordered list of strings
	Summary           string         `gorm:"type:text" json:"summary"`
	SocialLinks       datatypes.JSON `json:"social_links"` // {linkedin, github, portfolio}
	Photo             string         `json:"photo"`
}

// SocialLinks is the decoded shape of Candidate.SocialLinks.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}
