package models

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Name         string     `json:"name"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Onboarding profile fields
	Company            string `json:"company"`
	RoleTitle          string `json:"role_title"`
	HiringFocus        string `json:"hiring_focus"`
	TeamSize           int    `json:"team_size"`
	OnboardingComplete bool   `gorm:"default:false" json:"onboarding_complete"`
}
