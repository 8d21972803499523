package dto

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type UserResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	Company            string `json:"company,omitempty"`
	RoleTitle          string `json:"role_title,omitempty"`
	HiringFocus        string `json:"hiring_focus,omitempty"`
	TeamSize           int    `json:"team_size,omitempty"`
	OnboardingComplete bool   `json:"onboarding_complete"`
}

type OnboardingRequest struct {
	Company     string `json:"company" validate:"required,min=1,max=200"`
	RoleTitle   string `json:"role_title" validate:"required,min=1,max=200"`
	HiringFocus string `json:"hiring_focus" validate:"max=500"`
	TeamSize    int    `json:"team_size" validate:"min=0,max=100000"`
}
