package dto

type GenerateJDRequest struct {
	Title            string   `json:"title" binding:"required" validate:"required,min=2,max=200"`
	Department       string   `json:"department" validate:"max=200"`
	Overview         string   `json:"overview" validate:"max=5000"`
	Responsibilities []string `json:"responsibilities" validate:"max=50"`
	RequiredSkills   []string `json:"required_skills" validate:"max=50"`
	PreferredSkills  []string `json:"preferred_skills" validate:"max=50"`
	WorkType         string   `json:"work_type" validate:"omitempty,oneof=remote hybrid onsite"`
	Location         string   `json:"location" validate:"max=200"`
	EmploymentType   string   `json:"employment_type" validate:"omitempty,oneof=full-time part-time contract internship"`
	Seniority        string   `json:"seniority" validate:"max=100"`
	SalaryRange      string   `json:"salary_range" validate:"max=100"`
	Perks            []string `json:"perks" validate:"max=50"`
	Tone             string   `json:"tone" validate:"max=100"`
}

type GenerateJDResponse struct {
	JobDescription string `json:"job_description"`
}
