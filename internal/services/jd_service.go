package services

import (
	"context"
	"fmt"
	"strings"

	"talentswipe_backend/internal/llm"
	"talentswipe_backend/internal/services/dto"
	"talentswipe_backend/pkg/apperrors"
)

type JDService interface {
	GenerateJD(ctx context.Context, req *dto.GenerateJDRequest) (*dto.GenerateJDResponse, error)
}

type jdService struct {
	llmClient llm.Generator
}

func NewJDService(llmClient llm.Generator) JDService {
	return &jdService{llmClient: llmClient}
}

const jdSystemPrompt = `You are an expert technical recruiter who writes clear, inclusive job descriptions.
Produce a complete job description in Markdown with these sections: About the Role, Responsibilities, Required Qualifications, Preferred Qualifications, What We Offer.
Use only the details provided. Do not invent company names, salary figures, or benefits that were not given.
Return only the job description, with no commentary before or after it.`

func (s *jdService) GenerateJD(ctx context.Context, req *dto.GenerateJDRequest) (*dto.GenerateJDResponse, error) {
	text, err := s.llmClient.Generate(ctx, jdSystemPrompt, buildJDPrompt(req))
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "jd", "Job description generation failed")
	}

	jd := strings.TrimSpace(text)
	if jd == "" {
		return nil, apperrors.ErrExternalService(nil, "jd", "The model returned an empty job description")
	}

	return &dto.GenerateJDResponse{JobDescription: jd}, nil
}

func buildJDPrompt(req *dto.GenerateJDRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Job title: %s\n", req.Title)

	writeIf := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}
	writeList := func(label string, values []string) {
		if len(values) > 0 {
			fmt.Fprintf(&b, "%s: %s\n", label, strings.Join(values, "; "))
		}
	}

	writeIf("Department", req.Department)
	writeIf("Seniority", req.Seniority)
	writeIf("Work type", req.WorkType)
	writeIf("Location", req.Location)
	writeIf("Employment type", req.EmploymentType)
	writeIf("Salary range", req.SalaryRange)
	writeIf("Role overview", req.Overview)
	writeList("Responsibilities", req.Responsibilities)
	writeList("Required skills", req.RequiredSkills)
	writeList("Preferred skills", req.PreferredSkills)
	writeList("Perks", req.Perks)
	if req.Tone != "" {
		fmt.Fprintf(&b, "Desired tone: %s\n", req.Tone)
	}
	return b.String()
}
