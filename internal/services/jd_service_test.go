package services

import (
	"context"
	"testing"

	"talentswipe_backend/internal/services/dto"
	"talentswipe_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJDReturnsText(t *testing.T) {
	svc := NewJDService(&fakeGenerator{reply: "# Senior Backend Engineer\n\nAbout the Role..."})

	resp, err := svc.GenerateJD(context.Background(), &dto.GenerateJDRequest{Title: "Senior Backend Engineer"})
	require.NoError(t, err)
	assert.Contains(t, resp.JobDescription, "Senior Backend Engineer")
}

func TestGenerateJDEmptyCompletionIsUpstreamError(t *testing.T) {
	svc := NewJDService(&fakeGenerator{reply: "   \n"})

	_, err := svc.GenerateJD(context.Background(), &dto.GenerateJDRequest{Title: "Engineer"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.HTTPCode)
}

func TestGenerateJDProviderFailure(t *testing.T) {
	svc := NewJDService(&fakeGenerator{failWhen: func(string) bool { return true }})

	_, err := svc.GenerateJD(context.Background(), &dto.GenerateJDRequest{Title: "Engineer"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeExternalServiceError, appErr.Code)
}

func TestJDPromptCarriesProvidedDetailsOnly(t *testing.T) {
	prompt := buildJDPrompt(&dto.GenerateJDRequest{
		Title:          "Platform Engineer",
		RequiredSkills: []string{"Go", "Postgres"},
		WorkType:       "remote",
	})

	assert.Contains(t, prompt, "Platform Engineer")
	assert.Contains(t, prompt, "Go; Postgres")
	assert.Contains(t, prompt, "remote")
	assert.NotContains(t, prompt, "Salary range")
	assert.NotContains(t, prompt, "Perks")
}
