package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"talentswipe_backend/internal/models"
	"talentswipe_backend/internal/services/dto"
	"talentswipe_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func mustJSON(t *testing.T, v interface{}) datatypes.JSON {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return datatypes.JSON(data)
}

func testRecruiter() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Name:      "Alex Kim",
		Email:     "alex@acme.io",
		Company:   "Acme",
	}
}

func testCandidate(id, name, email string) *models.Candidate {
	return &models.Candidate{
		BaseModel: models.BaseModel{ID: id},
		Name:      name,
		Email:     email,
		Title:     "Backend Engineer",
		Company:   "Globex",
	}
}

func TestGenerateOutreachDraftsOnePerCandidate(t *testing.T) {
	userRepo := newFakeUserRepo(testRecruiter())
	candidateRepo := newFakeCandidateRepo(
		testCandidate("c-1", "Dana", "dana@example.com"),
		testCandidate("c-2", "Yerlan", "yerlan@example.com"),
	)
	gen := &fakeGenerator{reply: "Hi, I came across your profile..."}

	svc := NewOutreachService(userRepo, candidateRepo, newFakeGeneratedRepo(), gen, &fakeEmailProvider{})

	messages, err := svc.GenerateOutreach(context.Background(), &dto.GenerateOutreachRequest{
		UserID:       "user-1",
		CandidateIDs: []string{"c-1", "c-2"},
	})
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, 2, gen.calls)

	for _, msg := range messages {
		assert.NotEmpty(t, msg.CandidateID)
		assert.NotEmpty(t, msg.Email)
		assert.Equal(t, "Hi, I came across your profile...", msg.Message)
	}
}

func TestGenerateOutreachIsAllOrNothing(t *testing.T) {
	userRepo := newFakeUserRepo(testRecruiter())
	candidateRepo := newFakeCandidateRepo(
		testCandidate("c-1", "Dana", "dana@example.com"),
		testCandidate("c-2", "Yerlan", "yerlan@example.com"),
	)
	gen := &fakeGenerator{
		reply: "ok",
		failWhen: func(prompt string) bool {
			return strings.Contains(prompt, "Yerlan")
		},
	}

	svc := NewOutreachService(userRepo, candidateRepo, newFakeGeneratedRepo(), gen, &fakeEmailProvider{})

	messages, err := svc.GenerateOutreach(context.Background(), &dto.GenerateOutreachRequest{
		UserID:       "user-1",
		CandidateIDs: []string{"c-1", "c-2"},
	})
	require.Error(t, err)
	assert.Nil(t, messages)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeExternalServiceError, appErr.Code)
}

func TestGenerateOutreachFallsBackToStoredSnapshots(t *testing.T) {
	userRepo := newFakeUserRepo(testRecruiter())
	generatedRepo := newFakeGeneratedRepo()
	snapshot := testCandidate("c-9", "Mira", "mira@example.com")
	_, err := generatedRepo.Upsert(&models.GeneratedCandidate{
		UserID:        "user-1",
		CandidateID:   "c-9",
		CandidateData: mustJSON(t, snapshot),
		SourceType:    models.SourceTypeAIGenerated,
		Status:        models.GeneratedStatusActive,
	})
	require.NoError(t, err)

	gen := &fakeGenerator{reply: "hello"}
	svc := NewOutreachService(userRepo, newFakeCandidateRepo(), generatedRepo, gen, &fakeEmailProvider{})

	messages, err := svc.GenerateOutreach(context.Background(), &dto.GenerateOutreachRequest{
		UserID:       "user-1",
		CandidateIDs: []string{"c-9"},
	})
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "mira@example.com", messages[0].Email)
}

func TestGenerateOutreachUnknownUser(t *testing.T) {
	svc := NewOutreachService(newFakeUserRepo(), newFakeCandidateRepo(), newFakeGeneratedRepo(), &fakeGenerator{}, &fakeEmailProvider{})

	_, err := svc.GenerateOutreach(context.Background(), &dto.GenerateOutreachRequest{
		UserID:       "ghost",
		CandidateIDs: []string{"c-1"},
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestBuildOutreachPromptDegradesOnUnreadableSkills(t *testing.T) {
	candidate := testCandidate("c-1", "Dana", "dana@example.com")
	candidate.Skills = datatypes.JSON(`{"not":"a list"}`)

	prompt := buildOutreachPrompt(testRecruiter(), candidate)
	assert.Contains(t, prompt, "Dana")
	assert.NotContains(t, prompt, "Skills:")
}

func TestSendOutreachAllSucceed(t *testing.T) {
	provider := &fakeEmailProvider{}
	svc := NewOutreachService(newFakeUserRepo(testRecruiter()), newFakeCandidateRepo(), newFakeGeneratedRepo(), &fakeGenerator{}, provider)

	results, allOK, err := svc.SendOutreachEmails(context.Background(), &dto.SendOutreachRequest{
		UserID: "user-1",
		Messages: []dto.CandidateMessage{
			{CandidateID: "c-1", Name: "Dana", Email: "dana@example.com", Message: "hi"},
			{CandidateID: "c-2", Name: "Yerlan", Email: "yerlan@example.com", Message: "hi"},
		},
	})
	require.NoError(t, err)
	assert.True(t, allOK)
	require.Len(t, results, 2)
	for _, res := range results {
		assert.True(t, res.Success)
		assert.Empty(t, res.Error)
	}
	assert.Len(t, provider.sent, 2)
	assert.Contains(t, provider.sent[0].subject, "Acme")
}

func TestSendOutreachPartialFailure(t *testing.T) {
	provider := &fakeEmailProvider{failFor: map[string]bool{"yerlan@example.com": true}}
	svc := NewOutreachService(newFakeUserRepo(testRecruiter()), newFakeCandidateRepo(), newFakeGeneratedRepo(), &fakeGenerator{}, provider)

	results, allOK, err := svc.SendOutreachEmails(context.Background(), &dto.SendOutreachRequest{
		UserID: "user-1",
		Messages: []dto.CandidateMessage{
			{CandidateID: "c-1", Email: "dana@example.com", Message: "hi"},
			{CandidateID: "c-2", Email: "yerlan@example.com", Message: "hi"},
			{CandidateID: "c-3", Email: "", Message: "hi"},
		},
	})
	require.NoError(t, err)
	assert.False(t, allOK)
	require.Len(t, results, 3)

	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.NotEmpty(t, results[1].Error)
	assert.False(t, results[2].Success)
	assert.NotEmpty(t, results[2].Error)
}

func TestSendOutreachUnknownUserFailsWholeBatch(t *testing.T) {
	svc := NewOutreachService(newFakeUserRepo(), newFakeCandidateRepo(), newFakeGeneratedRepo(), &fakeGenerator{}, &fakeEmailProvider{})

	results, _, err := svc.SendOutreachEmails(context.Background(), &dto.SendOutreachRequest{
		UserID: "ghost",
		Messages: []dto.CandidateMessage{
			{CandidateID: "c-1", Email: "dana@example.com", Message: "hi"},
		},
	})
	require.Error(t, err)
	assert.Nil(t, results)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.HTTPCode)
}
