package services

import (
	"fmt"
	"testing"

	"talentswipe_backend/internal/models"
	"talentswipe_backend/internal/repositories"
	"talentswipe_backend/internal/services/dto"
	"talentswipe_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePipelineRepo struct {
	byID   map[string]*models.PipelineCandidate
	nextID int
}

func newFakePipelineRepo() *fakePipelineRepo {
	return &fakePipelineRepo{byID: map[string]*models.PipelineCandidate{}}
}

func (r *fakePipelineRepo) Create(pc *models.PipelineCandidate) error {
	r.nextID++
	pc.ID = fmt.Sprintf("pc-%d", r.nextID)
	copied := *pc
	r.byID[pc.ID] = &copied
	return nil
}

func (r *fakePipelineRepo) FindByID(id string) (*models.PipelineCandidate, error) {
	pc, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrPipelineCandidateNotFound
	}
	copied := *pc
	return &copied, nil
}

func (r *fakePipelineRepo) FindByUser(userID string) ([]models.PipelineCandidate, error) {
	var out []models.PipelineCandidate
	for _, pc := range r.byID {
		if pc.UserID == userID {
			out = append(out, *pc)
		}
	}
	return out, nil
}

func (r *fakePipelineRepo) Update(pc *models.PipelineCandidate) error {
	if _, ok := r.byID[pc.ID]; !ok {
		return repositories.ErrPipelineCandidateNotFound
	}
	copied := *pc
	r.byID[pc.ID] = &copied
	return nil
}

func enterCandidate(t *testing.T, svc PipelineService) *models.PipelineCandidate {
	t.Helper()
	pc, err := svc.Enter(&dto.EnterPipelineRequest{
		UserID:        "user-1",
		CandidateID:   "cand-1",
		CandidateName: "Dana Ivanova",
	})
	require.NoError(t, err)
	return pc
}

func TestPipelineEnterStartsAtFirstInterview(t *testing.T) {
	svc := NewPipelineService(newFakePipelineRepo())

	pc := enterCandidate(t, svc)

	assert.Equal(t, models.StageFirstInterview, pc.Stage)
	assert.Equal(t, models.PipelineStatusScheduled, pc.Status)
}

func TestPipelineAdvanceFollowsStageOrder(t *testing.T) {
	svc := NewPipelineService(newFakePipelineRepo())
	pc := enterCandidate(t, svc)

	expected := []models.PipelineStage{
		models.StageTechnicalRound,
		models.StageFinalInterview,
		models.StageOfferStage,
		models.StageHired,
	}

	for _, want := range expected {
		updated, err := svc.Advance(pc.ID, "")
		require.NoError(t, err)
		assert.Equal(t, want, updated.Stage)
	}
}

func TestPipelineAdvanceFromHiredFails(t *testing.T) {
	svc := NewPipelineService(newFakePipelineRepo())
	pc := enterCandidate(t, svc)

	for i := 0; i < 4; i++ {
		_, err := svc.Advance(pc.ID, "")
		require.NoError(t, err)
	}

	_, err := svc.Advance(pc.ID, "")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestPipelineRejectFromAnyActiveStage(t *testing.T) {
	for advances := 0; advances <= 3; advances++ {
		svc := NewPipelineService(newFakePipelineRepo())
		pc := enterCandidate(t, svc)

		for i := 0; i < advances; i++ {
			_, err := svc.Advance(pc.ID, "")
			require.NoError(t, err)
		}

		rejected, err := svc.Reject(pc.ID, "not a fit")
		require.NoError(t, err)
		assert.Equal(t, models.StageRejected, rejected.Stage)
		assert.Equal(t, models.PipelineStatusRejected, rejected.Status)
		assert.Equal(t, "not a fit", rejected.Feedback)
	}
}

func TestPipelineRejectedIsAbsorbing(t *testing.T) {
	svc := NewPipelineService(newFakePipelineRepo())
	pc := enterCandidate(t, svc)

	_, err := svc.Reject(pc.ID, "")
	require.NoError(t, err)

	_, err = svc.Advance(pc.ID, "")
	assert.Error(t, err)

	_, err = svc.Reject(pc.ID, "")
	assert.Error(t, err)
}

func TestPipelineAdvanceStoresFeedback(t *testing.T) {
	svc := NewPipelineService(newFakePipelineRepo())
	pc := enterCandidate(t, svc)

	updated, err := svc.Advance(pc.ID, "strong system design answers")
	require.NoError(t, err)
	assert.Equal(t, "strong system design answers", updated.Feedback)

	// Empty feedback on the next transition keeps the previous value.
	updated, err = svc.Advance(pc.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "strong system design answers", updated.Feedback)
}

func TestPipelineNotFound(t *testing.T) {
	svc := NewPipelineService(newFakePipelineRepo())

	_, err := svc.Advance("missing", "")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func advanceToOfferStage(t *testing.T, svc PipelineService, id string) {
	t.Helper()
	for i := 0; i < 3; i++ {
		_, err := svc.Advance(id, "")
		require.NoError(t, err)
	}
}

func TestOfferDetailsRequireOfferStage(t *testing.T) {
	svc := NewPipelineService(newFakePipelineRepo())
	pc := enterCandidate(t, svc)

	_, err := svc.SetOfferDetails(pc.ID, &dto.OfferDetailsRequest{Salary: "120000"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestSendOfferRequiresCompleteDetails(t *testing.T) {
	svc := NewPipelineService(newFakePipelineRepo())
	pc := enterCandidate(t, svc)
	advanceToOfferStage(t, svc, pc.ID)

	_, err := svc.SetOfferDetails(pc.ID, &dto.OfferDetailsRequest{
		Salary: "120000",
		// position and start date missing
	})
	require.NoError(t, err)

	_, err = svc.SendOffer(pc.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	details, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "position")
	assert.Contains(t, details, "start_date")
	assert.NotContains(t, details, "salary")
}

func TestSendOfferMarksSent(t *testing.T) {
	svc := NewPipelineService(newFakePipelineRepo())
	pc := enterCandidate(t, svc)
	advanceToOfferStage(t, svc, pc.ID)

	_, err := svc.SetOfferDetails(pc.ID, &dto.OfferDetailsRequest{
		Salary:    "120000",
		Position:  "Senior Backend Engineer",
		StartDate: "2026-10-01",
	})
	require.NoError(t, err)

	sent, err := svc.SendOffer(pc.ID)
	require.NoError(t, err)
	assert.True(t, sent.OfferSent)
	require.NotNil(t, sent.OfferSentDate)
}

func TestRespondToOfferAcceptedHires(t *testing.T) {
	svc := NewPipelineService(newFakePipelineRepo())
	pc := enterCandidate(t, svc)
	advanceToOfferStage(t, svc, pc.ID)

	_, err := svc.SetOfferDetails(pc.ID, &dto.OfferDetailsRequest{
		Salary: "120000", Position: "Senior Backend Engineer", StartDate: "2026-10-01",
	})
	require.NoError(t, err)
	_, err = svc.SendOffer(pc.ID)
	require.NoError(t, err)

	accepted, err := svc.RespondToOffer(pc.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.StageHired, accepted.Stage)
	assert.Equal(t, models.PipelineStatusHired, accepted.Status)
	require.NotNil(t, accepted.OfferAccepted)
	assert.True(t, *accepted.OfferAccepted)
	require.NotNil(t, accepted.OfferResponseDate)
}

func TestRespondToOfferDeclinedStaysAtOfferStage(t *testing.T) {
	svc := NewPipelineService(newFakePipelineRepo())
	pc := enterCandidate(t, svc)
	advanceToOfferStage(t, svc, pc.ID)

	_, err := svc.SetOfferDetails(pc.ID, &dto.OfferDetailsRequest{
		Salary: "120000", Position: "Senior Backend Engineer", StartDate: "2026-10-01",
	})
	require.NoError(t, err)
	_, err = svc.SendOffer(pc.ID)
	require.NoError(t, err)

	declined, err := svc.RespondToOffer(pc.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.StageOfferStage, declined.Stage)
	assert.Equal(t, models.PipelineStatusOfferDeclined, declined.Status)
}

func TestRespondToOfferWithoutSendFails(t *testing.T) {
	svc := NewPipelineService(newFakePipelineRepo())
	pc := enterCandidate(t, svc)
	advanceToOfferStage(t, svc, pc.ID)

	_, err := svc.RespondToOffer(pc.ID, true)
	assert.Error(t, err)
}

func TestRespondToOfferTwiceFails(t *testing.T) {
	svc := NewPipelineService(newFakePipelineRepo())
	pc := enterCandidate(t, svc)
	advanceToOfferStage(t, svc, pc.ID)

	_, err := svc.SetOfferDetails(pc.ID, &dto.OfferDetailsRequest{
		Salary: "120000", Position: "Senior Backend Engineer", StartDate: "2026-10-01",
	})
	require.NoError(t, err)
	_, err = svc.SendOffer(pc.ID)
	require.NoError(t, err)
	_, err = svc.RespondToOffer(pc.ID, false)
	require.NoError(t, err)

	_, err = svc.RespondToOffer(pc.ID, true)
	assert.Error(t, err)
}
