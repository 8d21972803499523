package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"talentswipe_backend/internal/services/dto"
	"talentswipe_backend/internal/validator"
	"talentswipe_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOutreachService struct {
	messages []dto.CandidateMessage
	results  []dto.SendResult
	allOK    bool
	err      error

	gotUserID string
}

func (s *stubOutreachService) GenerateOutreach(ctx context.Context, req *dto.GenerateOutreachRequest) ([]dto.CandidateMessage, error) {
	s.gotUserID = req.UserID
	return s.messages, s.err
}

func (s *stubOutreachService) SendOutreachEmails(ctx context.Context, req *dto.SendOutreachRequest) ([]dto.SendResult, bool, error) {
	s.gotUserID = req.UserID
	return s.results, s.allOK, s.err
}

func outreachTestRouter(svc *stubOutreachService, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	base := NewBaseHandler(validator.New())
	h := &OutreachHandler{BaseHandler: base, outreachService: svc}

	group := router.Group("/api/v1/outreach")
	if authenticated {
		group.Use(func(c *gin.Context) {
			c.Set("userID", "user-1")
			c.Next()
		})
	}
	group.POST("/generate", h.Generate)
	group.POST("/send", h.Send)
	return router
}

func TestSendRespondsOKWhenAllSucceed(t *testing.T) {
	svc := &stubOutreachService{
		results: []dto.SendResult{{CandidateID: "c-1", Success: true}},
		allOK:   true,
	}
	router := outreachTestRouter(svc, true)

	body := `{"messages":[{"candidate_id":"c-1","name":"Dana","email":"dana@example.com","message":"hi"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/outreach/send", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", svc.gotUserID)
}

func TestSendRespondsMultiStatusOnPartialFailure(t *testing.T) {
	svc := &stubOutreachService{
		results: []dto.SendResult{
			{CandidateID: "c-1", Success: true},
			{CandidateID: "c-2", Success: false, Error: "smtp: mailbox unavailable"},
		},
		allOK: false,
	}
	router := outreachTestRouter(svc, true)

	body := `{"messages":[{"candidate_id":"c-1","email":"a@b.co","message":"hi"},{"candidate_id":"c-2","email":"c@d.co","message":"hi"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/outreach/send", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMultiStatus, rec.Code)
	assert.Contains(t, rec.Body.String(), "mailbox unavailable")
}

func TestSendWithoutAuthIs401(t *testing.T) {
	svc := &stubOutreachService{}
	router := outreachTestRouter(svc, false)

	body := `{"messages":[{"candidate_id":"c-1","email":"a@b.co","message":"hi"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/outreach/send", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, svc.gotUserID)
}

func TestSendServiceSetupFailureIs500(t *testing.T) {
	svc := &stubOutreachService{err: apperrors.InternalError(errors.New("sender has no user record"))}
	router := outreachTestRouter(svc, true)

	body := `{"messages":[{"candidate_id":"c-1","email":"a@b.co","message":"hi"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/outreach/send", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGenerateRejectsEmptyCandidateList(t *testing.T) {
	svc := &stubOutreachService{}
	router := outreachTestRouter(svc, true)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/outreach/generate", strings.NewReader(`{"candidate_ids":[]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateUpstreamFailureIs500(t *testing.T) {
	svc := &stubOutreachService{err: apperrors.ErrExternalService(errors.New("model overloaded"), "outreach", "Outreach generation failed")}
	router := outreachTestRouter(svc, true)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/outreach/generate", strings.NewReader(`{"candidate_ids":["c-1"]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
