package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talentswipe_backend/internal/models"
	"talentswipe_backend/internal/repositories"

	"gorm.io/datatypes"
)

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: map[string]*models.User{}, byEmail: map[string]*models.User{}}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return repositories.ErrUserAlreadyExists
	}
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.byID)+1)
	}
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateOnboarding(userID string, fields map[string]interface{}) error {
	u, ok := r.byID[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	if v, ok := fields["company"].(string); ok {
		u.Company = v
	}
	if v, ok := fields["role_title"].(string); ok {
		u.RoleTitle = v
	}
	if v, ok := fields["hiring_focus"].(string); ok {
		u.HiringFocus = v
	}
	if v, ok := fields["team_size"].(int); ok {
		u.TeamSize = v
	}
	u.OnboardingComplete = true
	return nil
}

type interactionKey struct {
	userID, candidateID string
	interactionType     models.InteractionType
}

type fakeInteractionRepo struct {
	rows map[interactionKey]*models.CandidateInteraction
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{rows: map[interactionKey]*models.CandidateInteraction{}}
}

// Upsert mirrors the real repository: the conflict refreshes created_at
// and updated_at on the surviving row.
func (r *fakeInteractionRepo) Upsert(in *models.CandidateInteraction) (*models.CandidateInteraction, error) {
	key := interactionKey{in.UserID, in.CandidateID, in.InteractionType}
	now := time.Now()
	if existing, ok := r.rows[key]; ok {
		existing.CreatedAt = now
		existing.UpdatedAt = now
		return existing, nil
	}
	in.ID = fmt.Sprintf("int-%d", len(r.rows)+1)
	in.CreatedAt = now
	in.UpdatedAt = now
	r.rows[key] = in
	return in, nil
}

func (r *fakeInteractionRepo) FindByUser(userID string) ([]models.CandidateInteraction, error) {
	var out []models.CandidateInteraction
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *fakeInteractionRepo) FindByCandidate(candidateID string) ([]models.CandidateInteraction, error) {
	var out []models.CandidateInteraction
	for _, row := range r.rows {
		if row.CandidateID == candidateID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *fakeInteractionRepo) CountByCandidate(candidateID string) (map[models.InteractionType]int64, error) {
	counts := map[models.InteractionType]int64{}
	for _, row := range r.rows {
		if row.CandidateID == candidateID {
			counts[row.InteractionType]++
		}
	}
	return counts, nil
}

type generatedKey struct {
	userID, candidateID string
}

type fakeGeneratedRepo struct {
	rows map[generatedKey]*models.GeneratedCandidate
}

func newFakeGeneratedRepo() *fakeGeneratedRepo {
	return &fakeGeneratedRepo{rows: map[generatedKey]*models.GeneratedCandidate{}}
}

func (r *fakeGeneratedRepo) Upsert(gc *models.GeneratedCandidate) (*models.GeneratedCandidate, error) {
	key := generatedKey{gc.UserID, gc.CandidateID}
	if existing, ok := r.rows[key]; ok {
		existing.CandidateData = gc.CandidateData
		existing.SourceType = gc.SourceType
		existing.UpdatedAt = time.Now()
		return existing, nil
	}
	gc.ID = fmt.Sprintf("gen-%d", len(r.rows)+1)
	r.rows[key] = gc
	return gc, nil
}

func (r *fakeGeneratedRepo) FindByID(id string) (*models.GeneratedCandidate, error) {
	for _, row := range r.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, repositories.ErrGeneratedCandidateNotFound
}

func (r *fakeGeneratedRepo) FindByUser(userID string, status models.GeneratedCandidateStatus) ([]models.GeneratedCandidate, error) {
	var out []models.GeneratedCandidate
	for _, row := range r.rows {
		if row.UserID != userID {
			continue
		}
		if status != "" && row.Status != status {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func (r *fakeGeneratedRepo) FindByIDs(userID string, ids []string) ([]models.GeneratedCandidate, error) {
	wanted := map[string]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	var out []models.GeneratedCandidate
	for _, row := range r.rows {
		if row.UserID == userID && (wanted[row.ID] || wanted[row.CandidateID]) {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *fakeGeneratedRepo) UpdateStatus(id string, status models.GeneratedCandidateStatus) (*models.GeneratedCandidate, error) {
	row, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	row.Status = status
	return row, nil
}

func (r *fakeGeneratedRepo) UpdateData(id string, data datatypes.JSON) (*models.GeneratedCandidate, error) {
	row, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	row.CandidateData = data
	return row, nil
}

type fakeCandidateRepo struct {
	byID map[string]*models.Candidate
}

func newFakeCandidateRepo(candidates ...*models.Candidate) *fakeCandidateRepo {
	r := &fakeCandidateRepo{byID: map[string]*models.Candidate{}}
	for _, c := range candidates {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCandidateRepo) FindByID(id string) (*models.Candidate, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrCandidateNotFound
	}
	return c, nil
}

func (r *fakeCandidateRepo) FindByIDs(ids []string) ([]models.Candidate, error) {
	var out []models.Candidate
	for _, id := range ids {
		if c, ok := r.byID[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

// fakeGenerator returns canned text, or fails on configured prompts.
type fakeGenerator struct {
	reply    string
	failWhen func(userPrompt string) bool
	calls    int
}

func (g *fakeGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	g.calls++
	if g.failWhen != nil && g.failWhen(userPrompt) {
		return "", errors.New("model overloaded")
	}
	return g.reply, nil
}

type sentEmail struct {
	to, subject, body string
}

type fakeEmailProvider struct {
	sent     []sentEmail
	failFor  map[string]bool
	sendErr  error
}

func (p *fakeEmailProvider) Send(to, subject, body string) error {
	if p.failFor[to] {
		return errors.New("smtp: mailbox unavailable")
	}
	if p.sendErr != nil {
		return p.sendErr
	}
	p.sent = append(p.sent, sentEmail{to, subject, body})
	return nil
}
