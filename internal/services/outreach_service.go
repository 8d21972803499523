package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"talentswipe_backend/internal/email"
	"talentswipe_backend/internal/llm"
	"talentswipe_backend/internal/logger"
	"talentswipe_backend/internal/models"
	"talentswipe_backend/internal/repositories"
	"talentswipe_backend/internal/services/dto"
	"talentswipe_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
)

type OutreachService interface {
	// GenerateOutreach drafts one message per candidate. The batch is
	// all-or-nothing: any single LLM failure fails the whole call.
	GenerateOutreach(ctx context.Context, req *dto.GenerateOutreachRequest) ([]dto.CandidateMessage, error)

	// SendOutreachEmails sends each drafted message and reports a
	// per-candidate result; the results slice length always equals the
	// input length. allOK is true iff every send succeeded.
	SendOutreachEmails(ctx context.Context, req *dto.SendOutreachRequest) (results []dto.SendResult, allOK bool, err error)
}

type outreachService struct {
	userRepo      repositories.UserRepository
	candidateRepo repositories.CandidateRepository
	generatedRepo repositories.GeneratedCandidateRepository
	llmClient     llm.Generator
	emailProvider email.Provider
}

func NewOutreachService(
	userRepo repositories.UserRepository,
	candidateRepo repositories.CandidateRepository,
	generatedRepo repositories.GeneratedCandidateRepository,
	llmClient llm.Generator,
	emailProvider email.Provider,
) OutreachService {
	return &outreachService{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		generatedRepo: generatedRepo,
		llmClient:     llmClient,
		emailProvider: emailProvider,
	}
}

const outreachSystemPrompt = `You are a recruiting assistant that writes short, personalized outreach messages.
Write a friendly, specific first-contact message from the recruiter to the candidate.
Reference the candidate's actual experience and skills. Keep it under 150 words.
Return only the message text. Do not include a subject line, markdown, or any text before or after the message.`

func (s *outreachService) GenerateOutreach(ctx context.Context, req *dto.GenerateOutreachRequest) ([]dto.CandidateMessage, error) {
	recruiter, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}

	candidates, err := s.loadCandidates(req.UserID, req.CandidateIDs)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, apperrors.NewBadRequestError("None of the requested candidates were found")
	}

	messages := make([]dto.CandidateMessage, len(candidates))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			prompt := buildOutreachPrompt(recruiter, &candidate)
			text, err := s.llmClient.Generate(gctx, outreachSystemPrompt, prompt)
			if err != nil {
				return fmt.Errorf("draft for candidate %s: %w", candidate.ID, err)
			}
			mu.Lock()
			messages[i] = dto.CandidateMessage{
				CandidateID: candidate.ID,
				Name:        candidate.Name,
				Email:       candidate.Email,
				Message:     strings.TrimSpace(text),
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// All-or-nothing: no partial list leaves this function.
		return nil, apperrors.ErrExternalService(err, "outreach", "Outreach generation failed")
	}

	return messages, nil
}

func (s *outreachService) SendOutreachEmails(ctx context.Context, req *dto.SendOutreachRequest) ([]dto.SendResult, bool, error) {
	// The recruiter row must exist before anything is sent; its absence
	// is a setup failure for the whole batch, not a per-candidate one.
	recruiter, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, false, apperrors.InternalError(fmt.Errorf("outreach sender %s has no user record: %w", req.UserID, err))
		}
		return nil, false, apperrors.ErrDatabase(err)
	}

	results := make([]dto.SendResult, len(req.Messages))
	allOK := true

	for i, msg := range req.Messages {
		result := dto.SendResult{
			CandidateID: msg.CandidateID,
			Email:       msg.Email,
		}

		switch {
		case msg.Email == "":
			result.Error = "candidate has no email address"
		case msg.Message == "":
			result.Error = "empty message"
		default:
			subject := fmt.Sprintf("Opportunity at %s", recruiter.Company)
			if recruiter.Company == "" {
				subject = "An opportunity that matches your profile"
			}
			if err := s.emailProvider.Send(msg.Email, subject, msg.Message); err != nil {
				result.Error = err.Error()
				logger.CtxWithError(ctx, "outreach email failed", err, "candidate_id", msg.CandidateID)
			} else {
				result.Success = true
			}
		}

		if !result.Success {
			allOK = false
		}
		results[i] = result
	}

	return results, allOK, nil
}

// loadCandidates resolves candidate IDs against the sourced candidates
// table first, then against the user's stored snapshots.
func (s *outreachService) loadCandidates(userID string, ids []string) ([]models.Candidate, error) {
	candidates, err := s.candidateRepo.FindByIDs(ids)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	found := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		found[c.ID] = true
	}

	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		stored, err := s.generatedRepo.FindByIDs(userID, missing)
		if err != nil {
			return nil, apperrors.ErrDatabase(err)
		}
		for _, gc := range stored {
			var c models.Candidate
			if err := json.Unmarshal(gc.CandidateData, &c); err != nil {
				logger.Warn("skipping snapshot with unreadable candidate data", "generated_id", gc.ID, "error", err)
				continue
			}
			if c.ID == "" {
				c.ID = gc.ID
			}
			candidates = append(candidates, c)
		}
	}

	return candidates, nil
}

func buildOutreachPrompt(recruiter *models.User, candidate *models.Candidate) string {
	var skills []string
	if len(candidate.Skills) > 0 {
		if err := json.Unmarshal(candidate.Skills, &skills); err != nil {
			// Degrade to a prompt without skills rather than failing the draft.
			logger.Warn("skipping unreadable candidate skills", "candidate_id", candidate.ID, "error", err)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recruiter: %s", recruiter.Name)
	if recruiter.Company != "" {
		fmt.Fprintf(&b, " at %s", recruiter.Company)
	}
	if recruiter.HiringFocus != "" {
		fmt.Fprintf(&b, " (hiring focus: %s)", recruiter.HiringFocus)
	}
	b.WriteString("\n\nCandidate:\n")
	fmt.Fprintf(&b, "- Name: %s\n", candidate.Name)
	if candidate.Title != "" {
		fmt.Fprintf(&b, "- Current title: %s at %s\n", candidate.Title, candidate.Company)
	}
	if candidate.Location != "" {
		fmt.Fprintf(&b, "- Location: %s\n", candidate.Location)
	}
	if candidate.YearsOfExperience > 0 {
		fmt.Fprintf(&b, "- Experience: %d years\n", candidate.YearsOfExperience)
	}
	if len(skills) > 0 {
		fmt.Fprintf(&b, "- Skills: %s\n", strings.Join(skills, ", "))
	}
	if candidate.Summary != "" {
		fmt.Fprintf(&b, "- Summary: %s\n", candidate.Summary)
	}
	return b.String()
}
