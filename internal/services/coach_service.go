package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"talentswipe_backend/internal/llm"
	"talentswipe_backend/internal/logger"
	"talentswipe_backend/internal/services/dto"
	"talentswipe_backend/internal/training"
	"talentswipe_backend/pkg/apperrors"
)

// CoachService drives the free-form interview coaching dialogue that
// supplements the static training modules.
type CoachService interface {
	Reply(ctx context.Context, req *dto.CoachRequest) (*dto.CoachReply, error)
}

type coachService struct {
	llmClient llm.Generator
}

func NewCoachService(llmClient llm.Generator) CoachService {
	return &coachService{llmClient: llmClient}
}

const coachSystemPrompt = `You are an experienced recruiting coach helping a recruiter practice interviews and candidate conversations.
Stay in character as a supportive but honest coach. Give concrete, actionable guidance.
Respond with only a valid JSON object in exactly this shape, with no markdown fences and no text outside the JSON:
{"reply": "your coaching response", "tone": "one word describing the tone of the user's message", "tips": ["short actionable tip", "..."]}`

func (s *coachService) Reply(ctx context.Context, req *dto.CoachRequest) (*dto.CoachReply, error) {
	text, err := s.llmClient.Generate(ctx, coachSystemPrompt, buildCoachPrompt(req))
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "coach", "Coaching reply generation failed")
	}

	reply, err := parseCoachReply(text)
	if err != nil {
		logger.CtxWithError(ctx, "coach reply failed schema validation", err)
		return nil, apperrors.ErrExternalService(err, "coach", "The model returned an invalid coaching reply")
	}
	return reply, nil
}

// parseCoachReply enforces the JSON contract at the boundary. Models
// occasionally wrap the object in a code fence despite instructions, so
// fences are stripped before decoding; anything else malformed is an
// upstream error.
func parseCoachReply(text string) (*dto.CoachReply, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var reply dto.CoachReply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return nil, fmt.Errorf("decode coach reply: %w", err)
	}
	if reply.Reply == "" {
		return nil, fmt.Errorf("coach reply missing required field %q", "reply")
	}
	return &reply, nil
}

func buildCoachPrompt(req *dto.CoachRequest) string {
	var b strings.Builder

	if req.ScenarioID != "" {
		if module, scenario, err := findScenario(req.ScenarioID); err == nil {
			fmt.Fprintf(&b, "Training context (%s): %s\n", module.Title, scenario.Question)
			if len(scenario.Tips) > 0 {
				fmt.Fprintf(&b, "Relevant guidance: %s\n", strings.Join(scenario.Tips, "; "))
			}
			b.WriteString("\n")
		}
	}

	if len(req.History) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range req.History {
			fmt.Fprintf(&b, "[%s] %s\n", turn.Role, turn.Content)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Recruiter's message: %s", req.Message)
	return b.String()
}

func findScenario(scenarioID string) (*training.Module, *training.Scenario, error) {
	modules := training.GetModules()
	for i := range modules {
		if scenario, err := training.GetScenarioByID(modules[i].ID, scenarioID); err == nil {
			return &modules[i], scenario, nil
		}
	}
	return nil, nil, training.ErrScenarioNotFound
}
