package training

import (
	"errors"
	"math"
)

var (
	ErrModuleNotFound   = errors.New("training module not found")
	ErrScenarioNotFound = errors.New("training scenario not found")
	ErrInvalidOption    = errors.New("selected option out of range")
)

// Scenario is one quiz/roleplay step. Immutable reference data; per-session
// state (score, streak, hints) never touches this package.
type Scenario struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Feedback      string   `json:"feedback"`
	Tips          []string `json:"tips,omitempty"`
	TimeLimitSec  int      `json:"time_limit_sec,omitempty"`
	Hint          string   `json:"hint,omitempty"`
}

// Module groups scenarios into a themed practice track.
type Module struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  string     `json:"difficulty"`
	Scenarios   []Scenario `json:"scenarios"`
}

// GetModules returns the full catalog.
func GetModules() []Module {
	return catalog
}

// GetModuleByID looks up a module.
func GetModuleByID(id string) (*Module, error) {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], nil
		}
	}
	return nil, ErrModuleNotFound
}

// GetScenarioByID looks up a scenario inside a module.
func GetScenarioByID(moduleID, scenarioID string) (*Scenario, error) {
	module, err := GetModuleByID(moduleID)
	if err != nil {
		return nil, err
	}
	for i := range module.Scenarios {
		if module.Scenarios[i].ID == scenarioID {
			return &module.Scenarios[i], nil
		}
	}
	return nil, ErrScenarioNotFound
}

// CalculateModuleProgress returns completion as a 0-100 percentage.
// Scenario IDs that do not belong to the module are ignored; duplicates
// count once. A module with no scenarios is always 0.
func CalculateModuleProgress(moduleID string, completedScenarioIDs []string) (float64, error) {
	module, err := GetModuleByID(moduleID)
	if err != nil {
		return 0, err
	}
	if len(module.Scenarios) == 0 {
		return 0, nil
	}

	known := make(map[string]bool, len(module.Scenarios))
	for _, s := range module.Scenarios {
		known[s.ID] = true
	}

	seen := make(map[string]bool, len(completedScenarioIDs))
	completed := 0
	for _, id := range completedScenarioIDs {
		if known[id] && !seen[id] {
			seen[id] = true
			completed++
		}
	}

	progress := float64(completed) / float64(len(module.Scenarios)) * 100
	return math.Round(progress*100) / 100, nil
}

// AnswerResult is the evaluation of a single submitted answer.
type AnswerResult struct {
	Correct    bool   `json:"correct"`
	Feedback   string `json:"feedback"`
	ScoreDelta int    `json:"score_delta"`
}

// EvaluateAnswer scores a submitted answer. Confidence (1-5) scales the
// reward for correct answers; wrong answers never lose points.
func EvaluateAnswer(moduleID, scenarioID string, selectedOption, confidence int) (*AnswerResult, error) {
	scenario, err := GetScenarioByID(moduleID, scenarioID)
	if err != nil {
		return nil, err
	}

	if selectedOption < 0 || selectedOption >= len(scenario.Options) {
		return nil, ErrInvalidOption
	}

	if confidence < 1 {
		confidence = 1
	}
	if confidence > 5 {
		confidence = 5
	}

	if selectedOption != scenario.CorrectAnswer {
		return &AnswerResult{
			Correct:    false,
			Feedback:   scenario.Feedback,
			ScoreDelta: 0,
		}, nil
	}

	return &AnswerResult{
		Correct:    true,
		Feedback:   scenario.Feedback,
		ScoreDelta: 10 + confidence*2,
	}, nil
}
