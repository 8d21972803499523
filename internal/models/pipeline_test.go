package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStageChain(t *testing.T) {
	chain := []PipelineStage{
		StageFirstInterview,
		StageTechnicalRound,
		StageFinalInterview,
		StageOfferStage,
		StageHired,
	}

	for i := 0; i < len(chain)-1; i++ {
		next, ok := NextStage(chain[i])
		assert.True(t, ok, "expected transition from %s", chain[i])
		assert.Equal(t, chain[i+1], next)
	}
}

func TestNextStageTerminalStagesHaveNoSuccessor(t *testing.T) {
	for _, stage := range []PipelineStage{StageHired, StageRejected} {
		_, ok := NextStage(stage)
		assert.False(t, ok, "expected no transition from %s", stage)
	}
}

func TestTerminalStage(t *testing.T) {
	assert.True(t, TerminalStage(StageHired))
	assert.True(t, TerminalStage(StageRejected))

	for _, stage := range []PipelineStage{StageFirstInterview, StageTechnicalRound, StageFinalInterview, StageOfferStage} {
		assert.False(t, TerminalStage(stage), string(stage))
	}
}
