package services

import (
	"talentswipe_backend/internal/models"
	"talentswipe_backend/internal/repositories"
	"talentswipe_backend/internal/services/dto"
	"talentswipe_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type InteractionService interface {
	RecordInteraction(req *dto.RecordInteractionRequest) (*models.CandidateInteraction, error)
	GetUserInteractions(userID string) ([]models.CandidateInteraction, error)
	GetCandidateInteractions(candidateID string) (*dto.CandidateInteractionStats, error)
}

type interactionService struct {
	interactionRepo repositories.InteractionRepository
	generatedRepo   repositories.GeneratedCandidateRepository
}

func NewInteractionService(
	interactionRepo repositories.InteractionRepository,
	generatedRepo repositories.GeneratedCandidateRepository,
) InteractionService {
	return &interactionService{
		interactionRepo: interactionRepo,
		generatedRepo:   generatedRepo,
	}
}

// RecordInteraction upserts the interaction row. The interaction type is
// validated before anything is written. A SWIPE_RIGHT carrying a candidate
// snapshot also stores the candidate in the generated-candidate store.
func (s *interactionService) RecordInteraction(req *dto.RecordInteractionRequest) (*models.CandidateInteraction, error) {
	interactionType := models.InteractionType(req.InteractionType)
	if !models.ValidInteractionType(interactionType) {
		return nil, apperrors.ErrInvalidInteractionType
	}

	persisted, err := s.interactionRepo.Upsert(&models.CandidateInteraction{
		UserID:          req.UserID,
		CandidateID:     req.CandidateID,
		InteractionType: interactionType,
	})
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	if interactionType == models.InteractionSwipeRight && len(req.Candidate) > 0 {
		sourceType := models.SourceType(req.SourceType)
		if sourceType == "" {
			sourceType = models.SourceTypeAIGenerated
		}
		_, err := s.generatedRepo.Upsert(&models.GeneratedCandidate{
			UserID:        req.UserID,
			CandidateID:   req.CandidateID,
			CandidateData: datatypes.JSON(req.Candidate),
			SourceType:    sourceType,
			Status:        models.GeneratedStatusActive,
		})
		if err != nil {
			return nil, apperrors.ErrDatabase(err)
		}
	}

	return persisted, nil
}

func (s *interactionService) GetUserInteractions(userID string) ([]models.CandidateInteraction, error) {
	interactions, err := s.interactionRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return interactions, nil
}

func (s *interactionService) GetCandidateInteractions(candidateID string) (*dto.CandidateInteractionStats, error) {
	interactions, err := s.interactionRepo.FindByCandidate(candidateID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	counts, err := s.interactionRepo.CountByCandidate(candidateID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}

	countsOut := make(map[string]int64, len(counts))
	for t, n := range counts {
		countsOut[string(t)] = n
	}

	return &dto.CandidateInteractionStats{
		CandidateID:  candidateID,
		Counts:       countsOut,
		Interactions: interactions,
	}, nil
}
