package services

import (
	"talentswipe_backend/internal/models"
	"talentswipe_backend/internal/repositories"
	"talentswipe_backend/internal/services/dto"
	"talentswipe_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type GeneratedCandidateService interface {
	Store(req *dto.StoreGeneratedCandidateRequest) (*models.GeneratedCandidate, error)
	GetForUser(userID string, status string) ([]models.GeneratedCandidate, error)
	UpdateStatus(id string, status string) (*models.GeneratedCandidate, error)
	UpdateData(id string, data []byte) (*models.GeneratedCandidate, error)
}

type generatedCandidateService struct {
	generatedRepo repositories.GeneratedCandidateRepository
}

func NewGeneratedCandidateService(generatedRepo repositories.GeneratedCandidateRepository) GeneratedCandidateService {
	return &generatedCandidateService{generatedRepo: generatedRepo}
}

// Store snapshots a candidate for the user. Repeated selection of the
// same candidate refreshes the snapshot rather than duplicating the row.
func (s *generatedCandidateService) Store(req *dto.StoreGeneratedCandidateRequest) (*models.GeneratedCandidate, error) {
	sourceType := models.SourceType(req.SourceType)
	if sourceType == "" {
		sourceType = models.SourceTypeAIGenerated
	}

	persisted, err := s.generatedRepo.Upsert(&models.GeneratedCandidate{
		UserID:        req.UserID,
		CandidateID:   req.CandidateID,
		CandidateData: datatypes.JSON(req.CandidateData),
		SourceType:    sourceType,
		Status:        models.GeneratedStatusActive,
	})
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return persisted, nil
}

// GetForUser lists the user's stored candidates, newest first. An empty
// status defaults to ACTIVE; "all" disables the filter.
func (s *generatedCandidateService) GetForUser(userID string, status string) ([]models.GeneratedCandidate, error) {
	var filter models.GeneratedCandidateStatus
	switch status {
	case "":
		filter = models.GeneratedStatusActive
	case "all":
		filter = ""
	default:
		filter = models.GeneratedCandidateStatus(status)
		if !models.ValidGeneratedStatus(filter) {
			return nil, apperrors.ErrInvalidStatus("generated_candidate", "Unknown status filter: "+status)
		}
	}

	candidates, err := s.generatedRepo.FindByUser(userID, filter)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return candidates, nil
}

func (s *generatedCandidateService) UpdateStatus(id string, status string) (*models.GeneratedCandidate, error) {
	newStatus := models.GeneratedCandidateStatus(status)
	if !models.ValidGeneratedStatus(newStatus) {
		return nil, apperrors.ErrInvalidStatus("generated_candidate", "Unknown status: "+status)
	}

	persisted, err := s.generatedRepo.UpdateStatus(id, newStatus)
	if err != nil {
		if err == repositories.ErrGeneratedCandidateNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	return persisted, nil
}

func (s *generatedCandidateService) UpdateData(id string, data []byte) (*models.GeneratedCandidate, error) {
	persisted, err := s.generatedRepo.UpdateData(id, datatypes.JSON(data))
	if err != nil {
		if err == repositories.ErrGeneratedCandidateNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	return persisted, nil
}
