package repositories

import (
	"errors"

	"talentswipe_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPipelineCandidateNotFound = errors.New("pipeline candidate not found")
)

type PipelineRepository interface {
	Create(pc *models.PipelineCandidate) error
	FindByID(id string) (*models.PipelineCandidate, error)
	FindByUser(userID string) ([]models.PipelineCandidate, error)
	Update(pc *models.PipelineCandidate) error
}

type PipelineRepositoryImpl struct {
	db *gorm.DB
}

func NewPipelineRepository(db *gorm.DB) PipelineRepository {
	return &PipelineRepositoryImpl{db: db}
}

func (r *PipelineRepositoryImpl) Create(pc *models.PipelineCandidate) error {
	return r.db.Create(pc).Error
}

func (r *PipelineRepositoryImpl) FindByID(id string) (*models.PipelineCandidate, error) {
	var pc models.PipelineCandidate
	err := r.db.First(&pc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPipelineCandidateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *PipelineRepositoryImpl) FindByUser(userID string) ([]models.PipelineCandidate, error) {
	var candidates []models.PipelineCandidate
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&candidates).Error
	return candidates, err
}

func (r *PipelineRepositoryImpl) Update(pc *models.PipelineCandidate) error {
	return r.db.Save(pc).Error
}
