package repositories

import (
	"errors"

	"talentswipe_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found")
)

// CandidateRepository reads sourced candidate rows. The platform never
// writes them; they are owned by the external matching service.
type CandidateRepository interface {
	FindByID(id string) (*models.Candidate, error)
	FindByIDs(ids []string) ([]models.Candidate, error)
}

type CandidateRepositoryImpl struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &CandidateRepositoryImpl{db: db}
}

func (r *CandidateRepositoryImpl) FindByID(id string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.First(&candidate, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepositoryImpl) FindByIDs(ids []string) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.Where("id IN ?", ids).Find(&candidates).Error
	return candidates, err
}
