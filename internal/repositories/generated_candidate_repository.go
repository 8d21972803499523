package repositories

import (
	"errors"
	"time"

	"talentswipe_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrGeneratedCandidateNotFound = errors.New("generated candidate not found")
)

type GeneratedCandidateRepository interface {
	// Upsert inserts the snapshot or, on the (user, candidate) conflict,
	// refreshes candidate_data, source_type and updated_at.
	Upsert(gc *models.GeneratedCandidate) (*models.GeneratedCandidate, error)
	FindByID(id string) (*models.GeneratedCandidate, error)
	FindByUser(userID string, status models.GeneratedCandidateStatus) ([]models.GeneratedCandidate, error)
	FindByIDs(userID string, ids []string) ([]models.GeneratedCandidate, error)
	UpdateStatus(id string, status models.GeneratedCandidateStatus) (*models.GeneratedCandidate, error)
	UpdateData(id string, data datatypes.JSON) (*models.GeneratedCandidate, error)
}

type GeneratedCandidateRepositoryImpl struct {
	db *gorm.DB
}

func NewGeneratedCandidateRepository(db *gorm.DB) GeneratedCandidateRepository {
	return &GeneratedCandidateRepositoryImpl{db: db}
}

func (r *GeneratedCandidateRepositoryImpl) Upsert(gc *models.GeneratedCandidate) (*models.GeneratedCandidate, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "candidate_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"candidate_data": gc.CandidateData,
			"source_type":    gc.SourceType,
			"updated_at":     time.Now(),
		}),
	}).Create(gc).Error
	if err != nil {
		return nil, err
	}

	var persisted models.GeneratedCandidate
	err = r.db.Where("user_id = ? AND candidate_id = ?", gc.UserID, gc.CandidateID).
		First(&persisted).Error
	if err != nil {
		return nil, err
	}
	return &persisted, nil
}

func (r *GeneratedCandidateRepositoryImpl) FindByID(id string) (*models.GeneratedCandidate, error) {
	var gc models.GeneratedCandidate
	err := r.db.First(&gc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGeneratedCandidateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &gc, nil
}

func (r *GeneratedCandidateRepositoryImpl) FindByUser(userID string, status models.GeneratedCandidateStatus) ([]models.GeneratedCandidate, error) {
	var candidates []models.GeneratedCandidate
	query := r.db.Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&candidates).Error
	return candidates, err
}

// FindByIDs accepts both snapshot row ids and source candidate ids, so
// callers holding either identifier resolve the same stored rows.
func (r *GeneratedCandidateRepositoryImpl) FindByIDs(userID string, ids []string) ([]models.GeneratedCandidate, error) {
	var candidates []models.GeneratedCandidate
	err := r.db.Where("user_id = ? AND (id IN ? OR candidate_id IN ?)", userID, ids, ids).
		Find(&candidates).Error
	return candidates, err
}

func (r *GeneratedCandidateRepositoryImpl) UpdateStatus(id string, status models.GeneratedCandidateStatus) (*models.GeneratedCandidate, error) {
	result := r.db.Model(&models.GeneratedCandidate{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrGeneratedCandidateNotFound
	}
	return r.FindByID(id)
}

func (r *GeneratedCandidateRepositoryImpl) UpdateData(id string, data datatypes.JSON) (*models.GeneratedCandidate, error) {
	result := r.db.Model(&models.GeneratedCandidate{}).Where("id = ?", id).
		Updates(map[string]interface{}{"candidate_data": data, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrGeneratedCandidateNotFound
	}
	return r.FindByID(id)
}
