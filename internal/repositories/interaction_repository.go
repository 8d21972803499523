package repositories

import (
	"time"

	"talentswipe_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionRepository interface {
	// Upsert inserts the interaction or, on the (user, candidate, type)
	// conflict, refreshes created_at. Returns the persisted row.
	Upsert(interaction *models.CandidateInteraction) (*models.CandidateInteraction, error)
	FindByUser(userID string) ([]models.CandidateInteraction, error)
	FindByCandidate(candidateID string) ([]models.CandidateInteraction, error)
	CountByCandidate(candidateID string) (map[models.InteractionType]int64, error)
}

type InteractionRepositoryImpl struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &InteractionRepositoryImpl{db: db}
}

func (r *InteractionRepositoryImpl) Upsert(interaction *models.CandidateInteraction) (*models.CandidateInteraction, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "candidate_id"}, {Name: "interaction_type"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"created_at": time.Now(),
			"updated_at": time.Now(),
		}),
	}).Create(interaction).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller gets the canonical row (id and timestamps of
	// the surviving record, not the zero values of the rejected insert).
	var persisted models.CandidateInteraction
	err = r.db.Where(
		"user_id = ? AND candidate_id = ? AND interaction_type = ?",
		interaction.UserID, interaction.CandidateID, interaction.InteractionType,
	).First(&persisted).Error
	if err != nil {
		return nil, err
	}
	return &persisted, nil
}

func (r *InteractionRepositoryImpl) FindByUser(userID string) ([]models.CandidateInteraction, error) {
	var interactions []models.CandidateInteraction
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&interactions).Error
	return interactions, err
}

func (r *InteractionRepositoryImpl) FindByCandidate(candidateID string) ([]models.CandidateInteraction, error) {
	var interactions []models.CandidateInteraction
	err := r.db.Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&interactions).Error
	return interactions, err
}

func (r *InteractionRepositoryImpl) CountByCandidate(candidateID string) (map[models.InteractionType]int64, error) {
	type typeCount struct {
		InteractionType models.InteractionType
		Count           int64
	}

	var rows []typeCount
	err := r.db.Model(&models.CandidateInteraction{}).
		Select("interaction_type, count(*) as count").
		Where("candidate_id = ?", candidateID).
		Group("interaction_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.InteractionType]int64, len(rows))
	for _, row := range rows {
		counts[row.InteractionType] = row.Count
	}
	return counts, nil
}
