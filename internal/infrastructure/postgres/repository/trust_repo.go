package repository

import (
	"errors"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/mappers"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTrustRepository struct {
	DB *gorm.DB
}

func NewDefaultTrustRepository(db *gorm.DB) *DefaultTrustRepository {
	return &DefaultTrustRepository{DB: db}
}

func (r *DefaultTrustRepository) GetProfile(actorID string, role domain.Role) (*domain.TrustProfile, error) {
	var profileModel models.TrustProfileModel
	err := r.DB.First(&profileModel, "actor_id = ? AND role = ?", actorID, role).Error
	if err == nil {
		return mappers.ToDomainTrustProfile(&profileModel), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profileModel = models.TrustProfileModel{
		ActorID:   actorID,
		Role:      role,
		UpdatedAt: time.Now(),
	}
	if err := r.DB.Create(&profileModel).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainTrustProfile(&profileModel), nil
}

func (r *DefaultTrustRepository) SaveProfile(profile *domain.TrustProfile) error {
	profileModel := mappers.ToGORMTrustProfile(profile)
	return r.DB.Save(profileModel).Error
}

func (r *DefaultTrustRepository) CreateReview(review *domain.Review) error {
	return r.DB.Create(mappers.ToGORMReview(review)).Error
}

func (r *DefaultTrustRepository) GetReviewsBySubject(subjectID string, limit int) ([]*domain.Review, error) {
	var reviewModels []models.ReviewModel
	query := r.DB.Where("subject_id = ?", subjectID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&reviewModels).Error; err != nil {
		return nil, err
	}
	reviews := make([]*domain.Review, len(reviewModels))
	for i := range reviewModels {
		reviews[i] = mappers.ToDomainReview(&reviewModels[i])
	}
	return reviews, nil
}
