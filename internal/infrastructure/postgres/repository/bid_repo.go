package repository

import (
	"errors"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/mappers"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultBidRepository struct {
	DB *gorm.DB
}

func NewDefaultBidRepository(db *gorm.DB) *DefaultBidRepository {
	return &DefaultBidRepository{DB: db}
}

func (r *DefaultBidRepository) CreateBid(bid *domain.Bid) error {
	bidModel := mappers.ToGORMBid(bid)
	if err := r.DB.Create(bidModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultBidRepository) GetBidByID(bidID string) (*domain.Bid, error) {
	var bidModel models.BidModel
	if err := r.DB.First(&bidModel, "id = ?", bidID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("bid not found")
		}
		return nil, err
	}
	return mappers.ToDomainBid(&bidModel), nil
}

func (r *DefaultBidRepository) GetBidsByJobID(jobID string) ([]*domain.Bid, error) {
	var bidModels []models.BidModel
	if err := r.DB.Where("job_id = ?", jobID).Order("created_at ASC").Find(&bidModels).Error; err != nil {
		return nil, err
	}
	bids := make([]*domain.Bid, len(bidModels))
	for i := range bidModels {
		bids[i] = mappers.ToDomainBid(&bidModels[i])
	}
	return bids, nil
}

func (r *DefaultBidRepository) GetActiveOriginalBid(jobID, providerID string) (*domain.Bid, error) {
	var bidModel models.BidModel
	if err := r.DB.
		Where("job_id = ? AND provider_id = ? AND is_counter_offer = false AND status NOT IN ?",
			jobID, providerID, []domain.BidStatus{domain.BidAccepted, domain.BidRejected}).
		First(&bidModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("no active bid for this provider")
		}
		return nil, err
	}
	return mappers.ToDomainBid(&bidModel), nil
}

func (r *DefaultBidRepository) UpdateBidStatus(bidID string, status domain.BidStatus) error {
	result := r.DB.Model(&models.BidModel{}).
		Where("id = ?", bidID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("bid not found")
	}
	return nil
}

func (r *DefaultBidRepository) CreateCounterOffer(counter *domain.Bid, answeredBidID string, jobUpdate domain.JobUpdate, expected domain.JobStatus) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.BidModel{}).
			Where("id = ? AND status = ?", answeredBidID, domain.BidPending).
			Updates(map[string]interface{}{"status": domain.BidCountered, "updated_at": time.Now()})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NewConflictError("bid is no longer open for a counter-offer")
		}
		if err := tx.Create(mappers.ToGORMBid(counter)).Error; err != nil {
			return err
		}
		return transitionJobTx(tx, counter.JobID, expected, jobUpdate)
	})
}

func (r *DefaultBidRepository) AcceptBids(acceptance *domain.BidAcceptance) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for _, bidID := range acceptance.AcceptBidIDs {
			result := tx.Model(&models.BidModel{}).
				Where("id = ? AND status NOT IN ?", bidID,
					[]domain.BidStatus{domain.BidAccepted, domain.BidRejected}).
				Updates(map[string]interface{}{"status": domain.BidAccepted, "updated_at": now})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.NewConflictError("bid was settled concurrently")
			}
		}
		// Every other live bid on the job loses.
		if err := tx.Model(&models.BidModel{}).
			Where("job_id = ? AND id NOT IN ? AND status NOT IN ?",
				acceptance.JobID, acceptance.AcceptBidIDs,
				[]domain.BidStatus{domain.BidAccepted, domain.BidRejected}).
			Updates(map[string]interface{}{"status": domain.BidRejected, "updated_at": now}).Error; err != nil {
			return err
		}
		return transitionJobTx(tx, acceptance.JobID, acceptance.ExpectedStatus, acceptance.JobUpdate)
	})
}

func (r *DefaultBidRepository) CountPendingBids(jobID string) (int64, error) {
	var count int64
	if err := r.DB.Model(&models.BidModel{}).
		Where("job_id = ? AND status IN ?", jobID,
			[]domain.BidStatus{domain.BidPending, domain.BidCountered}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
