package repository

import (
	"errors"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/mappers"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDisputeRepository struct {
	DB *gorm.DB
}

func NewDefaultDisputeRepository(db *gorm.DB) *DefaultDisputeRepository {
	return &DefaultDisputeRepository{DB: db}
}

func (r *DefaultDisputeRepository) CreateDispute(dispute *domain.Dispute, holdID string, guard domain.HoldStatus, hold domain.HoldUpdate) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.DisputeModel{}).
			Where("job_id = ? AND status <> ?", dispute.JobID, domain.DisputeResolved).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.NewConflictError("an open dispute already exists for this job")
		}
		if err := tx.Create(mappers.ToGORMDispute(dispute)).Error; err != nil {
			return err
		}
		return updateHoldTx(tx, holdID, guard, hold)
	})
}

func (r *DefaultDisputeRepository) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	var disputeModel models.DisputeModel
	if err := r.DB.First(&disputeModel, "id = ?", disputeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("dispute not found")
		}
		return nil, err
	}
	return mappers.ToDomainDispute(&disputeModel), nil
}

func (r *DefaultDisputeRepository) GetOpenDisputeByJobID(jobID string) (*domain.Dispute, error) {
	var disputeModel models.DisputeModel
	if err := r.DB.
		Where("job_id = ? AND status <> ?", jobID, domain.DisputeResolved).
		First(&disputeModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("no open dispute for this job")
		}
		return nil, err
	}
	return mappers.ToDomainDispute(&disputeModel), nil
}

func (r *DefaultDisputeRepository) UpdateDisputeStatus(disputeID string, status domain.DisputeStatus) error {
	result := r.DB.Model(&models.DisputeModel{}).
		Where("id = ?", disputeID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("dispute not found")
	}
	return nil
}

func disputeUpdateColumns(update domain.DisputeUpdate) map[string]interface{} {
	columns := map[string]interface{}{"updated_at": time.Now()}
	if update.Status != nil {
		columns["status"] = *update.Status
	}
	if update.Outcome != nil {
		columns["outcome"] = *update.Outcome
	}
	if update.Resolution != nil {
		columns["resolution"] = *update.Resolution
	}
	if update.ResolvedAt != nil {
		columns["resolved_at"] = *update.ResolvedAt
	}
	return columns
}

func (r *DefaultDisputeRepository) ResolveDispute(disputeID string, update domain.DisputeUpdate, holdID string, guard domain.HoldStatus, hold domain.HoldUpdate, entries []*domain.LedgerEntry) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.DisputeModel{}).
			Where("id = ? AND status <> ?", disputeID, domain.DisputeResolved).
			Updates(disputeUpdateColumns(update))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NewConflictError("dispute was resolved concurrently")
		}

		if err := updateHoldTx(tx, holdID, guard, hold); err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		// A client-favored refund also settles the remaining escrow balance.
		var holdModel models.WarrantyHoldModel
		if err := tx.First(&holdModel, "id = ?", holdID).Error; err != nil {
			return err
		}
		for _, entry := range entries {
			if err := tx.Create(mappers.ToGORMLedgerEntry(entry)).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.PaymentModel{}).
			Where("job_id = ?", holdModel.JobID).
			Updates(map[string]interface{}{"status": domain.PaymentReleased, "updated_at": time.Now()}).Error
	})
}

func (r *DefaultDisputeRepository) ListDisputes(filter domain.DisputeFilter) ([]*domain.Dispute, int64, error) {
	var disputeModels []models.DisputeModel
	var total int64

	query := r.DB.Model(&models.DisputeModel{})
	if filter.JobID != "" {
		query = query.Where("job_id = ?", filter.JobID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&disputeModels).Error; err != nil {
		return nil, 0, err
	}

	disputes := make([]*domain.Dispute, len(disputeModels))
	for i := range disputeModels {
		disputes[i] = mappers.ToDomainDispute(&disputeModels[i])
	}
	return disputes, total, nil
}

func (r *DefaultDisputeRepository) FindReviewExpired(now time.Time) ([]*domain.Dispute, error) {
	var disputeModels []models.DisputeModel
	if err := r.DB.
		Where("status IN ? AND review_by <= ?",
			[]domain.DisputeStatus{domain.DisputeOpen, domain.DisputeUnderReview}, now).
		Find(&disputeModels).Error; err != nil {
		return nil, err
	}
	disputes := make([]*domain.Dispute, len(disputeModels))
	for i := range disputeModels {
		disputes[i] = mappers.ToDomainDispute(&disputeModels[i])
	}
	return disputes, nil
}
