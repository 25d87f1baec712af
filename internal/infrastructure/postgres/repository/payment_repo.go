package repository

import (
	"errors"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/mappers"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) CreatePaymentSplit(payment *domain.Payment, entries []*domain.LedgerEntry, hold *domain.WarrantyHold, expected domain.JobStatus, jobUpdate domain.JobUpdate) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PaymentModel{}).
			Where("job_id = ?", payment.JobID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.NewConflictError("payment already exists for this job")
		}

		if err := tx.Create(mappers.ToGORMPayment(payment)).Error; err != nil {
			return err
		}
		for _, entry := range entries {
			if err := tx.Create(mappers.ToGORMLedgerEntry(entry)).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(mappers.ToGORMHold(hold)).Error; err != nil {
			return err
		}
		return transitionJobTx(tx, payment.JobID, expected, jobUpdate)
	})
}

func (r *DefaultPaymentRepository) GetPaymentByJobID(jobID string) (*domain.Payment, error) {
	var paymentModel models.PaymentModel
	if err := r.DB.First(&paymentModel, "job_id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("no payment for this job")
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&paymentModel), nil
}

func (r *DefaultPaymentRepository) GetLedgerEntries(jobID string) ([]*domain.LedgerEntry, error) {
	var entryModels []models.LedgerEntryModel
	if err := r.DB.Where("job_id = ?", jobID).Order("created_at ASC").Find(&entryModels).Error; err != nil {
		return nil, err
	}
	entries := make([]*domain.LedgerEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = mappers.ToDomainLedgerEntry(&entryModels[i])
	}
	return entries, nil
}

func (r *DefaultPaymentRepository) GetAccountBalances(jobID string) ([]*domain.AccountBalance, error) {
	var balances []*domain.AccountBalance
	if err := r.DB.Model(&models.LedgerEntryModel{}).
		Select("account, COALESCE(SUM(CASE WHEN entry_type = ? THEN amount ELSE 0 END), 0) AS credits, COALESCE(SUM(CASE WHEN entry_type = ? THEN amount ELSE 0 END), 0) AS debits",
			domain.EntryCredit, domain.EntryDebit).
		Where("job_id = ?", jobID).
		Group("account").
		Scan(&balances).Error; err != nil {
		return nil, err
	}
	return balances, nil
}

func (r *DefaultPaymentRepository) GetHoldByID(holdID string) (*domain.WarrantyHold, error) {
	var holdModel models.WarrantyHoldModel
	if err := r.DB.First(&holdModel, "id = ?", holdID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("warranty hold not found")
		}
		return nil, err
	}
	return mappers.ToDomainHold(&holdModel), nil
}

func (r *DefaultPaymentRepository) GetHoldByJobID(jobID string) (*domain.WarrantyHold, error) {
	var holdModel models.WarrantyHoldModel
	if err := r.DB.First(&holdModel, "job_id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("no warranty hold for this job")
		}
		return nil, err
	}
	return mappers.ToDomainHold(&holdModel), nil
}

func holdUpdateColumns(update domain.HoldUpdate) map[string]interface{} {
	columns := map[string]interface{}{"updated_at": time.Now()}
	if update.Status != nil {
		columns["status"] = *update.Status
	}
	if update.IsFrozen != nil {
		columns["is_frozen"] = *update.IsFrozen
	}
	if update.FrozenAt != nil {
		columns["frozen_at"] = *update.FrozenAt
	}
	if update.FreezeReason != nil {
		columns["freeze_reason"] = *update.FreezeReason
	}
	if update.EffectiveEndDate != nil {
		columns["effective_end_date"] = *update.EffectiveEndDate
	}
	if update.ReleasedAt != nil {
		columns["released_at"] = *update.ReleasedAt
	}
	if update.ReleaseReason != nil {
		columns["release_reason"] = *update.ReleaseReason
	}
	return columns
}

// updateHoldTx is the guarded hold write shared by the settlement transactions.
func updateHoldTx(tx *gorm.DB, holdID string, guard domain.HoldStatus, update domain.HoldUpdate) error {
	columns := holdUpdateColumns(update)
	if len(columns) == 1 {
		// Nothing to change beyond the timestamp; still verify the guard.
		var count int64
		if err := tx.Model(&models.WarrantyHoldModel{}).
			Where("id = ? AND status = ?", holdID, guard).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.NewConflictError("warranty hold changed concurrently")
		}
		return nil
	}
	result := tx.Model(&models.WarrantyHoldModel{}).
		Where("id = ? AND status = ?", holdID, guard).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("warranty hold changed concurrently")
	}
	return nil
}

func (r *DefaultPaymentRepository) UpdateHold(holdID string, guard domain.HoldStatus, update domain.HoldUpdate) error {
	return updateHoldTx(r.DB, holdID, guard, update)
}

func (r *DefaultPaymentRepository) ReleaseHold(holdID string, guard domain.HoldStatus, update domain.HoldUpdate, entries []*domain.LedgerEntry, paymentStatus domain.PaymentStatus) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var holdModel models.WarrantyHoldModel
		if err := tx.First(&holdModel, "id = ?", holdID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("warranty hold not found")
			}
			return err
		}
		if err := updateHoldTx(tx, holdID, guard, update); err != nil {
			return err
		}
		for _, entry := range entries {
			if err := tx.Create(mappers.ToGORMLedgerEntry(entry)).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.PaymentModel{}).
			Where("job_id = ?", holdModel.JobID).
			Updates(map[string]interface{}{"status": paymentStatus, "updated_at": time.Now()}).Error
	})
}

func (r *DefaultPaymentRepository) FindReleasableHolds(now time.Time) ([]*domain.WarrantyHold, error) {
	var holdModels []models.WarrantyHoldModel
	if err := r.DB.
		Where("status = ? AND effective_end_date <= ?", domain.HoldLocked, now).
		Find(&holdModels).Error; err != nil {
		return nil, err
	}
	holds := make([]*domain.WarrantyHold, len(holdModels))
	for i := range holdModels {
		holds[i] = mappers.ToDomainHold(&holdModels[i])
	}
	return holds, nil
}
