package repository

import (
	"errors"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/mappers"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultJobRepository struct {
	DB *gorm.DB
}

func NewDefaultJobRepository(db *gorm.DB) *DefaultJobRepository {
	return &DefaultJobRepository{DB: db}
}

func (r *DefaultJobRepository) CreateJob(job *domain.Job) error {
	jobModel := mappers.ToGORMJob(job)
	if err := r.DB.Create(jobModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultJobRepository) GetJobByID(jobID string) (*domain.Job, error) {
	var jobModel models.JobModel
	if err := r.DB.First(&jobModel, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("job not found")
		}
		return nil, err
	}
	return mappers.ToDomainJob(&jobModel), nil
}

// jobUpdateColumns turns the nil-able update into a column map. Double
// pointers distinguish "leave alone" (outer nil) from "set NULL" (inner nil).
func jobUpdateColumns(update domain.JobUpdate) map[string]interface{} {
	columns := map[string]interface{}{"updated_at": time.Now()}
	if update.Status != nil {
		columns["status"] = *update.Status
	}
	if update.AssignedProviderID != nil {
		columns["assigned_provider_id"] = *update.AssignedProviderID
	}
	if update.FinalPrice != nil {
		columns["final_price"] = *update.FinalPrice
	}
	if update.PriceLocked != nil {
		columns["price_locked"] = *update.PriceLocked
	}
	if update.NegotiationRounds != nil {
		columns["negotiation_rounds"] = *update.NegotiationRounds
	}
	if update.RepostCount != nil {
		columns["repost_count"] = *update.RepostCount
	}
	if update.RecirculationCount != nil {
		columns["recirculation_count"] = *update.RecirculationCount
	}
	if update.LockedBy != nil {
		columns["locked_by"] = *update.LockedBy
	}
	if update.LockExpiresAt != nil {
		columns["lock_expires_at"] = *update.LockExpiresAt
	}
	if update.NegotiationDeadline != nil {
		columns["negotiation_deadline"] = *update.NegotiationDeadline
	}
	if update.PaymentDeadline != nil {
		columns["payment_deadline"] = *update.PaymentDeadline
	}
	if update.CancelReason != nil {
		columns["cancel_reason"] = *update.CancelReason
	}
	return columns
}

func (r *DefaultJobRepository) TransitionJob(jobID string, expected domain.JobStatus, update domain.JobUpdate) error {
	return transitionJobTx(r.DB, jobID, expected, update)
}

// transitionJobTx is the optimistic guard shared with the multi-table
// transactions: the update lands only if the job still sits in expected status.
func transitionJobTx(tx *gorm.DB, jobID string, expected domain.JobStatus, update domain.JobUpdate) error {
	result := tx.Model(&models.JobModel{}).
		Where("id = ? AND status = ?", jobID, expected).
		Updates(jobUpdateColumns(update))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("job state changed concurrently")
	}
	return nil
}

func (r *DefaultJobRepository) ListJobs(filter domain.JobFilter) ([]*domain.Job, int64, error) {
	var jobModels []models.JobModel
	var total int64

	query := r.DB.Model(&models.JobModel{})
	if filter.ClientID != "" {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.ProviderID != "" {
		query = query.Where("assigned_provider_id = ?", filter.ProviderID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&jobModels).Error; err != nil {
		return nil, 0, err
	}

	jobs := make([]*domain.Job, len(jobModels))
	for i := range jobModels {
		jobs[i] = mappers.ToDomainJob(&jobModels[i])
	}
	return jobs, total, nil
}

func (r *DefaultJobRepository) FindExpiredSoftLocks(now time.Time) ([]*domain.Job, error) {
	return r.findByStatusAndDeadline(domain.StatusSoftLocked, "lock_expires_at <= ?", now)
}

func (r *DefaultJobRepository) FindNegotiationExpired(now time.Time) ([]*domain.Job, error) {
	return r.findByStatusAndDeadline(domain.StatusNegotiationPending, "negotiation_deadline <= ?", now)
}

func (r *DefaultJobRepository) FindPaymentExpired(now time.Time) ([]*domain.Job, error) {
	return r.findByStatusAndDeadline(domain.StatusWaitingForPayment, "payment_deadline <= ?", now)
}

func (r *DefaultJobRepository) findByStatusAndDeadline(status domain.JobStatus, deadlineCond string, now time.Time) ([]*domain.Job, error) {
	var jobModels []models.JobModel
	if err := r.DB.
		Where("status = ?", status).
		Where(deadlineCond, now).
		Find(&jobModels).Error; err != nil {
		return nil, err
	}
	jobs := make([]*domain.Job, len(jobModels))
	for i := range jobModels {
		jobs[i] = mappers.ToDomainJob(&jobModels[i])
	}
	return jobs, nil
}

func (r *DefaultJobRepository) GetJobStatistics(actorID string, dateFrom, dateTo time.Time) (*domain.JobStatistics, error) {
	stats := &domain.JobStatistics{}

	base := r.DB.Model(&models.JobModel{}).
		Where("client_id = ? OR assigned_provider_id = ?", actorID, actorID)
	if !dateFrom.IsZero() {
		base = base.Where("created_at >= ?", dateFrom)
	}
	if !dateTo.IsZero() {
		base = base.Where("created_at <= ?", dateTo)
	}

	if err := base.Session(&gorm.Session{}).Count(&stats.TotalJobs).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("status = ?", domain.StatusCompleted).
		Count(&stats.CompletedJobs).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("status = ?", domain.StatusCancelled).
		Count(&stats.CancelledJobs).Error; err != nil {
		return nil, err
	}

	type aggregates struct {
		Settled float64
		AvgCost float64
	}
	var agg aggregates
	if err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(CASE WHEN status = ? THEN final_price ELSE 0 END), 0) AS settled, COALESCE(AVG(estimated_cost), 0) AS avg_cost", domain.StatusCompleted).
		Scan(&agg).Error; err != nil {
		return nil, err
	}
	stats.SettledAmount = agg.Settled
	stats.AverageJobCost = agg.AvgCost

	return stats, nil
}
