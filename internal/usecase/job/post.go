package usecase

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	jobdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/job"
	"github.com/google/uuid"
)

func (uc *DefaultJobUsecase) PostJob(input *jobdto.PostJobInput) (*jobdto.JobOutput, error) {
	if input.ClientID == "" {
		return nil, domain.NewValidationError("client id is required")
	}
	if input.Title == "" {
		return nil, domain.NewValidationError("title is required")
	}
	if input.EstimatedCost <= 0 {
		return nil, domain.NewValidationError("estimated cost must be positive")
	}

	maxReposts := input.MaxReposts
	if maxReposts <= 0 {
		maxReposts = uc.defaults.MaxReposts
	}
	warrantyDays := input.WarrantyDays
	if warrantyDays <= 0 {
		warrantyDays = uc.defaults.DefaultWarrantyDays
	}
	window := uc.defaults.NegotiationWindow
	if input.NegotiationDeadline > 0 {
		window = time.Duration(input.NegotiationDeadline) * time.Minute
	}

	now := time.Now()
	job := &domain.Job{
		ID:                  uuid.New().String(),
		ClientID:            input.ClientID,
		Title:               input.Title,
		Category:            input.Category,
		Region:              input.Region,
		Status:              domain.StatusPending,
		EstimatedCost:       domain.Round2(input.EstimatedCost),
		MaxReposts:          maxReposts,
		NegotiationDeadline: now.Add(window),
		WarrantyDays:        warrantyDays,
		CreatedAt:           now,
	}
	if err := uc.jobRepo.CreateJob(job); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.JobsCreatedTotal.WithLabelValues(job.Category).Inc()
	}
	uc.publishJobEvent(publisher.JobEvent{
		JobID:    job.ID,
		ClientID: job.ClientID,
		Status:   string(job.Status),
		Amount:   job.EstimatedCost,
		Stage:    "job_posted",
	})

	return jobdto.ToJobOutput(job), nil
}
