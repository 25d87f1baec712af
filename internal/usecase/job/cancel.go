package usecase

import (
	"log/slog"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	jobdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/job"
)

func (uc *DefaultJobUsecase) CancelJob(input *jobdto.CancelJobInput) (*jobdto.JobOutput, error) {
	job, err := uc.jobRepo.GetJobByID(input.JobID)
	if err != nil {
		return nil, err
	}

	switch input.Actor.Role {
	case domain.RoleOperator:
		// Operators may cancel any non-terminal job.
	case domain.RoleClient:
		if job.ClientID != input.Actor.ID {
			return nil, domain.NewAuthorizationError("only the posting client may cancel this job")
		}
	default:
		return nil, domain.NewAuthorizationError("providers cannot cancel jobs")
	}

	if domain.IsTerminalStatus(job.Status) {
		return nil, domain.NewOperationStateError("cancel", job.Status)
	}

	reason := input.Reason
	if reason == "" {
		reason = "cancelled by " + string(input.Actor.Role)
	}
	if err := uc.transition(job, domain.StatusCancelled, domain.JobUpdate{CancelReason: &reason}); err != nil {
		return nil, err
	}
	job.Status = domain.StatusCancelled
	job.CancelReason = reason

	if job.AssignedProviderID != "" {
		if err := uc.trustUsecase.RecordCancellation(job.ClientID, domain.RoleClient); err != nil {
			slog.Error("failed to record cancellation", "client_id", job.ClientID, "error", err.Error())
		}
	}

	if uc.metrics != nil {
		uc.metrics.JobsCancelledTotal.WithLabelValues("manual").Inc()
	}
	uc.publishJobEvent(publisher.JobEvent{
		JobID:      job.ID,
		ClientID:   job.ClientID,
		ProviderID: job.AssignedProviderID,
		Status:     string(job.Status),
		Stage:      "job_cancelled",
	})
	if job.AssignedProviderID != "" {
		uc.notify(domain.Notification{
			ActorID:  job.AssignedProviderID,
			JobID:    job.ID,
			Type:     "JOB_CANCELLED",
			Title:    "Job cancelled",
			Message:  reason,
			Channels: []string{"push", "email"},
		})
	}

	return jobdto.ToJobOutput(job), nil
}
