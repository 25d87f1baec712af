package usecase

import (
	"log/slog"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	jobdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/job"
)

func (uc *DefaultJobUsecase) StartJob(input *jobdto.StartJobInput) (*jobdto.JobOutput, error) {
	job, err := uc.jobRepo.GetJobByID(input.JobID)
	if err != nil {
		return nil, err
	}
	if job.AssignedProviderID != input.ProviderID {
		return nil, domain.NewAuthorizationError("only the assigned provider may start the job")
	}
	if job.Status != domain.StatusAssigned {
		return nil, domain.NewOperationStateError("start", job.Status)
	}

	if err := uc.transition(job, domain.StatusInProgress, domain.JobUpdate{}); err != nil {
		return nil, err
	}
	job.Status = domain.StatusInProgress

	uc.publishJobEvent(publisher.JobEvent{
		JobID:      job.ID,
		ClientID:   job.ClientID,
		ProviderID: job.AssignedProviderID,
		Status:     string(job.Status),
		Stage:      "job_started",
	})

	return jobdto.ToJobOutput(job), nil
}

func (uc *DefaultJobUsecase) CompleteJob(input *jobdto.CompleteJobInput) (*jobdto.JobOutput, error) {
	job, err := uc.jobRepo.GetJobByID(input.JobID)
	if err != nil {
		return nil, err
	}
	if job.AssignedProviderID != input.ProviderID {
		return nil, domain.NewAuthorizationError("only the assigned provider may complete the job")
	}
	if job.Status != domain.StatusInProgress {
		return nil, domain.NewOperationStateError("complete", job.Status)
	}

	if err := uc.transition(job, domain.StatusCompletionPendingApproval, domain.JobUpdate{}); err != nil {
		return nil, err
	}
	job.Status = domain.StatusCompletionPendingApproval

	uc.notify(domain.Notification{
		ActorID:  job.ClientID,
		JobID:    job.ID,
		Type:     "COMPLETION_SUBMITTED",
		Title:    "Work completed",
		Message:  "Your provider marked the job as done. Review and approve.",
		Channels: []string{"push", "email"},
	})

	return jobdto.ToJobOutput(job), nil
}

// ApproveCompletion closes the job. The warranty hold created at payment time
// keeps running; it becomes releasable once its effective end date passes.
func (uc *DefaultJobUsecase) ApproveCompletion(input *jobdto.ApproveCompletionInput) (*jobdto.JobOutput, error) {
	job, err := uc.jobRepo.GetJobByID(input.JobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != input.ClientID {
		return nil, domain.NewAuthorizationError("only the posting client may approve completion")
	}
	if job.Status != domain.StatusCompletionPendingApproval {
		return nil, domain.NewOperationStateError("approve completion", job.Status)
	}

	if err := uc.transition(job, domain.StatusCompleted, domain.JobUpdate{}); err != nil {
		return nil, err
	}
	job.Status = domain.StatusCompleted

	if err := uc.trustUsecase.RecordCompletion(job.AssignedProviderID, domain.RoleProvider); err != nil {
		slog.Error("failed to record completion", "provider_id", job.AssignedProviderID, "error", err.Error())
	}

	if uc.metrics != nil {
		uc.metrics.JobsCompletedTotal.WithLabelValues(job.Category).Inc()
	}
	uc.publishJobEvent(publisher.JobEvent{
		JobID:      job.ID,
		ClientID:   job.ClientID,
		ProviderID: job.AssignedProviderID,
		Status:     string(job.Status),
		Amount:     job.FinalPrice,
		Stage:      "job_completed",
	})
	uc.notify(domain.Notification{
		ActorID:  job.AssignedProviderID,
		JobID:    job.ID,
		Type:     "COMPLETION_APPROVED",
		Title:    "Completion approved",
		Message:  "The client approved your work. The warranty window is now running.",
		Channels: []string{"push", "email"},
	})

	return jobdto.ToJobOutput(job), nil
}

func (uc *DefaultJobUsecase) RejectCompletion(input *jobdto.RejectCompletionInput) (*jobdto.JobOutput, error) {
	job, err := uc.jobRepo.GetJobByID(input.JobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != input.ClientID {
		return nil, domain.NewAuthorizationError("only the posting client may reject completion")
	}
	if job.Status != domain.StatusCompletionPendingApproval {
		return nil, domain.NewOperationStateError("reject completion", job.Status)
	}

	if err := uc.transition(job, domain.StatusInProgress, domain.JobUpdate{}); err != nil {
		return nil, err
	}
	job.Status = domain.StatusInProgress

	uc.notify(domain.Notification{
		ActorID:  job.AssignedProviderID,
		JobID:    job.ID,
		Type:     "COMPLETION_REJECTED",
		Title:    "Completion rejected",
		Message:  input.Reason,
		Channels: []string{"push"},
	})

	return jobdto.ToJobOutput(job), nil
}
