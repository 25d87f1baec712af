package usecase

import (
	"log/slog"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	jobdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/job"
)

// RepostJob returns a timed-out job to the open pool, or cancels it for good
// once the repost ceiling is hit. A job that already burned its reposts (or
// the global re-circulation ceiling) is cancelled and the posting client's
// trust score takes the repost-exhaustion penalty.
func (uc *DefaultJobUsecase) RepostJob(input *jobdto.RepostInput) (*jobdto.JobOutput, error) {
	job, err := uc.jobRepo.GetJobByID(input.JobID)
	if err != nil {
		return nil, err
	}

	switch input.Actor.Role {
	case domain.RoleOperator:
	case domain.RoleClient:
		if job.ClientID != input.Actor.ID {
			return nil, domain.NewAuthorizationError("only the posting client may repost this job")
		}
	default:
		return nil, domain.NewAuthorizationError("providers cannot repost jobs")
	}

	now := time.Now()
	switch job.Status {
	case domain.StatusPending, domain.StatusNegotiationPending:
		if input.Actor.Role != domain.RoleOperator && job.NegotiationDeadline.After(now) {
			return nil, domain.NewValidationError("negotiation deadline has not passed yet")
		}
	case domain.StatusWaitingForPayment:
		if input.Actor.Role != domain.RoleOperator && (job.PaymentDeadline == nil || job.PaymentDeadline.After(now)) {
			return nil, domain.NewValidationError("payment deadline has not passed yet")
		}
	default:
		return nil, domain.NewOperationStateError("repost", job.Status)
	}

	if job.RepostCount >= job.MaxReposts || job.RecirculationCount >= uc.defaults.RecirculationLimit {
		return uc.cancelExhausted(job)
	}

	next := domain.StatusPending
	repostCount := job.RepostCount + 1
	recirculation := job.RecirculationCount + 1
	deadline := now.Add(uc.defaults.NegotiationWindow)
	emptyProvider := ""
	zeroPrice := 0.0
	unlocked := false
	emptyLock := ""
	var noLockExpiry, noPaymentDeadline *time.Time

	err = uc.jobRepo.TransitionJob(job.ID, job.Status, domain.JobUpdate{
		Status:              &next,
		RepostCount:         &repostCount,
		RecirculationCount:  &recirculation,
		NegotiationDeadline: &deadline,
		AssignedProviderID:  &emptyProvider,
		FinalPrice:          &zeroPrice,
		PriceLocked:         &unlocked,
		LockedBy:            &emptyLock,
		LockExpiresAt:       &noLockExpiry,
		PaymentDeadline:     &noPaymentDeadline,
	})
	if err != nil {
		return nil, err
	}

	job.Status = next
	job.RepostCount = repostCount
	job.RecirculationCount = recirculation
	job.NegotiationDeadline = deadline
	job.AssignedProviderID = ""
	job.FinalPrice = 0
	job.PriceLocked = false
	job.LockedBy = ""
	job.LockExpiresAt = nil
	job.PaymentDeadline = nil

	if uc.metrics != nil {
		uc.metrics.JobsRepostedTotal.Inc()
	}
	uc.publishJobEvent(publisher.JobEvent{
		JobID:    job.ID,
		ClientID: job.ClientID,
		Status:   string(job.Status),
		Stage:    "job_reposted",
	})

	return jobdto.ToJobOutput(job), nil
}

func (uc *DefaultJobUsecase) cancelExhausted(job *domain.Job) (*jobdto.JobOutput, error) {
	reason := "max reposts exceeded"
	if err := uc.transition(job, domain.StatusCancelled, domain.JobUpdate{CancelReason: &reason}); err != nil {
		return nil, err
	}
	job.Status = domain.StatusCancelled
	job.CancelReason = reason

	if err := uc.trustUsecase.ApplyRepostPenalty(job.ClientID); err != nil {
		slog.Error("failed to apply repost penalty", "client_id", job.ClientID, "error", err.Error())
	}

	if uc.metrics != nil {
		uc.metrics.JobsCancelledTotal.WithLabelValues("max_reposts").Inc()
	}
	uc.publishJobEvent(publisher.JobEvent{
		JobID:    job.ID,
		ClientID: job.ClientID,
		Status:   string(job.Status),
		Stage:    "repost_exhausted",
	})
	uc.notify(domain.Notification{
		ActorID:  job.ClientID,
		JobID:    job.ID,
		Type:     "JOB_EXPIRED",
		Title:    "Job cancelled",
		Message:  "Your job ran out of reposts and was cancelled.",
		Channels: []string{"push", "email"},
	})

	return jobdto.ToJobOutput(job), nil
}
