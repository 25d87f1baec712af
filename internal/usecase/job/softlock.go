package usecase

import (
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	jobdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/job"
)

// SoftLockJob gives a provider a time-boxed reservation on an open job.
// Only one provider can hold the lock; losing the race is a conflict.
func (uc *DefaultJobUsecase) SoftLockJob(input *jobdto.SoftLockInput) (*jobdto.JobOutput, error) {
	job, err := uc.jobRepo.GetJobByID(input.JobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.StatusPending {
		return nil, domain.NewOperationStateError("soft lock", job.Status)
	}

	rules, err := uc.trustUsecase.AutoRulesFor(input.ProviderID, domain.RoleProvider)
	if err != nil {
		return nil, err
	}
	if rules.AutoRejectBids {
		return nil, domain.NewAuthorizationError("provider risk level blocks job reservations")
	}

	expiresAt := time.Now().Add(uc.defaults.SoftLockTTL)
	expiresPtr := &expiresAt
	if err := uc.transition(job, domain.StatusSoftLocked, domain.JobUpdate{
		LockedBy:      &input.ProviderID,
		LockExpiresAt: &expiresPtr,
	}); err != nil {
		return nil, err
	}

	job.Status = domain.StatusSoftLocked
	job.LockedBy = input.ProviderID
	job.LockExpiresAt = &expiresAt

	uc.publishJobEvent(publisher.JobEvent{
		JobID:      job.ID,
		ClientID:   job.ClientID,
		ProviderID: input.ProviderID,
		Status:     string(job.Status),
		Stage:      "soft_locked",
	})
	uc.notify(domain.Notification{
		ActorID:  job.ClientID,
		JobID:    job.ID,
		Type:     "JOB_RESERVED",
		Title:    "Provider reserved your job",
		Message:  "A provider reserved your job at the estimated cost. Confirm to assign them.",
		Channels: []string{"push"},
	})

	return jobdto.ToJobOutput(job), nil
}

// ConfirmSoftLock converts a live reservation into a firm assignment at the
// estimated cost. An expired lock is reclaimed on the spot.
func (uc *DefaultJobUsecase) ConfirmSoftLock(input *jobdto.ConfirmSoftLockInput) (*jobdto.JobOutput, error) {
	job, err := uc.jobRepo.GetJobByID(input.JobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != input.ClientID {
		return nil, domain.NewAuthorizationError("only the posting client may confirm a reservation")
	}
	if job.Status != domain.StatusSoftLocked {
		return nil, domain.NewOperationStateError("confirm reservation", job.Status)
	}

	now := time.Now()
	if !job.SoftLockActive(now) {
		// Lazy expiry: reclaim the lock and report the real state.
		if err := uc.releaseSoftLock(job); err != nil {
			return nil, err
		}
		return nil, domain.NewConflictError("soft lock has expired")
	}

	finalPrice := job.EstimatedCost
	priceLocked := true
	providerID := job.LockedBy
	paymentDeadline := now.Add(uc.defaults.PaymentWindow)
	deadlinePtr := &paymentDeadline
	var noLockExpiry *time.Time
	emptyLock := ""

	if err := uc.transition(job, domain.StatusWaitingForPayment, domain.JobUpdate{
		FinalPrice:         &finalPrice,
		PriceLocked:        &priceLocked,
		AssignedProviderID: &providerID,
		PaymentDeadline:    &deadlinePtr,
		LockedBy:           &emptyLock,
		LockExpiresAt:      &noLockExpiry,
	}); err != nil {
		return nil, err
	}

	job.Status = domain.StatusWaitingForPayment
	job.FinalPrice = finalPrice
	job.PriceLocked = true
	job.AssignedProviderID = providerID
	job.PaymentDeadline = &paymentDeadline
	job.LockedBy = ""
	job.LockExpiresAt = nil

	uc.publishJobEvent(publisher.JobEvent{
		JobID:      job.ID,
		ClientID:   job.ClientID,
		ProviderID: providerID,
		Status:     string(job.Status),
		Amount:     finalPrice,
		Stage:      "reservation_confirmed",
	})
	uc.notify(domain.Notification{
		ActorID:  providerID,
		JobID:    job.ID,
		Type:     "RESERVATION_CONFIRMED",
		Title:    "Reservation confirmed",
		Message:  "The client confirmed your reservation. Awaiting payment.",
		Channels: []string{"push", "email"},
	})

	return jobdto.ToJobOutput(job), nil
}

// releaseSoftLock returns an expired reservation to the open pool.
func (uc *DefaultJobUsecase) releaseSoftLock(job *domain.Job) error {
	emptyLock := ""
	var noLockExpiry *time.Time
	recirculation := job.RecirculationCount + 1
	err := uc.transition(job, domain.StatusPending, domain.JobUpdate{
		LockedBy:           &emptyLock,
		LockExpiresAt:      &noLockExpiry,
		RecirculationCount: &recirculation,
	})
	if err != nil && !domain.IsKind(err, domain.KindConflict) {
		return err
	}
	return nil
}
