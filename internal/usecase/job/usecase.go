package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/metrics"
	jobdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/job"
	trustuc "github.com/fixway/fixway-jobs-service/internal/usecase/trust"
)

type JobUsecase interface {
	PostJob(input *jobdto.PostJobInput) (*jobdto.JobOutput, error)
	SoftLockJob(input *jobdto.SoftLockInput) (*jobdto.JobOutput, error)
	ConfirmSoftLock(input *jobdto.ConfirmSoftLockInput) (*jobdto.JobOutput, error)
	RepostJob(input *jobdto.RepostInput) (*jobdto.JobOutput, error)
	StartJob(input *jobdto.StartJobInput) (*jobdto.JobOutput, error)
	CompleteJob(input *jobdto.CompleteJobInput) (*jobdto.JobOutput, error)
	ApproveCompletion(input *jobdto.ApproveCompletionInput) (*jobdto.JobOutput, error)
	RejectCompletion(input *jobdto.RejectCompletionInput) (*jobdto.JobOutput, error)
	CancelJob(input *jobdto.CancelJobInput) (*jobdto.JobOutput, error)

	GetJobByID(jobID string, actor domain.Actor) (*jobdto.JobOutput, error)
	ListJobs(filter domain.JobFilter) (*jobdto.ListJobsOutput, error)
	GetJobStatistics(actorID string, dateFrom, dateTo time.Time) (*domain.JobStatistics, error)

	ExpireSoftLocks(ctx context.Context) error
	ExpireNegotiations(ctx context.Context) error
	ExpirePayments(ctx context.Context) error
}

// LifecycleDefaults are resolved by the caller from config so the state
// machine itself stays free of ambient settings lookups.
type LifecycleDefaults struct {
	MaxReposts          int
	RecirculationLimit  int
	SoftLockTTL         time.Duration
	NegotiationWindow   time.Duration
	PaymentWindow       time.Duration
	DefaultWarrantyDays int
}

type DefaultJobUsecase struct {
	jobRepo      domain.JobRepository
	bidRepo      domain.BidRepository
	trustUsecase trustuc.TrustUsecase
	publisher    EventPublisher
	notifier     domain.NotifierPort
	metrics      *metrics.JobMetrics
	defaults     LifecycleDefaults
}

type EventPublisher interface {
	PublishJob(event publisher.JobEvent) error
}

func NewDefaultJobUsecase(
	jobRepo domain.JobRepository,
	bidRepo domain.BidRepository,
	trustUsecase trustuc.TrustUsecase,
	eventPublisher EventPublisher,
	notifier domain.NotifierPort,
	jobMetrics *metrics.JobMetrics,
	defaults LifecycleDefaults,
) *DefaultJobUsecase {
	return &DefaultJobUsecase{
		jobRepo:      jobRepo,
		bidRepo:      bidRepo,
		trustUsecase: trustUsecase,
		publisher:    eventPublisher,
		notifier:     notifier,
		metrics:      jobMetrics,
		defaults:     defaults,
	}
}

// transition validates the pair against the state table before touching the
// repository, so an illegal move fails with a StateError naming both sides.
func (uc *DefaultJobUsecase) transition(job *domain.Job, to domain.JobStatus, update domain.JobUpdate) error {
	if !domain.CanTransition(job.Status, to) {
		return domain.NewStateError(job.Status, to)
	}
	update.Status = &to
	return uc.jobRepo.TransitionJob(job.ID, job.Status, update)
}

func (uc *DefaultJobUsecase) publishJobEvent(event publisher.JobEvent) {
	if uc.publisher == nil {
		return
	}
	go func(event publisher.JobEvent) {
		if err := uc.publisher.PublishJob(event); err != nil {
			slog.Error("failed to publish kafka JobEvent", "stage", event.Stage, "error", err.Error())
		}
	}(event)
}

func (uc *DefaultJobUsecase) notify(notification domain.Notification) {
	if uc.notifier == nil {
		return
	}
	go func(n domain.Notification) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.notifier.Send(ctx, n); err != nil {
			slog.Error("failed to send notification", "type", n.Type, "error", err.Error())
		}
	}(notification)
}
