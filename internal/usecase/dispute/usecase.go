package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/metrics"
	disputedto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/dispute"
	trustuc "github.com/fixway/fixway-jobs-service/internal/usecase/trust"
)

type DisputeUsecase interface {
	RaiseDispute(input *disputedto.RaiseDisputeInput) (*disputedto.DisputeOutput, error)
	ReviewDispute(input *disputedto.ReviewDisputeInput) (*disputedto.DisputeOutput, error)
	ResolveDispute(input *disputedto.ResolveDisputeInput) (*disputedto.DisputeOutput, error)
	GetDisputeByID(disputeID string) (*disputedto.DisputeOutput, error)
	ListDisputes(filter domain.DisputeFilter) (*disputedto.ListDisputesOutput, error)
	ResolveExpiredReviews(ctx context.Context) error
}

type EventPublisher interface {
	PublishDispute(event publisher.DisputeEvent) error
}

type DefaultDisputeUsecase struct {
	disputeRepo  domain.DisputeRepository
	paymentRepo  domain.PaymentRepository
	jobRepo      domain.JobRepository
	trustUsecase trustuc.TrustUsecase
	publisher    EventPublisher
	notifier     domain.NotifierPort
	metrics      *metrics.JobMetrics
	reviewTTL    time.Duration
}

func NewDefaultDisputeUsecase(
	disputeRepo domain.DisputeRepository,
	paymentRepo domain.PaymentRepository,
	jobRepo domain.JobRepository,
	trustUsecase trustuc.TrustUsecase,
	eventPublisher EventPublisher,
	notifier domain.NotifierPort,
	jobMetrics *metrics.JobMetrics,
	reviewTTL time.Duration,
) *DefaultDisputeUsecase {
	return &DefaultDisputeUsecase{
		disputeRepo:  disputeRepo,
		paymentRepo:  paymentRepo,
		jobRepo:      jobRepo,
		trustUsecase: trustUsecase,
		publisher:    eventPublisher,
		notifier:     notifier,
		metrics:      jobMetrics,
		reviewTTL:    reviewTTL,
	}
}

func (uc *DefaultDisputeUsecase) publishDisputeEvent(event publisher.DisputeEvent) {
	if uc.publisher == nil {
		return
	}
	go func(event publisher.DisputeEvent) {
		if err := uc.publisher.PublishDispute(event); err != nil {
			slog.Error("failed to publish kafka DisputeEvent", "disputeID", event.DisputeID, "error", err.Error())
		}
	}(event)
}

func (uc *DefaultDisputeUsecase) notify(notification domain.Notification) {
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
