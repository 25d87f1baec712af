package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/metrics"
	paymentdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/payment"
	trustuc "github.com/fixway/fixway-jobs-service/internal/usecase/trust"
)

type PaymentUsecase interface {
	CreatePaymentSplit(ctx context.Context, input *paymentdto.CreatePaymentSplitInput) (*paymentdto.PaymentDetailsOutput, error)
	GetPaymentDetails(jobID string, actor domain.Actor) (*paymentdto.PaymentDetailsOutput, error)
	ReleaseWarrantyHold(input *paymentdto.ReleaseHoldInput) (*paymentdto.WarrantyHoldOutput, error)
	FreezeWarrantyHold(input *paymentdto.FreezeHoldInput) (*paymentdto.WarrantyHoldOutput, error)
	ReleaseEligibleHolds(ctx context.Context) error
}

type EventPublisher interface {
	PublishSettlement(event publisher.SettlementEvent) error
}

type DefaultPaymentUsecase struct {
	paymentRepo     domain.PaymentRepository
	jobRepo         domain.JobRepository
	disputeRepo     domain.DisputeRepository
	trustUsecase    trustuc.TrustUsecase
	commissionRules domain.CommissionRulePort
	publisher       EventPublisher
	notifier        domain.NotifierPort
	metrics         *metrics.JobMetrics
}

func NewDefaultPaymentUsecase(
	paymentRepo domain.PaymentRepository,
	jobRepo domain.JobRepository,
	disputeRepo domain.DisputeRepository,
	trustUsecase trustuc.TrustUsecase,
	commissionRules domain.CommissionRulePort,
	eventPublisher EventPublisher,
	notifier domain.NotifierPort,
	jobMetrics *metrics.JobMetrics,
) *DefaultPaymentUsecase {
	return &DefaultPaymentUsecase{
		paymentRepo:     paymentRepo,
		jobRepo:         jobRepo,
		disputeRepo:     disputeRepo,
		trustUsecase:    trustUsecase,
		commissionRules: commissionRules,
		publisher:       eventPublisher,
		notifier:        notifier,
		metrics:         jobMetrics,
	}
}

func (uc *DefaultPaymentUsecase) publishSettlementEvent(event publisher.SettlementEvent) {
	if uc.publisher == nil {
		return
	}
	go func(event publisher.SettlementEvent) {
		if err := uc.publisher.PublishSettlement(event); err != nil {
			slog.Error("failed to publish kafka SettlementEvent", "stage", event.Stage, "error", err.Error())
		}
	}(event)
}

func (uc *DefaultPaymentUsecase) notify(notification domain.Notification) {
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
