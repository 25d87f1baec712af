package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	publisher "github.com/fixway/fixway-jobs-service/internal/infrastructure/kafka"
	"github.com/fixway/fixway-jobs-service/internal/infrastructure/metrics"
	biddto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/bid"
	trustuc "github.com/fixway/fixway-jobs-service/internal/usecase/trust"
)

type BidUsecase interface {
	PlaceBid(input *biddto.PlaceBidInput) (*biddto.BidOutput, error)
	CounterOffer(input *biddto.CounterOfferInput) (*biddto.BidOutput, error)
	AcceptBid(input *biddto.AcceptBidInput) (*biddto.AcceptBidOutput, error)
	RejectBid(input *biddto.RejectBidInput) (*biddto.BidOutput, error)
	GetJobBids(jobID string, actor domain.Actor) ([]*biddto.BidOutput, error)
}

type EventPublisher interface {
	PublishJob(event publisher.JobEvent) error
}

type DefaultBidUsecase struct {
	jobRepo       domain.JobRepository
	bidRepo       domain.BidRepository
	trustUsecase  trustuc.TrustUsecase
	publisher     EventPublisher
	notifier      domain.NotifierPort
	metrics       *metrics.JobMetrics
	paymentWindow time.Duration
}

func NewDefaultBidUsecase(
	jobRepo domain.JobRepository,
	bidRepo domain.BidRepository,
	trustUsecase trustuc.TrustUsecase,
	eventPublisher EventPublisher,
	notifier domain.NotifierPort,
	jobMetrics *metrics.JobMetrics,
	paymentWindow time.Duration,
) *DefaultBidUsecase {
	return &DefaultBidUsecase{
		jobRepo:       jobRepo,
		bidRepo:       bidRepo,
		trustUsecase:  trustUsecase,
		publisher:     eventPublisher,
		notifier:      notifier,
		metrics:       jobMetrics,
		paymentWindow: paymentWindow,
	}
}

func (uc *DefaultBidUsecase) GetJobBids(jobID string, actor domain.Actor) ([]*biddto.BidOutput, error) {
	job, err := uc.jobRepo.GetJobByID(jobID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleOperator && actor.ID != job.ClientID {
		// Providers only see their own bids.
		bids, err := uc.bidRepo.GetBidsByJobID(jobID)
		if err != nil {
			return nil, err
		}
		out := make([]*biddto.BidOutput, 0, len(bids))
		for _, bid := range bids {
			if bid.ProviderID == actor.ID {
				out = append(out, biddto.ToBidOutput(bid))
			}
		}
		return out, nil
	}

	bids, err := uc.bidRepo.GetBidsByJobID(jobID)
	if err != nil {
		return nil, err
	}
	out := make([]*biddto.BidOutput, len(bids))
	for i, bid := range bids {
		out[i] = biddto.ToBidOutput(bid)
	}
	return out, nil
}

func (uc *DefaultBidUsecase) publishJobEvent(event publisher.JobEvent) {
	if uc.publisher == nil {
		return
	}
	go func(event publisher.JobEvent) {
		if err := uc.publisher.PublishJob(event); err != nil {
			slog.Error("failed to publish kafka JobEvent", "stage", event.Stage, "error", err.Error())
		}
	}(event)
}

func (uc *DefaultBidUsecase) notify(notification domain.Notification) {
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
