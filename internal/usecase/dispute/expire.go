package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	disputedto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/dispute"
)

// ResolveExpiredReviews auto-resolves disputes no operator picked up before
// the review deadline. The default ruling favors the client, so a stalled
// review never silently pays the provider out.
func (uc *DefaultDisputeUsecase) ResolveExpiredReviews(ctx context.Context) error {
	disputes, err := uc.disputeRepo.FindReviewExpired(time.Now())
	if err != nil {
		return err
	}
	for _, dispute := range disputes {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if _, err := uc.ResolveDispute(&disputedto.ResolveDisputeInput{
			DisputeID:  dispute.ID,
			OperatorID: "scheduler",
			Outcome:    domain.OutcomeClientFavored,
			Resolution: "review deadline passed without an operator ruling",
		}); err != nil {
			slog.Error("failed to auto-resolve dispute", "disputeID", dispute.ID, "error", err.Error())
		}
	}
	return nil
}
