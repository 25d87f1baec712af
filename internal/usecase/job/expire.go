package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	jobdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/job"
)

// Expiry sweeps. Deadlines are plain timestamps checked lazily on access;
// these sweeps guarantee liveness for jobs nobody touches anymore. They are
// driven by the external scheduler, one failure never stops the batch.

func (uc *DefaultJobUsecase) ExpireSoftLocks(ctx context.Context) error {
	jobs, err := uc.jobRepo.FindExpiredSoftLocks(time.Now())
	if err != nil {
		return err
	}
	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := uc.releaseSoftLock(job); err != nil {
			slog.Error("failed to release expired soft lock", "job_id", job.ID, "error", err.Error())
		}
	}
	return nil
}

func (uc *DefaultJobUsecase) ExpireNegotiations(ctx context.Context) error {
	jobs, err := uc.jobRepo.FindNegotiationExpired(time.Now())
	if err != nil {
		return err
	}
	uc.repostExpired(ctx, jobs, "negotiation deadline passed")
	return nil
}

func (uc *DefaultJobUsecase) ExpirePayments(ctx context.Context) error {
	jobs, err := uc.jobRepo.FindPaymentExpired(time.Now())
	if err != nil {
		return err
	}
	uc.repostExpired(ctx, jobs, "payment deadline passed")
	return nil
}

func (uc *DefaultJobUsecase) repostExpired(ctx context.Context, jobs []*domain.Job, reason string) {
	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}
		_, err := uc.RepostJob(&jobdto.RepostInput{
			JobID:  job.ID,
			Actor:  domain.Actor{ID: "scheduler", Role: domain.RoleOperator},
			Reason: reason,
		})
		if err != nil {
			slog.Error("failed to repost expired job", "job_id", job.ID, "error", err.Error())
		}
	}
}
