package http

import (
	"log/slog"
	"net/http"

	bidhandler "github.com/fixway/fixway-jobs-service/internal/delivery/http/handlers/bid"
	disputehandler "github.com/fixway/fixway-jobs-service/internal/delivery/http/handlers/dispute"
	jobhandler "github.com/fixway/fixway-jobs-service/internal/delivery/http/handlers/job"
	paymenthandler "github.com/fixway/fixway-jobs-service/internal/delivery/http/handlers/payment"
	trusthandler "github.com/fixway/fixway-jobs-service/internal/delivery/http/handlers/trust"
	"github.com/fixway/fixway-jobs-service/internal/delivery/http/middleware"
	biduc "github.com/fixway/fixway-jobs-service/internal/usecase/bid"
	disputeuc "github.com/fixway/fixway-jobs-service/internal/usecase/dispute"
	jobuc "github.com/fixway/fixway-jobs-service/internal/usecase/job"
	paymentuc "github.com/fixway/fixway-jobs-service/internal/usecase/payment"
	trustuc "github.com/fixway/fixway-jobs-service/internal/usecase/trust"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Usecases struct {
	Jobs     jobuc.JobUsecase
	Bids     biduc.BidUsecase
	Payments paymentuc.PaymentUsecase
	Disputes disputeuc.DisputeUsecase
	Trust    trustuc.TrustUsecase
}

func NewRouter(log *slog.Logger, uc Usecases, registry *prometheus.Registry) http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)

	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth)

		r.Route("/jobs", func(r chi.Router) {
			r.Post("/", jobhandler.NewPostJob(log, uc.Jobs))
			r.Get("/", jobhandler.NewListJobs(log, uc.Jobs))
			r.Get("/statistics", jobhandler.NewGetJobStatistics(log, uc.Jobs))
			r.Get("/{id}", jobhandler.NewGetJob(log, uc.Jobs))
			r.Post("/{id}/lock", jobhandler.NewSoftLock(log, uc.Jobs))
			r.Post("/{id}/confirm-lock", jobhandler.NewConfirmLock(log, uc.Jobs))
			r.Post("/{id}/repost", jobhandler.NewRepost(log, uc.Jobs))
			r.Post("/{id}/start", jobhandler.NewStartJob(log, uc.Jobs))
			r.Post("/{id}/complete", jobhandler.NewCompleteJob(log, uc.Jobs))
			r.Post("/{id}/approve", jobhandler.NewApproveCompletion(log, uc.Jobs))
			r.Post("/{id}/reject-completion", jobhandler.NewRejectCompletion(log, uc.Jobs))
			r.Post("/{id}/cancel", jobhandler.NewCancelJob(log, uc.Jobs))

			r.Post("/{id}/bids", bidhandler.NewPlaceBid(log, uc.Bids))
			r.Get("/{id}/bids", bidhandler.NewListBids(log, uc.Bids))

			r.Post("/{id}/payment/split", paymenthandler.NewCreateSplit(log, uc.Payments))
			r.Get("/{id}/payment", paymenthandler.NewGetPayment(log, uc.Payments))
		})

		r.Route("/bids", func(r chi.Router) {
			r.Post("/{id}/counter", bidhandler.NewCounterOffer(log, uc.Bids))
			r.Post("/{id}/accept", bidhandler.NewAcceptBid(log, uc.Bids))
			r.Post("/{id}/reject", bidhandler.NewRejectBid(log, uc.Bids))
		})

		r.Route("/holds", func(r chi.Router) {
			r.Post("/{id}/release", paymenthandler.NewReleaseHold(log, uc.Payments))
			r.Post("/{id}/freeze", paymenthandler.NewFreezeHold(log, uc.Payments))
		})

		r.Route("/disputes", func(r chi.Router) {
			r.Post("/", disputehandler.NewRaiseDispute(log, uc.Disputes))
			r.Get("/", disputehandler.NewListDisputes(log, uc.Disputes))
			r.Get("/{id}", disputehandler.NewGetDispute(log, uc.Disputes))
			r.Post("/{id}/review", disputehandler.NewReviewDispute(log, uc.Disputes))
			r.Post("/{id}/resolve", disputehandler.NewResolveDispute(log, uc.Disputes))
		})

		r.Route("/trust", func(r chi.Router) {
			r.Get("/{actorId}", trusthandler.NewGetTrustScore(log, uc.Trust))
			r.Post("/{actorId}/recalculate", trusthandler.NewRecalculateTrustScore(log, uc.Trust))
		})

		r.Post("/reviews", trusthandler.NewSubmitReview(log, uc.Trust))
	})

	return router
}
