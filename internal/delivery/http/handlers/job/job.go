package job

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fixway/fixway-jobs-service/internal/delivery/http/httperr"
	"github.com/fixway/fixway-jobs-service/internal/delivery/http/middleware"
	"github.com/fixway/fixway-jobs-service/internal/domain"
	jobdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/job"
	usecase "github.com/fixway/fixway-jobs-service/internal/usecase/job"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type postJobRequest struct {
	Title               string  `json:"title" validate:"required"`
	Category            string  `json:"category" validate:"required"`
	Region              string  `json:"region"`
	EstimatedCost       float64 `json:"estimated_cost" validate:"required,gt=0"`
	WarrantyDays        int     `json:"warranty_days" validate:"gte=0"`
	MaxReposts          int     `json:"max_reposts" validate:"gte=0"`
	NegotiationDeadline int     `json:"negotiation_deadline_minutes" validate:"gte=0"`
}

func NewPostJob(log *slog.Logger, uc usecase.JobUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middleware.ActorFrom(r)
		if actor.Role != domain.RoleClient {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, httperr.NewHttpError("only clients may post jobs"))
			return
		}

		var req postJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError(err.Error()))
			return
		}
		if err := validate.Struct(req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError("one of the required fields is missing or invalid"))
			return
		}

		resp, err := uc.PostJob(&jobdto.PostJobInput{
			ClientID:            actor.ID,
			Title:               req.Title,
			Category:            req.Category,
			Region:              req.Region,
			EstimatedCost:       req.EstimatedCost,
			WarrantyDays:        req.WarrantyDays,
			MaxReposts:          req.MaxReposts,
			NegotiationDeadline: req.NegotiationDeadline,
		})
		if err != nil {
			log.Error("failed to post job", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, resp)
	}
}

func NewGetJob(log *slog.Logger, uc usecase.JobUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := uc.GetJobByID(chi.URLParam(r, "id"), middleware.ActorFrom(r))
		if err != nil {
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

func NewListJobs(log *slog.Logger, uc usecase.JobUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		resp, err := uc.ListJobs(domain.JobFilter{
			ClientID:   r.URL.Query().Get("client_id"),
			ProviderID: r.URL.Query().Get("provider_id"),
			Status:     r.URL.Query().Get("status"),
			Category:   r.URL.Query().Get("category"),
			Region:     r.URL.Query().Get("region"),
			Page:       page,
			Limit:      limit,
		})
		if err != nil {
			log.Error("failed to list jobs", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

func NewGetJobStatistics(log *slog.Logger, uc usecase.JobUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middleware.ActorFrom(r)

		var dateFrom, dateTo time.Time
		if raw := r.URL.Query().Get("date_from"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, httperr.NewHttpError("date_from must be RFC3339"))
				return
			}
			dateFrom = parsed
		}
		if raw := r.URL.Query().Get("date_to"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, httperr.NewHttpError("date_to must be RFC3339"))
				return
			}
			dateTo = parsed
		}

		resp, err := uc.GetJobStatistics(actor.ID, dateFrom, dateTo)
		if err != nil {
			log.Error("failed to get job statistics", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

func NewSoftLock(log *slog.Logger, uc usecase.JobUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middleware.ActorFrom(r)
		if actor.Role != domain.RoleProvider {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, httperr.NewHttpError("only providers may reserve jobs"))
			return
		}

		resp, err := uc.SoftLockJob(&jobdto.SoftLockInput{
			JobID:      chi.URLParam(r, "id"),
			ProviderID: actor.ID,
		})
		if err != nil {
			log.Error("failed to soft lock job", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

func NewConfirmLock(log *slog.Logger, uc usecase.JobUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := uc.ConfirmSoftLock(&jobdto.ConfirmSoftLockInput{
			JobID:    chi.URLParam(r, "id"),
			ClientID: middleware.ActorFrom(r).ID,
		})
		if err != nil {
			log.Error("failed to confirm soft lock", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

func NewRepost(log *slog.Logger, uc usecase.JobUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reasonRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		resp, err := uc.RepostJob(&jobdto.RepostInput{
			JobID:  chi.URLParam(r, "id"),
			Actor:  middleware.ActorFrom(r),
			Reason: req.Reason,
		})
		if err != nil {
			log.Error("failed to repost job", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

func NewStartJob(log *slog.Logger, uc usecase.JobUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := uc.StartJob(&jobdto.StartJobInput{
			JobID:      chi.URLParam(r, "id"),
			ProviderID: middleware.ActorFrom(r).ID,
		})
		if err != nil {
			log.Error("failed to start job", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

func NewCompleteJob(log *slog.Logger, uc usecase.JobUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := uc.CompleteJob(&jobdto.CompleteJobInput{
			JobID:      chi.URLParam(r, "id"),
			ProviderID: middleware.ActorFrom(r).ID,
		})
		if err != nil {
			log.Error("failed to complete job", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

func NewApproveCompletion(log *slog.Logger, uc usecase.JobUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := uc.ApproveCompletion(&jobdto.ApproveCompletionInput{
			JobID:    chi.URLParam(r, "id"),
			ClientID: middleware.ActorFrom(r).ID,
		})
		if err != nil {
			log.Error("failed to approve completion", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

func NewRejectCompletion(log *slog.Logger, uc usecase.JobUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reasonRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		resp, err := uc.RejectCompletion(&jobdto.RejectCompletionInput{
			JobID:    chi.URLParam(r, "id"),
			ClientID: middleware.ActorFrom(r).ID,
			Reason:   req.Reason,
		})
		if err != nil {
			log.Error("failed to reject completion", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

func NewCancelJob(log *slog.Logger, uc usecase.JobUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reasonRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		resp, err := uc.CancelJob(&jobdto.CancelJobInput{
			JobID:  chi.URLParam(r, "id"),
			Actor:  middleware.ActorFrom(r),
			Reason: req.Reason,
		})
		if err != nil {
			log.Error("failed to cancel job", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}
