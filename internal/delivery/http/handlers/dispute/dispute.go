package dispute

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fixway/fixway-jobs-service/internal/delivery/http/httperr"
	"github.com/fixway/fixway-jobs-service/internal/delivery/http/middleware"
	"github.com/fixway/fixway-jobs-service/internal/domain"
	usecase "github.com/fixway/fixway-jobs-service/internal/usecase/dispute"
	disputedto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/dispute"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type raiseDisputeRequest struct {
	JobID    string `json:"job_id" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=QUALITY NO_SHOW DAMAGE WARRANTY"`
	Reason   string `json:"reason" validate:"required"`
	Evidence string `json:"evidence"`
}

func NewRaiseDispute(log *slog.Logger, uc usecase.DisputeUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req raiseDisputeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError(err.Error()))
			return
		}
		if err := validate.Struct(req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError("job_id, type and reason are required"))
			return
		}

		resp, err := uc.RaiseDispute(&disputedto.RaiseDisputeInput{
			JobID:    req.JobID,
			Actor:    middleware.ActorFrom(r),
			Type:     domain.DisputeType(req.Type),
			Reason:   req.Reason,
			Evidence: req.Evidence,
		})
		if err != nil {
			log.Error("failed to raise dispute", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, resp)
	}
}

func NewGetDispute(log *slog.Logger, uc usecase.DisputeUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := uc.GetDisputeByID(chi.URLParam(r, "id"))
		if err != nil {
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

func NewListDisputes(log *slog.Logger, uc usecase.DisputeUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		resp, err := uc.ListDisputes(domain.DisputeFilter{
			JobID:  r.URL.Query().Get("job_id"),
			Status: r.URL.Query().Get("status"),
			Page:   page,
			Limit:  limit,
		})
		if err != nil {
			log.Error("failed to list disputes", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

func NewReviewDispute(log *slog.Logger, uc usecase.DisputeUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middleware.ActorFrom(r)
		if actor.Role != domain.RoleOperator {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, httperr.NewHttpError("only operators may review disputes"))
			return
		}

		resp, err := uc.ReviewDispute(&disputedto.ReviewDisputeInput{
			DisputeID:  chi.URLParam(r, "id"),
			OperatorID: actor.ID,
		})
		if err != nil {
			log.Error("failed to review dispute", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

type resolveDisputeRequest struct {
	Outcome    string `json:"outcome" validate:"required,oneof=PROVIDER_FAVORED CLIENT_FAVORED"`
	Resolution string `json:"resolution" validate:"required"`
}

func NewResolveDispute(log *slog.Logger, uc usecase.DisputeUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middleware.ActorFrom(r)
		if actor.Role != domain.RoleOperator {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, httperr.NewHttpError("only operators may resolve disputes"))
			return
		}

		var req resolveDisputeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError(err.Error()))
			return
		}
		if err := validate.Struct(req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError("outcome and resolution are required"))
			return
		}

		resp, err := uc.ResolveDispute(&disputedto.ResolveDisputeInput{
			DisputeID:  chi.URLParam(r, "id"),
			OperatorID: actor.ID,
			Outcome:    domain.DisputeOutcome(req.Outcome),
			Resolution: req.Resolution,
		})
		if err != nil {
			log.Error("failed to resolve dispute", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}
