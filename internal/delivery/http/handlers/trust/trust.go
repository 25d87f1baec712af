package trust

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fixway/fixway-jobs-service/internal/delivery/http/httperr"
	"github.com/fixway/fixway-jobs-service/internal/delivery/http/middleware"
	"github.com/fixway/fixway-jobs-service/internal/domain"
	trustdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/trust"
	usecase "github.com/fixway/fixway-jobs-service/internal/usecase/trust"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func roleFromQuery(r *http.Request) (domain.Role, bool) {
	role := domain.Role(r.URL.Query().Get("role"))
	if role == "" {
		role = domain.RoleProvider
	}
	return role, domain.ValidRole(role)
}

func NewGetTrustScore(log *slog.Logger, uc usecase.TrustUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromQuery(r)
		if !ok {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError("unknown role"))
			return
		}

		resp, err := uc.GetTrustScore(chi.URLParam(r, "actorId"), role)
		if err != nil {
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

func NewRecalculateTrustScore(log *slog.Logger, uc usecase.TrustUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if middleware.ActorFrom(r).Role != domain.RoleOperator {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, httperr.NewHttpError("only operators may force a recalculation"))
			return
		}

		role, ok := roleFromQuery(r)
		if !ok {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError("unknown role"))
			return
		}

		resp, err := uc.RecalculateTrustScore(chi.URLParam(r, "actorId"), role)
		if err != nil {
			log.Error("failed to recalculate trust score", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

type submitReviewRequest struct {
	JobID     string  `json:"job_id" validate:"required"`
	SubjectID string  `json:"subject_id" validate:"required"`
	Rating    float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string  `json:"comment"`
}

func NewSubmitReview(log *slog.Logger, uc usecase.TrustUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError(err.Error()))
			return
		}
		if err := validate.Struct(req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError("job_id, subject_id and a 1-5 rating are required"))
			return
		}

		if err := uc.SubmitReview(&trustdto.SubmitReviewInput{
			JobID:     req.JobID,
			Author:    middleware.ActorFrom(r),
			SubjectID: req.SubjectID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}); err != nil {
			log.Error("failed to submit review", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}
