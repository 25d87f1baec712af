package bid

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fixway/fixway-jobs-service/internal/delivery/http/httperr"
	"github.com/fixway/fixway-jobs-service/internal/delivery/http/middleware"
	"github.com/fixway/fixway-jobs-service/internal/domain"
	biddto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/bid"
	usecase "github.com/fixway/fixway-jobs-service/internal/usecase/bid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type placeBidRequest struct {
	OfferedPrice float64 `json:"offered_price" validate:"required,gt=0"`
}

func NewPlaceBid(log *slog.Logger, uc usecase.BidUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middleware.ActorFrom(r)
		if actor.Role != domain.RoleProvider {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, httperr.NewHttpError("only providers may place bids"))
			return
		}

		var req placeBidRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError(err.Error()))
			return
		}
		if err := validate.Struct(req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError("offered_price must be positive"))
			return
		}

		resp, err := uc.PlaceBid(&biddto.PlaceBidInput{
			JobID:        chi.URLParam(r, "id"),
			ProviderID:   actor.ID,
			OfferedPrice: req.OfferedPrice,
		})
		if err != nil {
			log.Error("failed to place bid", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, resp)
	}
}

func NewListBids(log *slog.Logger, uc usecase.BidUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := uc.GetJobBids(chi.URLParam(r, "id"), middleware.ActorFrom(r))
		if err != nil {
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

type counterOfferRequest struct {
	NewPrice float64 `json:"new_price" validate:"required,gt=0"`
}

func NewCounterOffer(log *slog.Logger, uc usecase.BidUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req counterOfferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError(err.Error()))
			return
		}
		if err := validate.Struct(req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError("new_price must be positive"))
			return
		}

		resp, err := uc.CounterOffer(&biddto.CounterOfferInput{
			BidID:    chi.URLParam(r, "id"),
			ClientID: middleware.ActorFrom(r).ID,
			NewPrice: req.NewPrice,
		})
		if err != nil {
			log.Error("failed to counter bid", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

func NewAcceptBid(log *slog.Logger, uc usecase.BidUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := uc.AcceptBid(&biddto.AcceptBidInput{
			BidID: chi.URLParam(r, "id"),
			Actor: middleware.ActorFrom(r),
		})
		if err != nil {
			log.Error("failed to accept bid", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

type rejectBidRequest struct {
	Reason string `json:"reason"`
}

func NewRejectBid(log *slog.Logger, uc usecase.BidUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req rejectBidRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		resp, err := uc.RejectBid(&biddto.RejectBidInput{
			BidID:  chi.URLParam(r, "id"),
			Actor:  middleware.ActorFrom(r),
			Reason: req.Reason,
		})
		if err != nil {
			log.Error("failed to reject bid", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}
