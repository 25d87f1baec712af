package payment

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fixway/fixway-jobs-service/internal/delivery/http/httperr"
	"github.com/fixway/fixway-jobs-service/internal/delivery/http/middleware"
	paymentdto "github.com/fixway/fixway-jobs-service/internal/usecase/dto/payment"
	usecase "github.com/fixway/fixway-jobs-service/internal/usecase/payment"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type splitRequest struct {
	Method         string   `json:"method"`
	CommissionRate *float64 `json:"commission_rate,omitempty"`
	HoldPercentage *float64 `json:"hold_percentage,omitempty"`
	WarrantyDays   *int     `json:"warranty_days,omitempty"`
}

func NewCreateSplit(log *slog.Logger, uc usecase.PaymentUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req splitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, httperr.NewHttpError(err.Error()))
			return
		}

		resp, err := uc.CreatePaymentSplit(r.Context(), &paymentdto.CreatePaymentSplitInput{
			JobID:          chi.URLParam(r, "id"),
			Actor:          middleware.ActorFrom(r),
			Method:         req.Method,
			CommissionRate: req.CommissionRate,
			HoldPercentage: req.HoldPercentage,
			WarrantyDays:   req.WarrantyDays,
		})
		if err != nil {
			log.Error("failed to create payment split", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, resp)
	}
}

func NewGetPayment(log *slog.Logger, uc usecase.PaymentUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := uc.GetPaymentDetails(chi.URLParam(r, "id"), middleware.ActorFrom(r))
		if err != nil {
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

type holdActionRequest struct {
	Reason string `json:"reason"`
}

func NewReleaseHold(log *slog.Logger, uc usecase.PaymentUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req holdActionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		resp, err := uc.ReleaseWarrantyHold(&paymentdto.ReleaseHoldInput{
			HoldID: chi.URLParam(r, "id"),
			Actor:  middleware.ActorFrom(r),
			Reason: req.Reason,
		})
		if err != nil {
			log.Error("failed to release warranty hold", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}

func NewFreezeHold(log *slog.Logger, uc usecase.PaymentUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req holdActionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		resp, err := uc.FreezeWarrantyHold(&paymentdto.FreezeHoldInput{
			HoldID: chi.URLParam(r, "id"),
			Actor:  middleware.ActorFrom(r),
			Reason: req.Reason,
		})
		if err != nil {
			log.Error("failed to freeze warranty hold", "error", err.Error())
			httperr.Render(w, r, err)
			return
		}
		render.JSON(w, r, resp)
	}
}
