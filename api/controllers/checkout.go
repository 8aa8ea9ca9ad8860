package controllers

import (
	"net/http"

	"github.com/David-19-dev/abdouperformence-sub000/api/middleware"
	"github.com/David-19-dev/abdouperformence-sub000/api/responses"
	"github.com/David-19-dev/abdouperformence-sub000/api/validators"
	checkoutsvc "github.com/David-19-dev/abdouperformence-sub000/internal/checkout"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/logger"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/types"
)

type checkoutRequest struct {
	FullName      string `json:"full_name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=wave orange_money"`
	PaymentPhone  string `json:"payment_phone" validate:"required"`
}

// Checkout converts the session's cart into a confirmed order.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method, err := enums.ParsePaymentMethod(payload.PaymentMethod)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unsupported payment method"))
			return
		}

		order, err := svc.Checkout(r.Context(), middleware.SessionIDFromContext(r.Context()), checkoutsvc.Input{
			ShippingAddress: types.ShippingAddress{
				FullName: payload.FullName,
				Address:  payload.Address,
				City:     payload.City,
				Phone:    payload.Phone,
			},
			PaymentMethod: method,
			PaymentPhone:  payload.PaymentPhone,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
