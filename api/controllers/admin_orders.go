package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/David-19-dev/abdouperformence-sub000/api/responses"
	"github.com/David-19-dev/abdouperformence-sub000/api/validators"
	ordersvc "github.com/David-19-dev/abdouperformence-sub000/internal/orders"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/logger"
)

func parseOrderFilters(r *http.Request) (ordersvc.Filters, error) {
	f := ordersvc.Filters{
		Query:    validators.ParseQueryString(r, "q"),
		Category: validators.ParseQueryString(r, "category"),
	}

	if raw := validators.ParseQueryString(r, "status"); raw != "" {
		status, err := enums.ParseOrderStatus(raw)
		if err != nil {
			return ordersvc.Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter")
		}
		f.Status = &status
	}
	if raw := validators.ParseQueryString(r, "payment_method"); raw != "" {
		method, err := enums.ParsePaymentMethod(raw)
		if err != nil {
			return ordersvc.Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment_method filter")
		}
		f.PaymentMethod = &method
	}
	if raw := validators.ParseQueryString(r, "date"); raw != "" {
		bucket, err := enums.ParseDateBucket(raw)
		if err != nil {
			return ordersvc.Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid date filter")
		}
		f.DateBucket = &bucket
	}
	return f, nil
}

// AdminListOrders returns orders newest first, narrowed by the
// optional q, status, category, payment_method and date query parameters.
func AdminListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		filters, err := parseOrderFilters(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		records, err := svc.List(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, records)
	}
}

// AdminGetOrder returns a single order by id.
func AdminGetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "orderID"), "orderID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminUpdateOrderStatus moves an order to a new status. Delivered and
// cancelled orders are frozen and reject further changes.
func AdminUpdateOrderStatus(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "orderID"), "orderID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		if err := svc.UpdateStatus(r.Context(), id, status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "updated"})
	}
}

// AdminDeleteOrder removes an order.
func AdminDeleteOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "orderID"), "orderID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminExportOrders streams the filtered order list as a CSV download.
func AdminExportOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		filters, err := parseOrderFilters(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		doc, err := svc.ExportCSV(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCSV(w, doc.Filename, doc.Content)
	}
}
