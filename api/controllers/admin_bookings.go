package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/David-19-dev/abdouperformence-sub000/api/responses"
	"github.com/David-19-dev/abdouperformence-sub000/api/validators"
	bookingsvc "github.com/David-19-dev/abdouperformence-sub000/internal/bookings"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/logger"
)

func parseBookingFilters(r *http.Request) (bookingsvc.Filters, error) {
	f := bookingsvc.Filters{Query: validators.ParseQueryString(r, "q")}

	if raw := validators.ParseQueryString(r, "status"); raw != "" {
		status, err := enums.ParseBookingStatus(raw)
		if err != nil {
			return bookingsvc.Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter")
		}
		f.Status = &status
	}
	if raw := validators.ParseQueryString(r, "session_type"); raw != "" {
		sessionType, err := enums.ParseSessionType(raw)
		if err != nil {
			return bookingsvc.Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid session_type filter")
		}
		f.SessionType = &sessionType
	}
	if raw := validators.ParseQueryString(r, "date"); raw != "" {
		bucket, err := enums.ParseDateBucket(raw)
		if err != nil {
			return bookingsvc.Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid date filter")
		}
		f.DateBucket = &bucket
	}
	return f, nil
}

// AdminListBookings returns bookings newest first, narrowed by the
// optional q, status, session_type and date query parameters.
func AdminListBookings(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bookings service unavailable"))
			return
		}

		filters, err := parseBookingFilters(r)
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

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminUpdateBookingStatus moves a booking to a new status. Completed
// and cancelled bookings are frozen and reject further changes.
func AdminUpdateBookingStatus(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bookings service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "bookingID"), "bookingID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateBookingStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseBookingStatus(payload.Status)
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

// AdminDeleteBooking removes a booking.
func AdminDeleteBooking(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bookings service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "bookingID"), "bookingID")
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

// AdminExportBookings streams the filtered booking list as a CSV download.
func AdminExportBookings(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bookings service unavailable"))
			return
		}

		filters, err := parseBookingFilters(r)
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
