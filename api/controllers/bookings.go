package controllers

import (
	"net/http"

	"github.com/David-19-dev/abdouperformence-sub000/api/middleware"
	"github.com/David-19-dev/abdouperformence-sub000/api/responses"
	"github.com/David-19-dev/abdouperformence-sub000/api/validators"
	bookingsvc "github.com/David-19-dev/abdouperformence-sub000/internal/bookings"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/logger"
)

type wizardResponse struct {
	Step   int               `json:"step"`
	Form   bookingsvc.Form   `json:"form"`
	Errors map[string]string `json:"errors,omitempty"`
}

func toWizardResponse(w bookingsvc.Wizard, errs bookingsvc.FieldErrors) wizardResponse {
	return wizardResponse{Step: int(w.Step), Form: w.Form, Errors: errs}
}

// GetBookingDraft returns the wizard state for this session.
func GetBookingDraft(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bookings service unavailable"))
			return
		}

		draft, err := svc.Draft(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toWizardResponse(draft, nil))
	}
}

type bookingFormRequest struct {
	SessionType   string `json:"session_type,omitempty"`
	Goal          string `json:"goal,omitempty"`
	PreferredDate string `json:"preferred_date,omitempty"`
	PreferredTime string `json:"preferred_time,omitempty"`
	Message       string `json:"message,omitempty"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

func (p bookingFormRequest) toForm() bookingsvc.Form {
	return bookingsvc.Form{
		SessionType:   enums.SessionType(p.SessionType),
		Goal:          enums.Goal(p.Goal),
		PreferredDate: p.PreferredDate,
		PreferredTime: p.PreferredTime,
		Message:       p.Message,
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
	}
}

// UpdateBookingDraft stores the submitted form fields without moving
// the wizard. Guards run on Next, not here.
func UpdateBookingDraft(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bookings service unavailable"))
			return
		}

		var payload bookingFormRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		draft, err := svc.UpdateDraft(r.Context(), middleware.SessionIDFromContext(r.Context()), payload.toForm())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toWizardResponse(draft, nil))
	}
}

// BookingNext runs the current step's guard and advances on success.
// Guard failures come back as field errors on a 200: the wizard stays
// where it is and the client renders the messages inline.
func BookingNext(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bookings service unavailable"))
			return
		}

		draft, errs, err := svc.Next(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toWizardResponse(draft, errs))
	}
}

// BookingBack moves one step backward without validating.
func BookingBack(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bookings service unavailable"))
			return
		}

		draft, err := svc.Back(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toWizardResponse(draft, nil))
	}
}

// BookingReset returns the wizard to its defaults.
func BookingReset(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bookings service unavailable"))
			return
		}

		draft, err := svc.Reset(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toWizardResponse(draft, nil))
	}
}

// BookingSubmit re-validates the whole form and persists the booking.
func BookingSubmit(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "bookings service unavailable"))
			return
		}

		booking, errs, err := svc.Submit(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if len(errs) > 0 {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "booking form is incomplete").WithDetails(errs))
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, booking)
	}
}
