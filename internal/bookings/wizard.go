package bookings

import (
	"strings"
	"time"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/validation"
)

// Step identifies the wizard stage the client is on.
type Step int

const (
	StepServiceSelection Step = iota + 1
	StepScheduling
	StepContact
	StepConfirmation
	StepSuccess
)

// Form collects the booking intent across the wizard steps.
type Form struct {
	SessionType   enums.SessionType `json:"session_type"`
	Goal          enums.Goal        `json:"goal"`
	PreferredDate string            `json:"preferred_date"`
	PreferredTime string            `json:"preferred_time"`
	Message       string            `json:"message"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
}

// FieldErrors maps an offending field to its validation message.
type FieldErrors map[string]string

// Wizard is the staged booking form: linear forward transitions gated
// by per-step guards, free backward movement, no branching.
type Wizard struct {
	Step Step `json:"step"`
	Form Form `json:"form"`
}

// NewWizard starts at service selection with the default choices
// preselected, so the first guard is satisfiable immediately.
func NewWizard() Wizard {
	return Wizard{
		Step: StepServiceSelection,
		Form: Form{
			SessionType: enums.SessionTypePersonal,
			Goal:        enums.GoalFitness,
		},
	}
}

// Next runs the current step's guard. On failure the wizard stays put
// and the field errors are returned; on success it advances one step.
// Beyond the contact step Next is a no-op: leaving confirmation goes
// through Submit.
func (w *Wizard) Next(now time.Time) FieldErrors {
	if w.Step >= StepConfirmation {
		return nil
	}
	if errs := w.guard(w.Step, now); len(errs) > 0 {
		return errs
	}
	w.Step++
	return nil
}

// Back moves one step toward service selection. It never re-validates.
// Leaving the success screen starts a fresh wizard.
func (w *Wizard) Back() {
	if w.Step == StepSuccess {
		w.Reset()
		return
	}
	if w.Step > StepServiceSelection {
		w.Step--
	}
}

// Reset returns the wizard to its defaults.
func (w *Wizard) Reset() {
	*w = NewWizard()
}

// ValidateAll re-runs every guard, used on submit to defend against a
// tampered draft.
func (w *Wizard) ValidateAll(now time.Time) FieldErrors {
	errs := FieldErrors{}
	for step := StepServiceSelection; step <= StepContact; step++ {
		for field, msg := range w.guard(step, now) {
			errs[field] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (w *Wizard) guard(step Step, now time.Time) FieldErrors {
	errs := FieldErrors{}
	switch step {
	case StepServiceSelection:
		if !w.Form.SessionType.IsValid() {
			errs["session_type"] = "choose a session type"
		}
		if !w.Form.Goal.IsValid() {
			errs["goal"] = "choose a goal"
		}
	case StepScheduling:
		if strings.TrimSpace(w.Form.PreferredDate) == "" {
			errs["preferred_date"] = "choose a date"
		} else if _, ok := validation.ParseFutureDate(w.Form.PreferredDate, now); !ok {
			errs["preferred_date"] = "date must be today or later"
		}
		if strings.TrimSpace(w.Form.PreferredTime) == "" {
			errs["preferred_time"] = "choose a time"
		}
	case StepContact:
		if strings.TrimSpace(w.Form.Name) == "" {
			errs["name"] = "name is required"
		}
		if !validation.IsEmail(w.Form.Email) {
			errs["email"] = "enter a valid email address"
		}
		if !validation.IsPhone(w.Form.Phone) {
			errs["phone"] = "enter a 9-digit local number (70/75/76/77/78)"
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
