package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
)

var wizardNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func completedForm() Form {
	return Form{
		SessionType:   enums.SessionTypePersonal,
		Goal:          enums.GoalMuscleGain,
		PreferredDate: "2026-03-20",
		PreferredTime: "10:00",
		Name:          "Awa Diop",
		Email:         "awa@example.sn",
		Phone:         "771234567",
	}
}

func TestWizardStartsWithSatisfiableDefaults(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, StepServiceSelection, w.Step)

	errs := w.Next(wizardNow)
	assert.Nil(t, errs, "default session type and goal satisfy step 1")
	assert.Equal(t, StepScheduling, w.Step)
}

func TestWizardBlockedStepDoesNotAdvance(t *testing.T) {
	w := NewWizard()
	w.Next(wizardNow)
	require.Equal(t, StepScheduling, w.Step)

	errs := w.Next(wizardNow)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "preferred_date")
	assert.Contains(t, errs, "preferred_time")
	assert.Equal(t, StepScheduling, w.Step)

	// repeated attempts re-report the same errors and stay put
	again := w.Next(wizardNow)
	assert.Equal(t, errs, again)
	assert.Equal(t, StepScheduling, w.Step)
}

func TestWizardSchedulingRejectsPastDate(t *testing.T) {
	w := NewWizard()
	w.Next(wizardNow)

	w.Form.PreferredDate = "2026-03-14"
	w.Form.PreferredTime = "10:00"
	errs := w.Next(wizardNow)
	require.NotNil(t, errs)
	assert.Contains(t, errs["preferred_date"], "today or later")

	w.Form.PreferredDate = "2026-03-15"
	errs = w.Next(wizardNow)
	assert.Nil(t, errs, "today must be accepted")
	assert.Equal(t, StepContact, w.Step)
}

func TestWizardContactGuard(t *testing.T) {
	w := NewWizard()
	w.Form = completedForm()
	w.Next(wizardNow)
	w.Next(wizardNow)
	require.Equal(t, StepContact, w.Step)

	w.Form.Phone = "123456789"
	errs := w.Next(wizardNow)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "phone")
	assert.Equal(t, StepContact, w.Step)

	w.Form.Phone = "77123456"
	errs = w.Next(wizardNow)
	require.NotNil(t, errs, "eight digits is too short")

	w.Form.Phone = "771234567"
	errs = w.Next(wizardNow)
	assert.Nil(t, errs)
	assert.Equal(t, StepConfirmation, w.Step)
}

func TestWizardEmailGuard(t *testing.T) {
	w := NewWizard()
	w.Form = completedForm()
	w.Next(wizardNow)
	w.Next(wizardNow)

	w.Form.Email = "not-an-email"
	errs := w.Next(wizardNow)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "email")
}

func TestWizardBackNeverValidates(t *testing.T) {
	w := NewWizard()
	w.Form = completedForm()
	w.Next(wizardNow)
	w.Next(wizardNow)
	w.Next(wizardNow)
	require.Equal(t, StepConfirmation, w.Step)

	w.Form.Email = "broken"
	w.Back()
	assert.Equal(t, StepContact, w.Step)
	w.Back()
	assert.Equal(t, StepScheduling, w.Step)
	w.Back()
	assert.Equal(t, StepServiceSelection, w.Step)
	w.Back()
	assert.Equal(t, StepServiceSelection, w.Step, "cannot go below the first step")
}

func TestWizardNextIsNoOpAtConfirmation(t *testing.T) {
	w := NewWizard()
	w.Form = completedForm()
	w.Next(wizardNow)
	w.Next(wizardNow)
	w.Next(wizardNow)
	require.Equal(t, StepConfirmation, w.Step)

	assert.Nil(t, w.Next(wizardNow))
	assert.Equal(t, StepConfirmation, w.Step)
}

func TestWizardBackFromSuccessResets(t *testing.T) {
	w := NewWizard()
	w.Form = completedForm()
	w.Step = StepSuccess

	w.Back()
	assert.Equal(t, StepServiceSelection, w.Step)
	assert.Equal(t, NewWizard().Form, w.Form, "all fields return to defaults")
}

func TestValidateAllCollectsEveryFailure(t *testing.T) {
	w := NewWizard()
	w.Form = Form{SessionType: "spa", Goal: enums.GoalFitness}

	errs := w.ValidateAll(wizardNow)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "session_type")
	assert.Contains(t, errs, "preferred_date")
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "phone")

	w.Form = completedForm()
	assert.Nil(t, w.ValidateAll(wizardNow))
}
