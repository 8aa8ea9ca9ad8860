package bookings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/David-19-dev/abdouperformence-sub000/internal/notifications"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/config"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/db"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/db/models"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/export"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/logger"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/metrics"
	redisclient "github.com/David-19-dev/abdouperformence-sub000/pkg/redis"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/types"
)

// Service drives the booking wizard for clients and the lifecycle
// operations for admin staff.
type Service interface {
	Draft(ctx context.Context, sessionID string) (Wizard, error)
	UpdateDraft(ctx context.Context, sessionID string, form Form) (Wizard, error)
	Next(ctx context.Context, sessionID string) (Wizard, FieldErrors, error)
	Back(ctx context.Context, sessionID string) (Wizard, error)
	Reset(ctx context.Context, sessionID string) (Wizard, error)
	Submit(ctx context.Context, sessionID string) (*models.Booking, FieldErrors, error)

	List(ctx context.Context, f Filters) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExportCSV(ctx context.Context, f Filters) (export.Document, error)
}

type service struct {
	drafts   *drafts
	repo     Repository
	notifier notifications.Notifier
	metrics  *metrics.CommerceMetrics
	logg     *logger.Logger
	now      func() time.Time
}

// NewService wires the bookings service.
func NewService(
	client *redisclient.Client,
	cfg config.BookingConfig,
	repo Repository,
	notifier notifications.Notifier,
	m *metrics.CommerceMetrics,
	logg *logger.Logger,
) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if cfg.DraftTTL <= 0 {
		return nil, fmt.Errorf("draft ttl must be positive")
	}
	if repo == nil {
		return nil, fmt.Errorf("bookings repository required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		drafts:   &drafts{store: client, keyer: client, ttl: cfg.DraftTTL},
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logg:     logg,
		now:      time.Now,
	}, nil
}

func (s *service) Draft(ctx context.Context, sessionID string) (Wizard, error) {
	if err := requireSession(sessionID); err != nil {
		return Wizard{}, err
	}
	return s.drafts.load(ctx, sessionID)
}

// UpdateDraft replaces the form fields without moving the wizard.
func (s *service) UpdateDraft(ctx context.Context, sessionID string, form Form) (Wizard, error) {
	if err := requireSession(sessionID); err != nil {
		return Wizard{}, err
	}
	w, err := s.drafts.load(ctx, sessionID)
	if err != nil {
		return Wizard{}, err
	}
	w.Form = form
	if err := s.drafts.save(ctx, sessionID, w); err != nil {
		return Wizard{}, err
	}
	return w, nil
}

func (s *service) Next(ctx context.Context, sessionID string) (Wizard, FieldErrors, error) {
	if err := requireSession(sessionID); err != nil {
		return Wizard{}, nil, err
	}
	w, err := s.drafts.load(ctx, sessionID)
	if err != nil {
		return Wizard{}, nil, err
	}
	if errs := w.Next(s.now()); len(errs) > 0 {
		return w, errs, nil
	}
	if err := s.drafts.save(ctx, sessionID, w); err != nil {
		return Wizard{}, nil, err
	}
	return w, nil, nil
}

func (s *service) Back(ctx context.Context, sessionID string) (Wizard, error) {
	if err := requireSession(sessionID); err != nil {
		return Wizard{}, err
	}
	w, err := s.drafts.load(ctx, sessionID)
	if err != nil {
		return Wizard{}, err
	}
	w.Back()
	if err := s.drafts.save(ctx, sessionID, w); err != nil {
		return Wizard{}, err
	}
	return w, nil
}

func (s *service) Reset(ctx context.Context, sessionID string) (Wizard, error) {
	if err := requireSession(sessionID); err != nil {
		return Wizard{}, err
	}
	if err := s.drafts.clear(ctx, sessionID); err != nil {
		return Wizard{}, err
	}
	return NewWizard(), nil
}

// Submit re-validates the whole form, persists the booking, fires the
// best-effort confirmation and moves the wizard to the success screen.
// The confirmation never blocks: the durable record already exists.
func (s *service) Submit(ctx context.Context, sessionID string) (*models.Booking, FieldErrors, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, nil, err
	}
	w, err := s.drafts.load(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if w.Step != StepConfirmation {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "wizard is not at the confirmation step")
	}
	if errs := w.ValidateAll(s.now()); len(errs) > 0 {
		return nil, errs, nil
	}

	var message *string
	if trimmed := strings.TrimSpace(w.Form.Message); trimmed != "" {
		message = &trimmed
	}

	booking := &models.Booking{
		ID:            uuid.New(),
		SessionType:   w.Form.SessionType,
		Goal:          w.Form.Goal,
		PreferredDate: w.Form.PreferredDate,
		PreferredTime: w.Form.PreferredTime,
		Message:       message,
		Status:        enums.BookingStatusPending,
		ContactInfo: types.ContactInfo{
			Name:  strings.TrimSpace(w.Form.Name),
			Email: strings.TrimSpace(w.Form.Email),
			Phone: strings.TrimSpace(w.Form.Phone),
		},
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist booking")
	}
	s.metrics.IncBookingCreated(string(created.SessionType))

	if err := s.notifier.BookingConfirmed(ctx, created); err != nil {
		s.logg.Error(s.logg.WithBookingID(ctx, created.ID.String()), "booking confirmation side-effect", err)
	}

	w.Step = StepSuccess
	if err := s.drafts.save(ctx, sessionID, w); err != nil {
		s.logg.Error(s.logg.WithBookingID(ctx, created.ID.String()), "save wizard success state", err)
	}
	return created, nil, nil
}

func (s *service) List(ctx context.Context, f Filters) ([]models.Booking, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bookings")
	}
	return ApplyFilters(records, f, s.now()), nil
}

// UpdateStatus changes the lifecycle state. A missing booking is a
// silent no-op; a terminal booking (completed, cancelled) is frozen.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.BookingStatus) error {
	if !status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown booking status")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load booking")
	}

	if booking.Status.IsTerminal() {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "booking status is terminal").
			WithDetails(map[string]string{"status": booking.Status.String()})
	}
	if booking.Status == status {
		return nil
	}

	booking.Status = status
	booking.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, booking); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update booking status")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete booking")
	}
	return nil
}

var exportHeader = []string{
	"id", "name", "email", "phone", "session_type", "goal",
	"preferred_date", "preferred_time", "status", "message", "created_at",
}

// ExportCSV renders the currently filtered view as a CSV download.
func (s *service) ExportCSV(ctx context.Context, f Filters) (export.Document, error) {
	records, err := s.List(ctx, f)
	if err != nil {
		return export.Document{}, err
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		message := ""
		if record.Message != nil {
			message = *record.Message
		}
		rows = append(rows, []string{
			record.ID.String()[:8],
			record.ContactInfo.Name,
			record.ContactInfo.Email,
			record.ContactInfo.Phone,
			record.SessionType.String(),
			record.Goal.String(),
			record.PreferredDate,
			record.PreferredTime,
			record.Status.String(),
			message,
			record.CreatedAt.Format(time.RFC3339),
		})
	}

	doc, err := export.BuildCSV("bookings", exportHeader, rows, s.now())
	if err != nil {
		return export.Document{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render bookings csv")
	}
	return doc, nil
}

func requireSession(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	return nil
}
