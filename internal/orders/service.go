package orders

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/db"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/db/models"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/export"
)

// Service covers the storefront create/read path and the admin
// lifecycle operations on orders.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, f Filters) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExportCSV(ctx context.Context, f Filters) (export.Document, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds the orders service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be at least 1")
		}
	}
	if input.Total < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order total cannot be negative")
	}
	if field, ok := input.ShippingAddress.Validate(); !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "incomplete shipping address").
			WithDetails(map[string]string{field: "required"})
	}
	status := input.Status
	if status == "" {
		status = enums.OrderStatusPending
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}
	if input.PaymentMethod != "" && !input.PaymentMethod.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}

	order := &models.Order{
		ID:                uuid.New(),
		Items:             append(models.OrderItems{}, input.Items...),
		Total:             input.Total,
		Status:            status,
		ShippingAddress:   input.ShippingAddress,
		PaymentMethod:     input.PaymentMethod,
		PaymentReference:  input.PaymentReference,
		EstimatedDelivery: input.EstimatedDelivery,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
	}
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) List(ctx context.Context, f Filters) ([]models.Order, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return ApplyFilters(records, f, s.now()), nil
}

// UpdateStatus changes the lifecycle state. A missing order is a silent
// no-op; a terminal order (delivered, cancelled) is frozen. Any other
// jump is accepted, matching the admin console's manual-correction use.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	if !status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	if order.Status.IsTerminal() {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "order status is terminal").
			WithDetails(map[string]string{"status": order.Status.String()})
	}
	if order.Status == status {
		return nil
	}

	order.Status = status
	order.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, order); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order")
	}
	return nil
}

var exportHeader = []string{"id", "client", "phone", "city", "total", "status", "created_at"}

// ExportCSV renders the currently filtered view as a CSV download.
func (s *service) ExportCSV(ctx context.Context, f Filters) (export.Document, error) {
	records, err := s.List(ctx, f)
	if err != nil {
		return export.Document{}, err
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID.String()[:8],
			record.ShippingAddress.FullName,
			record.ShippingAddress.Phone,
			record.ShippingAddress.City,
			strconv.Itoa(record.Total),
			record.Status.String(),
			record.CreatedAt.Format(time.RFC3339),
		})
	}

	doc, err := export.BuildCSV("orders", exportHeader, rows, s.now())
	if err != nil {
		return export.Document{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render orders csv")
	}
	return doc, nil
}
