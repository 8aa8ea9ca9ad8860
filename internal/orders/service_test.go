package orders

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/db/models"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/types"
)

type stubRepo struct {
	records map[uuid.UUID]*models.Order
	order   []uuid.UUID
	saveErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{records: map[uuid.UUID]*models.Order{}}
}

func (r *stubRepo) WithTx(*gorm.DB) Repository { return r }

func (r *stubRepo) Create(_ context.Context, order *models.Order) (*models.Order, error) {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	copied := *order
	r.records[order.ID] = &copied
	r.order = append([]uuid.UUID{order.ID}, r.order...)
	return order, nil
}

func (r *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *record
	return &copied, nil
}

func (r *stubRepo) ListAll(context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.records[id])
	}
	return out, nil
}

func (r *stubRepo) Save(_ context.Context, order *models.Order) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	copied := *order
	r.records[order.ID] = &copied
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.records[id]; ok {
		delete(r.records, id)
		for i, existing := range r.order {
			if existing == id {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	return nil
}

func validCreateInput() CreateInput {
	return CreateInput{
		Items: []models.OrderItem{
			{ProductID: "prod-1", Name: "Protein Shake", Price: 5000, Quantity: 2},
		},
		Total:  10000,
		Status: enums.OrderStatusConfirmed,
		ShippingAddress: types.ShippingAddress{
			FullName: "Awa Diop",
			Address:  "Sacre Coeur 3",
			City:     "Dakar",
			Phone:    "771234567",
		},
		PaymentMethod:    enums.PaymentMethodWave,
		PaymentReference: "PAY-ABC12345",
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo := newStubRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateInput())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusConfirmed, got.Status)
	assert.Equal(t, 10000, got.Total)
	assert.Len(t, got.Items, 1)
}

func TestCreateValidation(t *testing.T) {
	repo := newStubRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)
	ctx := context.Background()

	empty := validCreateInput()
	empty.Items = nil
	_, err = svc.Create(ctx, empty)
	requireCode(t, err, pkgerrors.CodeValidation)

	badQty := validCreateInput()
	badQty.Items[0].Quantity = 0
	_, err = svc.Create(ctx, badQty)
	requireCode(t, err, pkgerrors.CodeValidation)

	noCity := validCreateInput()
	noCity.ShippingAddress.City = ""
	_, err = svc.Create(ctx, noCity)
	requireCode(t, err, pkgerrors.CodeValidation)
}

func TestGetUnknownOrderIsNotFound(t *testing.T) {
	repo := newStubRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New())
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestUpdateStatusRefreshesUpdatedAtOnly(t *testing.T) {
	repo := newStubRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateInput())
	require.NoError(t, err)

	later := created.UpdatedAt.Add(time.Hour)
	svc.(*service).now = func() time.Time { return later }

	require.NoError(t, svc.UpdateStatus(ctx, created.ID, enums.OrderStatusShipping))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusShipping, got.Status)
	assert.Equal(t, later, got.UpdatedAt)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
	assert.Equal(t, created.Total, got.Total)
	assert.Equal(t, created.Items, got.Items)
}

func TestUpdateStatusMissingOrderIsSilentNoOp(t *testing.T) {
	repo := newStubRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)

	assert.NoError(t, svc.UpdateStatus(context.Background(), uuid.New(), enums.OrderStatusShipping))
}

func TestUpdateStatusTerminalOrderIsFrozen(t *testing.T) {
	repo := newStubRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)
	ctx := context.Background()

	input := validCreateInput()
	input.Status = enums.OrderStatusDelivered
	created, err := svc.Create(ctx, input)
	require.NoError(t, err)

	err = svc.UpdateStatus(ctx, created.ID, enums.OrderStatusPending)
	requireCode(t, err, pkgerrors.CodeStateConflict)

	input = validCreateInput()
	input.Status = enums.OrderStatusCancelled
	created, err = svc.Create(ctx, input)
	require.NoError(t, err)

	err = svc.UpdateStatus(ctx, created.ID, enums.OrderStatusConfirmed)
	requireCode(t, err, pkgerrors.CodeStateConflict)
}

func TestUpdateStatusAllowsDirectJumps(t *testing.T) {
	repo := newStubRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)
	ctx := context.Background()

	input := validCreateInput()
	input.Status = enums.OrderStatusPending
	created, err := svc.Create(ctx, input)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, created.ID, enums.OrderStatusDelivered))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusDelivered, got.Status)
}

func TestDeleteRemovesOrder(t *testing.T) {
	repo := newStubRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestExportCSVMatchesFilteredView(t *testing.T) {
	repo := newStubRepo()
	svc, err := NewService(repo)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := svc.Create(ctx, validCreateInput())
	require.NoError(t, err)

	second := validCreateInput()
	second.ShippingAddress.FullName = "Moussa Fall"
	second.Status = enums.OrderStatusPending
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	status := enums.OrderStatusConfirmed
	doc, err := svc.ExportCSV(ctx, Filters{Status: &status})
	require.NoError(t, err)

	lines := splitCSVLines(doc.Content)
	require.Len(t, lines, 2, "header plus one filtered row")
	assert.Contains(t, lines[1], first.ID.String()[:8])
	assert.Contains(t, lines[1], "Awa Diop")
	assert.Contains(t, doc.Filename, "orders_")
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, code, appErr.Code())
}

func splitCSVLines(content []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
