package cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
	redislib "github.com/redis/go-redis/v9"
)

type fakeStore struct {
	values  map[string]string
	expires map[string]time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}, expires: map[string]time.Duration{}}
}

func (f *fakeStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.values[key] = value.(string)
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", redislib.Nil
	}
	return v, nil
}

func (f *fakeStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.values, k)
	}
	return nil
}

func (f *fakeStore) Expire(_ context.Context, key string, ttl time.Duration) error {
	if _, ok := f.values[key]; ok {
		f.expires[key] = ttl
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) CartKey(sessionID string) string {
	return "ap:cart:" + sessionID
}

func newTestService() (*service, *fakeStore) {
	store := newFakeStore()
	return &service{store: store, keyer: fakeKeyer{}, ttl: time.Hour}, store
}

func proteinShake() LineItem {
	return LineItem{ID: "prod-1", Name: "Protein Shake", Price: 5000, Quantity: 2}
}

func TestGetReturnsEmptyCartForNewSession(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.Get(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	assert.Zero(t, got.Total())
}

func TestAddItemAppendsAndTotals(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	got, err := svc.AddItem(ctx, "session-1", proteinShake())
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 10000, got.Total())

	got, err = svc.AddItem(ctx, "session-1", LineItem{ID: "prod-2", Name: "Resistance Band", Price: 3000, Quantity: 1})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 13000, got.Total())
}

func TestAddItemSameIDReplacesQuantity(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "session-1", proteinShake())
	require.NoError(t, err)

	item := proteinShake()
	item.Quantity = 5
	got, err := svc.AddItem(ctx, "session-1", item)
	require.NoError(t, err)

	require.Len(t, got.Items, 1, "same id must never duplicate")
	assert.Equal(t, 5, got.Items[0].Quantity)
	assert.Equal(t, 25000, got.Total())
}

func TestUpdateQuantityZeroRemovesItem(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "session-1", proteinShake())
	require.NoError(t, err)

	got, err := svc.UpdateQuantity(ctx, "session-1", "prod-1", 0)
	require.NoError(t, err)
	assert.Empty(t, got.Items)

	_, err = svc.AddItem(ctx, "session-1", proteinShake())
	require.NoError(t, err)
	got, err = svc.UpdateQuantity(ctx, "session-1", "prod-1", -3)
	require.NoError(t, err)
	assert.Empty(t, got.Items, "negative quantity removes as well")
}

func TestUpdateQuantityAdjustsTotal(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "session-1", proteinShake())
	require.NoError(t, err)

	got, err := svc.UpdateQuantity(ctx, "session-1", "prod-1", 7)
	require.NoError(t, err)
	assert.Equal(t, 35000, got.Total())
}

func TestRemoveMissingItemIsNoOp(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "session-1", proteinShake())
	require.NoError(t, err)

	got, err := svc.RemoveItem(ctx, "session-1", "ghost")
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}

func TestClearEmptiesCart(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "session-1", proteinShake())
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "session-1"))
	assert.Empty(t, store.values)

	got, err := svc.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestGetRefreshesTTL(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "session-1", proteinShake())
	require.NoError(t, err)

	got, err := svc.Get(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, time.Hour, store.expires["ap:cart:session-1"], "a read must slide the TTL forward")

	// an absent cart has no key to refresh
	_, err = svc.Get(ctx, "session-2")
	require.NoError(t, err)
	_, refreshed := store.expires["ap:cart:session-2"]
	assert.False(t, refreshed)
}

func TestAddItemValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []LineItem{
		{ID: "", Name: "x", Price: 1, Quantity: 1},
		{ID: "p", Name: "", Price: 1, Quantity: 1},
		{ID: "p", Name: "x", Price: -1, Quantity: 1},
		{ID: "p", Name: "x", Price: 1, Quantity: 0},
	}
	for _, item := range cases {
		_, err := svc.AddItem(ctx, "session-1", item)
		require.Error(t, err)
		appErr := pkgerrors.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	}
}

func TestSessionIsolation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "session-a", proteinShake())
	require.NoError(t, err)

	got, err := svc.Get(ctx, "session-b")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}
