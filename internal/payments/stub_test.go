package payments

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
)

func TestStubConfirmerApprovesValidCharge(t *testing.T) {
	fixed := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	stub := NewStubConfirmer(0, WithClock(func() time.Time { return fixed }))

	got, err := stub.Confirm(context.Background(), ConfirmInput{
		Method:      enums.PaymentMethodWave,
		Phone:       "771234567",
		AmountCents: 25000,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got.Reference, "PAY-"))
	assert.Equal(t, enums.PaymentMethodWave, got.Method)
	assert.Equal(t, fixed, got.ApprovedAt)
}

func TestStubConfirmerRejectsBadInput(t *testing.T) {
	stub := NewStubConfirmer(0)
	ctx := context.Background()

	cases := []ConfirmInput{
		{Method: "cash", Phone: "771234567", AmountCents: 100},
		{Method: enums.PaymentMethodWave, Phone: "123456789", AmountCents: 100},
		{Method: enums.PaymentMethodOrangeMoney, Phone: "77123456", AmountCents: 100},
		{Method: enums.PaymentMethodWave, Phone: "771234567", AmountCents: 0},
	}
	for _, input := range cases {
		_, err := stub.Confirm(ctx, input)
		require.Error(t, err)
		appErr := pkgerrors.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	}
}

func TestStubConfirmerHonorsCancellation(t *testing.T) {
	stub := NewStubConfirmer(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stub.Confirm(ctx, ConfirmInput{
		Method:      enums.PaymentMethodWave,
		Phone:       "771234567",
		AmountCents: 100,
	})
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeDependency, appErr.Code())
}
