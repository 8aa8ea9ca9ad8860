package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redislib "github.com/redis/go-redis/v9"

	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
)

type draftStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

type draftKeyer interface {
	BookingDraftKey(sessionID string) string
}

// drafts persists a session's wizard in Redis so the form survives
// page reloads. A missing draft means a fresh wizard; every load of an
// existing draft slides its TTL forward.
type drafts struct {
	store draftStore
	keyer draftKeyer
	ttl   time.Duration
}

func (d *drafts) load(ctx context.Context, sessionID string) (Wizard, error) {
	raw, err := d.store.Get(ctx, d.keyer.BookingDraftKey(sessionID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return NewWizard(), nil
		}
		return Wizard{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load booking draft")
	}

	var w Wizard
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return Wizard{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode booking draft")
	}
	if w.Step < StepServiceSelection || w.Step > StepSuccess {
		w.Step = StepServiceSelection
	}
	// a failed refresh only shortens the sliding window
	_ = d.store.Expire(ctx, d.keyer.BookingDraftKey(sessionID), d.ttl)
	return w, nil
}

func (d *drafts) save(ctx context.Context, sessionID string, w Wizard) error {
	payload, err := json.Marshal(w)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode booking draft")
	}
	if err := d.store.Set(ctx, d.keyer.BookingDraftKey(sessionID), string(payload), d.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save booking draft")
	}
	return nil
}

func (d *drafts) clear(ctx context.Context, sessionID string) error {
	if err := d.store.Del(ctx, d.keyer.BookingDraftKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear booking draft")
	}
	return nil
}
