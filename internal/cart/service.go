package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/config"
	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
	redisclient "github.com/David-19-dev/abdouperformence-sub000/pkg/redis"
	redislib "github.com/redis/go-redis/v9"
)

type store interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

type keyer interface {
	CartKey(sessionID string) string
}

// Service mutates a session's cart. Reads and writes both refresh the
// TTL so an active shopper never loses their cart mid-session.
type Service interface {
	Get(ctx context.Context, sessionID string) (Cart, error)
	AddItem(ctx context.Context, sessionID string, item LineItem) (Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (Cart, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	store store
	keyer keyer
	ttl   time.Duration
}

// NewService builds a cart service backed by Redis.
func NewService(client *redisclient.Client, cfg config.CartConfig) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &service{store: client, keyer: client, ttl: cfg.TTL}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	current, err := s.load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	if len(current.Items) > 0 {
		// a failed refresh only shortens the sliding window
		_ = s.store.Expire(ctx, s.keyer.CartKey(sessionID), s.ttl)
	}
	return current, nil
}

func (s *service) AddItem(ctx context.Context, sessionID string, item LineItem) (Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if err := validateItem(item); err != nil {
		return Cart{}, err
	}

	current, err := s.load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}

	if idx := current.indexOf(item.ID); idx >= 0 {
		current.Items[idx] = item
	} else {
		current.Items = append(current.Items, item)
	}

	if err := s.save(ctx, sessionID, current); err != nil {
		return Cart{}, err
	}
	return current, nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if strings.TrimSpace(itemID) == "" {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}

	current, err := s.load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}

	idx := current.indexOf(itemID)
	if idx < 0 {
		return current, nil
	}

	if quantity <= 0 {
		current.Items = append(current.Items[:idx], current.Items[idx+1:]...)
	} else {
		current.Items[idx].Quantity = quantity
	}

	if err := s.save(ctx, sessionID, current); err != nil {
		return Cart{}, err
	}
	return current, nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID, itemID string) (Cart, error) {
	return s.UpdateQuantity(ctx, sessionID, itemID, 0)
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if err := s.store.Del(ctx, s.keyer.CartKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) load(ctx context.Context, sessionID string) (Cart, error) {
	raw, err := s.store.Get(ctx, s.keyer.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return Cart{}, nil
		}
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	var current Cart
	if err := json.Unmarshal([]byte(raw), &current); err != nil {
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode cart document")
	}
	return current, nil
}

func (s *service) save(ctx context.Context, sessionID string, c Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart document")
	}
	if err := s.store.Set(ctx, s.keyer.CartKey(sessionID), string(payload), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return nil
}

func validateItem(item LineItem) error {
	switch {
	case strings.TrimSpace(item.ID) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	case strings.TrimSpace(item.Name) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
	case item.Price < 0:
		return pkgerrors.New(pkgerrors.CodeValidation, "item price cannot be negative")
	case item.Quantity < 1:
		return pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be at least 1")
	}
	return nil
}
