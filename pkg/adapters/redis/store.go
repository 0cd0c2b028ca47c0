package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces the keys written by the store.
const DefaultPrefix = "firstrun:install:"

// Store implements ports.InstallMetadataStore using Redis.
// The counter is a plain integer key updated with INCR, so concurrent hosts never lose increments.
type Store struct {
	client         *backend.Client
	prefix         string
	installID      string
	trackLastShown bool
}

type Option func(*Store)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithInstallID scopes the counter to one installation, for deployments where a single
// Redis serves many devices.
func WithInstallID(id string) Option {
	return func(s *Store) {
		s.installID = id
	}
}

// WithLastShown also records the timestamp of the latest promotion dialog.
func WithLastShown(enabled bool) Option {
	return func(s *Store) {
		s.trackLastShown = enabled
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client:    client,
		prefix:    DefaultPrefix,
		installID: "default",
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) countKey() string {
	return s.prefix + s.installID + ":promotion_dialog_count"
}

func (s *Store) lastShownKey() string {
	return s.prefix + s.installID + ":promotion_dialog_last_shown"
}

// PromotionDialogCount reads the counter. A missing key means zero.
func (s *Store) PromotionDialogCount(ctx context.Context) (int, error) {
	val, err := s.client.Get(ctx, s.countKey()).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get from redis: %w", err)
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("failed to parse promotion dialog count %q: %w", val, err)
	}
	return count, nil
}

// RecordPromotionDialogShown increments the counter atomically.
func (s *Store) RecordPromotionDialogShown(ctx context.Context) (int, error) {
	pipe := s.client.TxPipeline()

	incr := pipe.Incr(ctx, s.countKey())
	if s.trackLastShown {
		pipe.Set(ctx, s.lastShownKey(), time.Now().UTC().Format(time.RFC3339), 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to record promotion dialog in redis: %w", err)
	}
	return int(incr.Val()), nil
}

// LastShown returns when the promotion dialog was last recorded, if tracked.
func (s *Store) LastShown(ctx context.Context) (time.Time, bool, error) {
	val, err := s.client.Get(ctx, s.lastShownKey()).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to get from redis: %w", err)
	}
	ts, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse last shown time: %w", err)
	}
	return ts, true, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
