package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Sternrassler/ptcg-client/pkg/logging"
	"github.com/Sternrassler/ptcg-client/pkg/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Resource names used as key segments.
const (
	ResourceCards = "cards"
	ResourceSets  = "sets"
)

var (
	// ErrNotFound indicates the entity or snapshot is not stored.
	ErrNotFound = errors.New("not found in store")

	// ErrInvalidEntry indicates a stored value could not be decoded.
	ErrInvalidEntry = errors.New("invalid store entry")
)

// Snapshot describes one saved get-all result.
type Snapshot struct {
	RunID    uuid.UUID `json:"runId"`
	Resource string    `json:"resource"`
	Count    int       `json:"count"`
	TakenAt  time.Time `json:"takenAt"`
}

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Store reads and writes catalog snapshots.
type Store struct {
	redis  *redis.Client
	logger zerolog.Logger
	now    func() time.Time
}

// New creates a store on an existing Redis client.
func New(redisClient *redis.Client) *Store {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &Store{
		redis:  redisClient,
		logger: logging.NewLogger("ptcg-store"),
		now:    time.Now,
	}
}

// Connect opens a Redis client for opts and verifies it with PING.
func Connect(ctx context.Context, opts Options) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}

	return New(client), nil
}

// Close closes the underlying Redis client.
func (s *Store) Close() error {
	return s.redis.Close()
}

// SaveCards replaces the stored cards with cards.
func (s *Store) SaveCards(ctx context.Context, cards []models.Card) (*Snapshot, error) {
	return save(ctx, s, ResourceCards, cards, func(c models.Card) string { return c.ID })
}

// SaveSets replaces the stored sets with sets.
func (s *Store) SaveSets(ctx context.Context, sets []models.Set) (*Snapshot, error) {
	return save(ctx, s, ResourceSets, sets, func(set models.Set) string { return set.ID })
}

// CatalogSnapshot is the pair of snapshots written by SaveCatalog. Both
// share one RunID.
type CatalogSnapshot struct {
	Sets  *Snapshot `json:"sets"`
	Cards *Snapshot `json:"cards"`
}

// SaveCatalog replaces the stored sets and cards in one transaction, so
// either both snapshots change or neither does.
func (s *Store) SaveCatalog(ctx context.Context, sets []models.Set, cards []models.Card) (*CatalogSnapshot, error) {
	runID := uuid.New()

	setBatch, err := prepare(s, runID, ResourceSets, sets, func(set models.Set) string { return set.ID })
	if err != nil {
		Operations.WithLabelValues("save", resultError).Inc()
		return nil, err
	}
	cardBatch, err := prepare(s, runID, ResourceCards, cards, func(c models.Card) string { return c.ID })
	if err != nil {
		Operations.WithLabelValues("save", resultError).Inc()
		return nil, err
	}

	if err := s.commit(ctx, setBatch, cardBatch); err != nil {
		return nil, err
	}
	return &CatalogSnapshot{Sets: setBatch.snap, Cards: cardBatch.snap}, nil
}

// GetCard returns the stored card with id.
func (s *Store) GetCard(ctx context.Context, id string) (*models.Card, error) {
	return get[models.Card](ctx, s, ResourceCards, id)
}

// GetSet returns the stored set with id.
func (s *Store) GetSet(ctx context.Context, id string) (*models.Set, error) {
	return get[models.Set](ctx, s, ResourceSets, id)
}

// ListCards returns every stored card ordered by ID.
func (s *Store) ListCards(ctx context.Context) ([]models.Card, error) {
	return list(ctx, s, ResourceCards, func(c models.Card) string { return c.ID })
}

// ListSets returns every stored set ordered by ID.
func (s *Store) ListSets(ctx context.Context) ([]models.Set, error) {
	return list(ctx, s, ResourceSets, func(set models.Set) string { return set.ID })
}

// LoadSnapshot returns the metadata of the last snapshot of resource.
func (s *Store) LoadSnapshot(ctx context.Context, resource string) (*Snapshot, error) {
	data, err := s.redis.Get(ctx, SnapshotKey(resource).String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			Operations.WithLabelValues("snapshot", resultMiss).Inc()
			return nil, ErrNotFound
		}
		Operations.WithLabelValues("snapshot", resultError).Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		Operations.WithLabelValues("snapshot", resultError).Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}

	Operations.WithLabelValues("snapshot", resultOK).Inc()
	return &snap, nil
}

// batch is one resource snapshot ready to be written.
type batch struct {
	fields map[string]any
	snap   *Snapshot
	meta   []byte
}

func prepare[T any](s *Store, runID uuid.UUID, resource string, items []T, id func(T) string) (*batch, error) {
	fields := make(map[string]any, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("marshal %s %q: %w", resource, id(item), err)
		}
		fields[id(item)] = data
	}

	snap := &Snapshot{
		RunID:    runID,
		Resource: resource,
		Count:    len(fields),
		TakenAt:  s.now().UTC(),
	}
	meta, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	return &batch{fields: fields, snap: snap, meta: meta}, nil
}

// queue adds the commands replacing b's resource to pipe.
func (b *batch) queue(ctx context.Context, pipe redis.Pipeliner) {
	hashKey := CollectionKey(b.snap.Resource).String()
	pipe.Del(ctx, hashKey)
	if len(b.fields) > 0 {
		pipe.HSet(ctx, hashKey, b.fields)
	}
	pipe.Set(ctx, SnapshotKey(b.snap.Resource).String(), b.meta, 0)
}

// commit writes every batch in a single MULTI/EXEC.
func (s *Store) commit(ctx context.Context, batches ...*batch) error {
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, b := range batches {
			b.queue(ctx, pipe)
		}
		return nil
	})
	if err != nil {
		Operations.WithLabelValues("save", resultError).Inc()
		return fmt.Errorf("redis save: %w", err)
	}

	for _, b := range batches {
		Operations.WithLabelValues("save", resultOK).Inc()
		s.logger.Info().
			Str("resource", b.snap.Resource).
			Str("run_id", b.snap.RunID.String()).
			Int("count", b.snap.Count).
			Msg("Snapshot saved")
	}
	return nil
}

func save[T any](ctx context.Context, s *Store, resource string, items []T, id func(T) string) (*Snapshot, error) {
	b, err := prepare(s, uuid.New(), resource, items, id)
	if err != nil {
		Operations.WithLabelValues("save", resultError).Inc()
		return nil, err
	}
	if err := s.commit(ctx, b); err != nil {
		return nil, err
	}
	return b.snap, nil
}

func get[T any](ctx context.Context, s *Store, resource, id string) (*T, error) {
	data, err := s.redis.HGet(ctx, CollectionKey(resource).String(), id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			Operations.WithLabelValues("get", resultMiss).Inc()
			return nil, ErrNotFound
		}
		Operations.WithLabelValues("get", resultError).Inc()
		return nil, fmt.Errorf("redis hget: %w", err)
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		Operations.WithLabelValues("get", resultError).Inc()
		return nil, fmt.Errorf("%w: %s %q: %v", ErrInvalidEntry, resource, id, err)
	}

	Operations.WithLabelValues("get", resultOK).Inc()
	return &item, nil
}

func list[T any](ctx context.Context, s *Store, resource string, id func(T) string) ([]T, error) {
	values, err := s.redis.HVals(ctx, CollectionKey(resource).String()).Result()
	if err != nil {
		Operations.WithLabelValues("list", resultError).Inc()
		return nil, fmt.Errorf("redis hvals: %w", err)
	}

	items := make([]T, 0, len(values))
	for _, v := range values {
		var item T
		if err := json.Unmarshal([]byte(v), &item); err != nil {
			Operations.WithLabelValues("list", resultError).Inc()
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidEntry, resource, err)
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })

	Operations.WithLabelValues("list", resultOK).Inc()
	return items, nil
}
