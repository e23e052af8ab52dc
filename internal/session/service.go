package session

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/marketmarket/internal/domain"
	"github.com/MrSnakeDoc/marketmarket/internal/logger"
	"github.com/MrSnakeDoc/marketmarket/internal/metrics"
)

const lockStripes = 64

// Service owns the sessions of remote clients. Commands against one session
// are serialized; different sessions proceed in parallel.
type Service struct {
	store   Store
	catalog Catalog
	ttl     time.Duration
	logger  logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	newID   func() string

	locks [lockStripes]sync.Mutex
}

// NewService creates a session service. m may be nil.
func NewService(store Store, catalog Catalog, ttl time.Duration, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		ttl:     ttl,
		logger:  log,
		metrics: m,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Backend returns the name of the underlying store.
func (s *Service) Backend() string { return s.store.Name() }

// Ping checks the underlying store.
func (s *Service) Ping(ctx context.Context) error { return s.store.Ping(ctx) }

// Create opens a new session in its initial state.
func (s *Service) Create(ctx context.Context) (string, State, error) {
	id := s.newID()
	st := NewState(s.now())

	if err := s.store.Put(ctx, id, st.Snapshot(), s.ttl); err != nil {
		return "", State{}, fmt.Errorf("failed to create session: %w", err)
	}

	s.metrics.SessionCreated()
	s.logger.Info("session created",
		logger.String("session_id", id),
		logger.String("backend", s.store.Name()))
	return id, st, nil
}

// Get returns the current state of a session. Favorites that left the
// catalog since the session was saved are dropped; the next mutation
// persists the pruned set.
func (s *Service) Get(ctx context.Context, id string) (State, error) {
	snap, err := s.store.Get(ctx, id)
	if err != nil {
		return State{}, err
	}
	snap, stale := snap.withoutStale(s.catalog)
	if len(stale) > 0 {
		s.logger.Info("dropped favorites missing from catalog",
			logger.String("session_id", id),
			logger.Int("count", len(stale)))
	}
	return snap.State()
}

// Delete closes a session. Deleting an unknown session is not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.logger.Info("session deleted", logger.String("session_id", id))
	return nil
}

func (s *Service) SetSearch(ctx context.Context, id, text string) (State, error) {
	return s.Apply(ctx, id, domain.SetSearch{Text: text})
}

func (s *Service) SetCategory(ctx context.Context, id string, category domain.CategoryID) (State, error) {
	return s.Apply(ctx, id, domain.SetCategory{ID: category})
}

func (s *Service) ToggleFavorite(ctx context.Context, id string, listing domain.ListingID) (State, error) {
	return s.Apply(ctx, id, domain.ToggleFavorite{ID: listing})
}

// Apply runs a view state command against a session.
func (s *Service) Apply(ctx context.Context, id string, cmd domain.Command) (State, error) {
	return s.update(ctx, id, cmd.Name(), func(st State) (State, error) {
		return Dispatch(st, cmd, s.catalog)
	})
}

// SelectTab switches the surface displayed by a session.
func (s *Service) SelectTab(ctx context.Context, id string, tab domain.Tab) (State, error) {
	return s.update(ctx, id, "select_tab", func(st State) (State, error) {
		return SelectTab(st, tab)
	})
}

// update is the read-modify-write cycle shared by every mutation.
func (s *Service) update(ctx context.Context, id, name string, fn func(State) (State, error)) (State, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	st, err := s.Get(ctx, id)
	if err != nil {
		s.metrics.Command(name, resultOf(err))
		return State{}, err
	}

	next, err := fn(st)
	if err != nil {
		s.metrics.Command(name, resultOf(err))
		s.logger.Debug("command rejected",
			logger.String("session_id", id),
			logger.String("command", name),
			logger.Error(err))
		return st, err
	}

	next.UpdatedAt = s.now()
	if err := s.store.Put(ctx, id, next.Snapshot(), s.ttl); err != nil {
		s.metrics.Command(name, "store_error")
		return st, fmt.Errorf("failed to save session: %w", err)
	}

	s.metrics.Command(name, "ok")
	s.logger.Debug("command applied",
		logger.String("session_id", id),
		logger.String("command", name),
		logger.String("category", string(next.View.Category())),
		logger.Int("favorites", next.View.FavoriteCount()),
		logger.String("tab", string(next.Tab)))
	return next, nil
}

func (s *Service) lockFor(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &s.locks[h.Sum32()%lockStripes]
}

func resultOf(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrUnknownCategory):
		return "unknown_category"
	case errors.Is(err, domain.ErrUnknownListing):
		return "unknown_listing"
	case errors.Is(err, domain.ErrUnknownTab):
		return "unknown_tab"
	default:
		return "error"
	}
}
