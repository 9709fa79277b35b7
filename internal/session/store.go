// internal/session/store.go
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shopstream/storefront/internal/catalog"
	"github.com/shopstream/storefront/internal/models"
)

// Session is the single in-memory home for everything scoped to one
// shopper: identity, cart, checkout position, placed orders and the
// current browse window. It is passed by handle into the services
// rather than living in ambient global state. Callers must hold the
// embedded mutex while reading or mutating any field.
type Session struct {
	sync.Mutex

	ID uuid.UUID

	// Identity (auth stub). Authenticated never implies verified
	// credentials; see services.CredentialVerifier.
	Authenticated bool
	Name          string
	Email         string

	Cart     *models.Cart
	Checkout models.CheckoutState
	Orders   []models.Order

	// Browse window: current filter predicates plus the visible-count
	// cursor of the incremental reveal. Loading blocks overlapping
	// load-more calls.
	Filter  catalog.FilterState
	Visible int
	Loading bool
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Store is the registry of live sessions. Stale sessions are evicted
// by a background sweep, same scheme as an IP rate-limiter visitor map.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
	ttl      time.Duration
	baseSize int
}

func NewStore(ttl time.Duration, basePageSize int) *Store {
	s := &Store{
		sessions: make(map[uuid.UUID]*entry),
		ttl:      ttl,
		baseSize: basePageSize,
	}
	go s.sweep()
	return s
}

func (s *Store) sweep() {
	for {
		time.Sleep(time.Minute)
		s.mu.Lock()
		for id, e := range s.sessions {
			if time.Since(e.lastSeen) > s.ttl {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}

// Get returns the session for id, refreshing its last-seen time.
func (s *Store) Get(id uuid.UUID) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.session, true
}

// Create registers a fresh anonymous session with an empty cart and the
// checkout machine at its initial state.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:       uuid.New(),
		Cart:     models.NewCart(),
		Checkout: models.CheckoutState{Step: models.CheckoutStepCart},
		Visible:  s.baseSize,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = &entry{session: sess, lastSeen: time.Now()}
	s.mu.Unlock()

	return sess
}

// GetOrCreate resolves a client-supplied session id, falling back to a
// new session when the id is absent, malformed or expired.
func (s *Store) GetOrCreate(raw string) *Session {
	if raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			if sess, ok := s.Get(id); ok {
				return sess
			}
		}
	}
	return s.Create()
}
