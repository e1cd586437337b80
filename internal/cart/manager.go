package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Manager owns the live session carts and serialises all access to them.
type Manager struct {
	mu      sync.Mutex
	carts   map[string]*entry
	maxIdle time.Duration
	logger  zerolog.Logger
	nowFunc func() time.Time
}

type entry struct {
	cart     *Cart
	lastUsed time.Time
}

// DefaultMaxIdle is how long an untouched cart survives before pruning.
const DefaultMaxIdle = 24 * time.Hour

// NewManager creates a cart manager.
func NewManager(maxIdle time.Duration, logger zerolog.Logger) *Manager {
	if maxIdle <= 0 {
		maxIdle = DefaultMaxIdle
	}
	return &Manager{
		carts:   make(map[string]*entry),
		maxIdle: maxIdle,
		logger:  logger.With().Str("component", "cart-manager").Logger(),
		nowFunc: time.Now,
	}
}

// Create allocates a new empty cart and returns its ID.
func (m *Manager) Create() *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := New(uuid.New().String())
	m.carts[c.ID()] = &entry{cart: c, lastUsed: m.nowFunc()}

	m.logger.Debug().Str("cart_id", c.ID()).Msg("cart created")
	return c
}

// With runs fn against the cart under the manager lock. Returns false when the
// cart does not exist (expired or never created).
func (m *Manager) With(cartID string, fn func(*Cart)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.carts[cartID]
	if !ok {
		return false
	}
	e.lastUsed = m.nowFunc()
	fn(e.cart)
	return true
}

// Delete discards a cart.
func (m *Manager) Delete(cartID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, cartID)
}

// Prune drops carts idle longer than maxIdle and returns how many were removed.
func (m *Manager) Prune() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.nowFunc().Add(-m.maxIdle)
	removed := 0
	for id, e := range m.carts {
		if e.lastUsed.Before(cutoff) {
			delete(m.carts, id)
			removed++
		}
	}

	if removed > 0 {
		m.logger.Debug().Int("removed", removed).Msg("pruned idle carts")
	}
	return removed
}
