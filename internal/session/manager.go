package session

import (
	"context"
	"log"
	"sync"
	"time"

	"golang-food-storefront/internal/cart"
	"golang-food-storefront/internal/models"
	"golang-food-storefront/pkg/auth"
	"golang-food-storefront/pkg/gateway"

	"github.com/google/uuid"
)

// Persistence is the two-key session store (token + serialized session
// object). pkg/store implements it over redis; tests use fakes.
type Persistence interface {
	Save(ctx context.Context, id, token string, value interface{}) error
	LoadToken(ctx context.Context, id string) (string, error)
	LoadAuth(ctx context.Context, id string, dest interface{}) error
	Clear(ctx context.Context, id string) error
}

// CartFactory builds the cart synchronization session for a new login; the
// session itself is the token source for its cart's upstream calls.
type CartFactory func(ts gateway.TokenSource) *cart.Session

// Session is the authoritative in-memory session value. Role checks read this
// value, never the persisted copy, so storage and memory cannot race.
type Session struct {
	ID    string
	User  models.AuthUser
	Cart  *cart.Session
	token string
}

// Token implements gateway.TokenSource. A nil session is anonymous.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.token
}

// View selects the view class for this session. Nil or tokenless sessions are
// Anonymous; otherwise the role decides.
func (s *Session) View() ViewClass {
	if s == nil || s.token == "" {
		return Anonymous
	}
	return ClassForRole(s.User.Role)
}

// Manager owns every live session in the process. Sessions are created at
// login, rebuilt from persistence on the first request after a restart, and
// destroyed at logout.
type Manager struct {
	mu          sync.RWMutex
	persistence Persistence
	inspector   *auth.Inspector
	newCart     CartFactory
	sessions    map[string]*Session
}

func NewManager(persistence Persistence, inspector *auth.Inspector, newCart CartFactory) *Manager {
	return &Manager{
		persistence: persistence,
		inspector:   inspector,
		newCart:     newCart,
		sessions:    make(map[string]*Session),
	}
}

// Login registers the upstream session under a fresh storefront id, persists
// the two session keys and hydrates the cart from server truth. A hydration
// failure is logged, not fatal: the user starts from an empty local cart and
// the server still owns the real one.
func (m *Manager) Login(ctx context.Context, upstream models.Session) (*Session, error) {
	if err := upstream.Validate(); err != nil {
		return nil, err
	}

	sess := &Session{
		ID:    uuid.New().String(),
		User:  upstream.User,
		token: upstream.Token,
	}
	sess.Cart = m.newCart(sess)

	if err := m.persistence.Save(ctx, sess.ID, upstream.Token, upstream); err != nil {
		return nil, err
	}

	if err := sess.Cart.Hydrate(ctx); err != nil {
		log.Printf("Failed to hydrate cart for session %s: %v", sess.ID, err)
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	return sess, nil
}

// Resolve returns the live session for an id, rebuilding it from persistence
// when the process has restarted. Absent, stale or inconsistent sessions
// resolve to nil, which the caller treats as Anonymous.
func (m *Manager) Resolve(ctx context.Context, id string) *Session {
	if id == "" {
		return nil
	}

	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return sess
	}

	token, err := m.persistence.LoadToken(ctx, id)
	if err != nil {
		return nil
	}

	if m.inspector.Stale(token, time.Now()) {
		m.invalidate(ctx, id)
		return nil
	}

	var upstream models.Session
	if err := m.persistence.LoadAuth(ctx, id, &upstream); err != nil {
		m.invalidate(ctx, id)
		return nil
	}

	// The role inside the token must agree with the persisted session object;
	// a mismatch means one of them was tampered with or went stale.
	if role, err := m.inspector.RoleOf(token); err != nil || role != upstream.User.Role {
		m.invalidate(ctx, id)
		return nil
	}

	sess = &Session{
		ID:    id,
		User:  upstream.User,
		token: token,
	}
	sess.Cart = m.newCart(sess)
	if err := sess.Cart.Hydrate(ctx); err != nil {
		log.Printf("Failed to hydrate cart for session %s: %v", id, err)
	}

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()

	return sess
}

// Logout clears the server cart best-effort, drops local cart state, removes
// the persisted keys and forgets the session.
func (m *Manager) Logout(ctx context.Context, id string) error {
	m.mu.Lock()
	sess := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if sess != nil {
		if err := sess.Cart.Clear(ctx); err != nil {
			log.Printf("Failed to clear server cart at logout: %v", err)
		}
		sess.Cart.Drop()
	}

	return m.persistence.Clear(ctx, id)
}

func (m *Manager) invalidate(ctx context.Context, id string) {
	if err := m.persistence.Clear(ctx, id); err != nil {
		log.Printf("Failed to clear stale session %s: %v", id, err)
	}
}
