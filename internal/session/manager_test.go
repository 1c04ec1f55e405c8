package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"golang-food-storefront/internal/cart"
	"golang-food-storefront/internal/models"
	"golang-food-storefront/pkg/auth"
	"golang-food-storefront/pkg/gateway"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePersistence struct {
	tokens map[string]string
	auths  map[string][]byte
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{
		tokens: make(map[string]string),
		auths:  make(map[string][]byte),
	}
}

func (f *fakePersistence) Save(ctx context.Context, id, token string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.tokens[id] = token
	f.auths[id] = raw
	return nil
}

func (f *fakePersistence) LoadToken(ctx context.Context, id string) (string, error) {
	token, ok := f.tokens[id]
	if !ok {
		return "", errors.New("no persisted session")
	}
	return token, nil
}

func (f *fakePersistence) LoadAuth(ctx context.Context, id string, dest interface{}) error {
	raw, ok := f.auths[id]
	if !ok {
		return errors.New("no persisted session")
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakePersistence) Clear(ctx context.Context, id string) error {
	delete(f.tokens, id)
	delete(f.auths, id)
	return nil
}

type nopRemote struct {
	cleared bool
}

func (n *nopRemote) Fetch(ctx context.Context) (models.CartSnapshot, error) {
	return models.CartSnapshot{}, nil
}
func (n *nopRemote) Add(ctx context.Context, menuItemID string, quantity int) error { return nil }

func (n *nopRemote) Remove(ctx context.Context, menuItemID string) error { return nil }

func (n *nopRemote) Update(ctx context.Context, menuItemID string, quantity int) error { return nil }
func (n *nopRemote) Clear(ctx context.Context) error {
	n.cleared = true
	return nil
}
func (n *nopRemote) Checkout(ctx context.Context, items []cart.Item) (models.Order, error) {
	return models.Order{}, nil
}

func testToken(t *testing.T, role string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "u1",
		"role":    role,
	}
	if !expiresAt.IsZero() {
		claims["exp"] = expiresAt.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("remote-secret"))
	require.NoError(t, err)
	return token
}

func newTestManager(p Persistence, remote *nopRemote) *Manager {
	return NewManager(p, auth.NewInspector(), func(ts gateway.TokenSource) *cart.Session {
		return cart.NewSession(remote)
	})
}

func upstreamSession(t *testing.T, role string) models.Session {
	return models.Session{
		Token: testToken(t, role, time.Now().Add(time.Hour)),
		User:  models.AuthUser{ID: "u1", Username: "jo", Email: "jo@example.com", Role: role},
	}
}

func TestResolve_NoPersistedSessionIsAnonymous(t *testing.T) {
	m := newTestManager(newFakePersistence(), &nopRemote{})

	assert.Nil(t, m.Resolve(context.Background(), ""))
	assert.Nil(t, m.Resolve(context.Background(), "unknown"))
	assert.Equal(t, Anonymous, m.Resolve(context.Background(), "unknown").View())
}

func TestLogin_SelectsViewClassByRole(t *testing.T) {
	m := newTestManager(newFakePersistence(), &nopRemote{})

	user, err := m.Login(context.Background(), upstreamSession(t, "user"))
	require.NoError(t, err)
	assert.Equal(t, AuthenticatedUser, user.View())

	admin, err := m.Login(context.Background(), upstreamSession(t, "admin"))
	require.NoError(t, err)
	assert.Equal(t, Admin, admin.View())
	assert.True(t, admin.View().CanAccess(UserProtected))
	assert.True(t, admin.View().CanAccess(AdminProtected))
	assert.False(t, user.View().CanAccess(AdminProtected))
}

func TestLogin_RejectsInvalidUpstreamSession(t *testing.T) {
	m := newTestManager(newFakePersistence(), &nopRemote{})

	_, err := m.Login(context.Background(), models.Session{})

	assert.Error(t, err)
}

func TestResolve_RebuildsFromPersistenceAfterRestart(t *testing.T) {
	persistence := newFakePersistence()
	first := newTestManager(persistence, &nopRemote{})

	sess, err := first.Login(context.Background(), upstreamSession(t, "admin"))
	require.NoError(t, err)

	// New manager, same persistence: a process restart.
	second := newTestManager(persistence, &nopRemote{})
	rebuilt := second.Resolve(context.Background(), sess.ID)

	require.NotNil(t, rebuilt)
	assert.Equal(t, Admin, rebuilt.View())
	assert.Equal(t, sess.User, rebuilt.User)
	assert.Equal(t, sess.Token(), rebuilt.Token())
}

func TestResolve_StaleTokenFallsBackToAnonymous(t *testing.T) {
	persistence := newFakePersistence()
	expired := models.Session{
		Token: testToken(t, "admin", time.Now().Add(-time.Hour)),
		User:  models.AuthUser{ID: "u1", Role: "admin"},
	}
	require.NoError(t, persistence.Save(context.Background(), "sid", expired.Token, expired))

	m := newTestManager(persistence, &nopRemote{})
	sess := m.Resolve(context.Background(), "sid")

	assert.Nil(t, sess)
	assert.Equal(t, Anonymous, sess.View())
	// Stale session data is cleared, not retried.
	_, err := persistence.LoadToken(context.Background(), "sid")
	assert.Error(t, err)
}

func TestResolve_RoleMismatchInvalidatesSession(t *testing.T) {
	persistence := newFakePersistence()
	// Token says user, persisted object claims admin.
	tampered := models.Session{
		Token: testToken(t, "user", time.Now().Add(time.Hour)),
		User:  models.AuthUser{ID: "u1", Role: "admin"},
	}
	require.NoError(t, persistence.Save(context.Background(), "sid", tampered.Token, tampered))

	m := newTestManager(persistence, &nopRemote{})

	assert.Nil(t, m.Resolve(context.Background(), "sid"))
}

func TestLogout_ClearsEverything(t *testing.T) {
	persistence := newFakePersistence()
	remote := &nopRemote{}
	m := newTestManager(persistence, remote)

	sess, err := m.Login(context.Background(), upstreamSession(t, "user"))
	require.NoError(t, err)
	require.NoError(t, sess.Cart.Add(context.Background(), cart.Item{ID: "m1", Price: 5}))

	require.NoError(t, m.Logout(context.Background(), sess.ID))

	assert.True(t, remote.cleared)
	assert.Empty(t, sess.Cart.State().Items)
	assert.Nil(t, m.Resolve(context.Background(), sess.ID))
}
