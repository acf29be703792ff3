package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-management-api/internal/model"
	"event-management-api/internal/store/sqlite"
)

const testSecret = "test-secret-32-bytes-minimum----"

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	st, err := sqlite.OpenMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewManager(st, st, testSecret, time.Hour)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	p, err := m.Register(ctx, Credentials{Username: "  alice ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.NotZero(t, p.ID)

	u, err := m.users.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", u.PasswordHash)
	assert.True(t, CheckPassword(u.PasswordHash, "pw"))

	_, err = m.Register(ctx, Credentials{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, model.ErrConflict)
	assert.Equal(t, 400, model.KindOf(err).HTTPStatus())
}

func TestRegisterValidation(t *testing.T) {
	m := newTestManager(t)
	cases := map[string]Credentials{
		"empty username":    {Username: "", Password: "pw"},
		"blank username":    {Username: "   ", Password: "pw"},
		"empty password":    {Username: "bob", Password: ""},
		"long username":     {Username: strings.Repeat("u", 151), Password: "pw"},
		"password too long": {Username: "bob", Password: strings.Repeat("p", 73)},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := m.Register(context.Background(), c)
			assert.ErrorIs(t, err, model.ErrValidation)
		})
	}
}

func TestLoginResolveLogout(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	_, err := m.Register(ctx, Credentials{Username: "carol", Password: "secret"})
	require.NoError(t, err)

	ticket, err := m.Login(ctx, Credentials{Username: " carol", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "carol", ticket.Profile.Username)
	assert.NotEmpty(t, ticket.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), ticket.ExpiresAt, time.Minute)

	who, err := m.Resolve(ctx, ticket.Token)
	require.NoError(t, err)
	assert.True(t, who.Authenticated())
	assert.Equal(t, ticket.Profile.ID, who.UserID)
	assert.Equal(t, &Profile{ID: who.UserID, Username: "carol"}, m.WhoAmI(who))

	require.NoError(t, m.Logout(ctx, who))
	_, err = m.Resolve(ctx, ticket.Token)
	assert.Error(t, err)

	// revoked, not deleted
	sess, err := m.sessions.SessionByID(ctx, who.SessionID)
	require.NoError(t, err)
	assert.True(t, sess.Revoked)
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	_, err := m.Register(ctx, Credentials{Username: "dave", Password: "right"})
	require.NoError(t, err)

	for _, c := range []Credentials{
		{Username: "dave", Password: "wrong"},
		{Username: "nobody", Password: "right"},
		{Username: "", Password: ""},
	} {
		_, err := m.Login(ctx, c)
		assert.ErrorIs(t, err, model.ErrAuth)
		assert.Equal(t, "invalid credentials", model.PublicMessage(err))
	}
}

func TestResolveRejects(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)
	_, err := m.Register(ctx, Credentials{Username: "erin", Password: "pw"})
	require.NoError(t, err)
	ticket, err := m.Login(ctx, Credentials{Username: "erin", Password: "pw"})
	require.NoError(t, err)

	t.Run("empty", func(t *testing.T) {
		_, err := m.Resolve(ctx, "")
		assert.ErrorIs(t, err, ErrNoSession)
	})
	t.Run("wrong secret", func(t *testing.T) {
		other := NewManager(m.users, m.sessions, "another-secret", time.Hour)
		_, err := other.Resolve(ctx, ticket.Token)
		assert.Error(t, err)
	})
	t.Run("none alg", func(t *testing.T) {
		c := Claims{UserID: 1, SessionID: "x", RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Resolve(ctx, raw)
		assert.Error(t, err)
	})
	t.Run("unknown session", func(t *testing.T) {
		now := time.Now()
		raw, err := MakeToken(ticket.Profile.ID, "00000000-0000-0000-0000-000000000000", m.secret, now, now.Add(time.Hour))
		require.NoError(t, err)
		_, err = m.Resolve(ctx, raw)
		assert.Error(t, err)
	})
	t.Run("expired session", func(t *testing.T) {
		late := *m
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Resolve(ctx, ticket.Token)
		assert.ErrorIs(t, err, ErrNoSession)
	})
}

func TestLogoutAnonymous(t *testing.T) {
	m := newTestManager(t)
	err := m.Logout(context.Background(), Identity{})
	assert.ErrorIs(t, err, model.ErrAuth)
	assert.Nil(t, m.WhoAmI(Identity{}))
}

func TestParseTokenRoundTrip(t *testing.T) {
	now := time.Now()
	raw, err := MakeToken(7, "sid-1", []byte(testSecret), now, now.Add(time.Minute))
	require.NoError(t, err)

	c, err := ParseToken(raw, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.UserID)
	assert.Equal(t, "sid-1", c.SessionID)

	expired, err := MakeToken(7, "sid-1", []byte(testSecret), now.Add(-time.Hour), now.Add(-time.Minute))
	require.NoError(t, err)
	_, err = ParseToken(expired, []byte(testSecret))
	assert.Error(t, err)
}
