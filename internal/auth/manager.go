// Package auth owns credentials and sessions: bcrypt digests, signed session
// cookies and the Manager that registers, logs in and resolves callers.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"event-management-api/internal/model"
	"event-management-api/internal/store"
)

var ErrNoSession = errors.New("no active session")

// UserStore and SessionStore are the slices of the store the manager needs.
type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	UserByUsername(ctx context.Context, username string) (*model.User, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

type SessionStore interface {
	CreateSession(ctx context.Context, s *model.Session) error
	SessionByID(ctx context.Context, id string) (*model.Session, error)
	RevokeSession(ctx context.Context, id string) error
}

type Credentials struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

// Ticket is what a successful login hands back to the transport layer.
type Ticket struct {
	Profile   Profile
	Token     string
	ExpiresAt time.Time
}

type Manager struct {
	users    UserStore
	sessions SessionStore
	secret   []byte
	ttl      time.Duration
	validate *validator.Validate

	now func() time.Time
}

func NewManager(users UserStore, sessions SessionStore, secret string, ttl time.Duration) *Manager {
	return &Manager{
		users:    users,
		sessions: sessions,
		secret:   []byte(secret),
		ttl:      ttl,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

func (m *Manager) TTL() time.Duration { return m.ttl }

func (m *Manager) Register(ctx context.Context, c Credentials) (*Profile, error) {
	c.Username = strings.TrimSpace(c.Username)
	if err := m.check(c); err != nil {
		return nil, err
	}

	if _, err := m.users.UserByUsername(ctx, c.Username); err == nil {
		return nil, model.ConflictError("username already taken")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, model.Wrap(model.KindInternal, "lookup user", err)
	}

	hash, err := HashPassword(c.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, model.ValidationError("password is too long")
	}
	if err != nil {
		return nil, model.Wrap(model.KindInternal, "hash password", err)
	}

	u := &model.User{Username: c.Username, PasswordHash: hash}
	if err := m.users.CreateUser(ctx, u); err != nil {
		// lost a race with a concurrent register
		if errors.Is(err, store.ErrConflict) {
			return nil, model.ConflictError("username already taken")
		}
		return nil, model.Wrap(model.KindInternal, "create user", err)
	}
	return &Profile{ID: u.ID, Username: u.Username}, nil
}

func (m *Manager) Login(ctx context.Context, c Credentials) (*Ticket, error) {
	c.Username = strings.TrimSpace(c.Username)
	if c.Username == "" || c.Password == "" {
		return nil, model.AuthError("invalid credentials")
	}

	u, err := m.users.UserByUsername(ctx, c.Username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, model.AuthError("invalid credentials")
	}
	if err != nil {
		return nil, model.Wrap(model.KindInternal, "lookup user", err)
	}
	if !CheckPassword(u.PasswordHash, c.Password) {
		return nil, model.AuthError("invalid credentials")
	}

	now := m.now()
	sess := &model.Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.sessions.CreateSession(ctx, sess); err != nil {
		return nil, model.Wrap(model.KindInternal, "create session", err)
	}

	tok, err := MakeToken(u.ID, sess.ID, m.secret, now, sess.ExpiresAt)
	if err != nil {
		return nil, model.Wrap(model.KindInternal, "sign token", err)
	}
	return &Ticket{
		Profile:   Profile{ID: u.ID, Username: u.Username},
		Token:     tok,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

func (m *Manager) Logout(ctx context.Context, who Identity) error {
	if !who.Authenticated() {
		return model.AuthError("not logged in")
	}
	err := m.sessions.RevokeSession(ctx, who.SessionID)
	if errors.Is(err, store.ErrNotFound) {
		return model.AuthError("not logged in")
	}
	if err != nil {
		return model.Wrap(model.KindInternal, "revoke session", err)
	}
	return nil
}

// Resolve maps a session token to the caller. Every failure, including
// infrastructure errors, means the caller is anonymous; the error says why.
func (m *Manager) Resolve(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrNoSession
	}
	claims, err := ParseToken(token, m.secret)
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	sess, err := m.sessions.SessionByID(ctx, claims.SessionID)
	if err != nil {
		return Identity{}, fmt.Errorf("load session: %w", err)
	}
	if sess.UserID != claims.UserID || !sess.Active(m.now()) {
		return Identity{}, ErrNoSession
	}

	u, err := m.users.UserByID(ctx, sess.UserID)
	if err != nil {
		return Identity{}, fmt.Errorf("load user: %w", err)
	}
	return Identity{UserID: u.ID, Username: u.Username, SessionID: sess.ID}, nil
}

// WhoAmI is nil for anonymous callers.
func (m *Manager) WhoAmI(who Identity) *Profile {
	if !who.Authenticated() {
		return nil
	}
	return &Profile{ID: who.UserID, Username: who.Username}
}

func (m *Manager) check(c Credentials) error {
	err := m.validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return model.Wrap(model.KindInternal, "validate credentials", err)
	}
	for _, fe := range verrs {
		if fe.Tag() == "max" {
			return model.ValidationError("username must be at most " + fe.Param() + " characters")
		}
	}
	return model.ValidationError("username and password required")
}
