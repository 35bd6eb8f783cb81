// Package session owns the authenticated identity of the running client.
//
// Manager is the single writer of the in-memory session and of its persisted
// snapshot. Restore, Login and Logout are serialized: a call issued while
// another one runs waits for it to finish. Readers (the access gate, the
// presentation layer) use State, Current or Subscribe.
//
// States: Anonymous and Authenticated(role). Login moves Anonymous to
// Authenticated, Logout moves back, and Restore may start the client
// directly in Authenticated when a valid snapshot exists. Login while
// Authenticated fails with common.ErrAlreadyAuthenticated; a role change
// always goes through Logout.
package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/healthguard/internal/common"
	"github.com/dmitrijs2005/healthguard/internal/directory"
	"github.com/dmitrijs2005/healthguard/internal/logging"
	"github.com/dmitrijs2005/healthguard/internal/models"
	"github.com/dmitrijs2005/healthguard/internal/notify"
	"github.com/dmitrijs2005/healthguard/internal/store"
	"github.com/google/uuid"
)

// State is what readers see of the session. Restored is false until the
// first Restore completes; Session is nil while Anonymous.
type State struct {
	Restored bool
	Session  *models.Session
}

// Authenticated reports whether a session exists.
func (s State) Authenticated() bool {
	return s.Session != nil
}

// Option customizes a Manager.
type Option func(*Manager)

// WithCodec sets the snapshot codec. The default is JSONCodec.
func WithCodec(c Codec) Option {
	return func(m *Manager) { m.codec = c }
}

// WithNotifier sets the receiver of login failure alerts.
func WithNotifier(n notify.Notifier) Option {
	return func(m *Manager) { m.notifier = n }
}

// WithNavigator sets the receiver of navigation requests.
func WithNavigator(n notify.Navigator) Option {
	return func(m *Manager) { m.navigator = n }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDGenerator overrides session id generation.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) { m.newID = fn }
}

type Manager struct {
	// op serializes Restore, Login and Logout.
	op sync.Mutex

	// mu guards the fields below it.
	mu       sync.RWMutex
	current  *models.Session
	restored bool
	subs     map[int]func(State)
	nextSub  int

	dir       directory.Directory
	repo      store.Repository
	codec     Codec
	log       logging.Logger
	notifier  notify.Notifier
	navigator notify.Navigator
	now       func() time.Time
	newID     func() string
}

// NewManager constructs a Manager reading identities from dir and keeping
// the snapshot in repo.
func NewManager(dir directory.Directory, repo store.Repository, log logging.Logger, opts ...Option) *Manager {
	m := &Manager{
		subs:      make(map[int]func(State)),
		dir:       dir,
		repo:      repo,
		codec:     JSONCodec{},
		log:       log.With("component", "session"),
		notifier:  notify.Discard{},
		navigator: notify.Discard{},
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Restore loads the persisted snapshot. A missing snapshot yields
// (nil, false). A snapshot that cannot be decoded is deleted and also yields
// (nil, false); Restore never reports an error. If a session is already held
// in memory it wins over the snapshot and is returned as is.
func (m *Manager) Restore(ctx context.Context) (*models.Session, bool) {
	m.op.Lock()
	defer m.op.Unlock()

	sess := m.restore(ctx)

	m.mu.Lock()
	m.restored = true
	m.mu.Unlock()
	m.publish()

	if sess == nil {
		return nil, false
	}
	return sess.Clone(), true
}

func (m *Manager) restore(ctx context.Context) *models.Session {
	if cur := m.session(); cur != nil {
		return cur
	}

	data, err := m.repo.Get(ctx, common.SessionKey)
	if err != nil {
		m.log.Warn(ctx, "session snapshot unreadable", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	sess, err := m.codec.Decode(data)
	if err != nil {
		corruptSnapshotsTotal.Inc()
		m.log.Warn(ctx, "discarding session snapshot", "error", err)
		if err := m.repo.Delete(ctx, common.SessionKey); err != nil {
			persistFailuresTotal.Inc()
			m.log.Error(ctx, "failed to delete corrupt session snapshot", "error", err)
		}
		return nil
	}

	m.setSession(sess)
	m.log.Info(ctx, "session restored", "username", sess.User.Username, "role", sess.Role())
	return sess
}

// Login checks the credentials and, on success, establishes a session and
// returns the welcome message. Failures are common.ErrUnknownUser,
// common.ErrInvalidPassword or, when a session already exists,
// common.ErrAlreadyAuthenticated; all leave the current state unchanged.
// A failed snapshot write is logged and does not fail the login.
func (m *Manager) Login(ctx context.Context, username, password string) (string, error) {
	m.op.Lock()
	defer m.op.Unlock()

	msg, err := m.login(ctx, username, password)
	if err != nil {
		return "", err
	}

	m.publish()
	m.navigator.Navigate(ctx, notify.Navigation{To: notify.DestinationProtected})
	return msg, nil
}

func (m *Manager) login(ctx context.Context, username, password string) (string, error) {
	if cur := m.session(); cur != nil {
		loginAttemptsTotal.WithLabelValues(outcomeAlreadyAuthenticated).Inc()
		m.log.Info(ctx, "login refused: session exists", "username", username, "current", cur.User.Username)
		return "", common.ErrAlreadyAuthenticated
	}

	entry, err := m.dir.Lookup(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			loginAttemptsTotal.WithLabelValues(outcomeUnknownUser).Inc()
			m.log.Info(ctx, "login failed: user not found", "username", username)
			m.notifier.Notify(ctx, notify.Alert{Level: notify.LevelInfo, Title: "Login Failed", Message: "Username not found"})
			return "", common.ErrUnknownUser
		}
		loginAttemptsTotal.WithLabelValues(outcomeError).Inc()
		m.log.Error(ctx, "credential lookup failed", "username", username, "error", err)
		return "", fmt.Errorf("lookup %q: %w", username, err)
	}

	if subtle.ConstantTimeCompare([]byte(entry.Password), []byte(password)) != 1 {
		loginAttemptsTotal.WithLabelValues(outcomeInvalidPassword).Inc()
		m.log.Info(ctx, "login failed: invalid password", "username", username)
		m.notifier.Notify(ctx, notify.Alert{Level: notify.LevelInfo, Title: "Login Failed", Message: "Invalid password"})
		return "", common.ErrInvalidPassword
	}

	sess := &models.Session{
		ID:            m.newID(),
		User:          entry.Profile.Clone(),
		EstablishedAt: m.now().UTC(),
	}
	m.setSession(sess)
	m.persist(ctx, sess)

	loginAttemptsTotal.WithLabelValues(outcomeSuccess).Inc()
	m.log.Info(ctx, "login succeeded", "username", username, "role", sess.Role())

	return WelcomeMessage(sess.User), nil
}

func (m *Manager) persist(ctx context.Context, sess *models.Session) {
	data, err := m.codec.Encode(sess)
	if err == nil {
		err = m.repo.Set(ctx, common.SessionKey, data)
	}
	if err != nil {
		persistFailuresTotal.Inc()
		m.log.Warn(ctx, "session snapshot not saved; session lasts until exit", "error", err)
	}
}

// Logout ends the session and deletes the snapshot. Calling it while
// Anonymous is a no-op apart from the delete.
func (m *Manager) Logout(ctx context.Context) {
	m.op.Lock()
	defer m.op.Unlock()

	if !m.logout(ctx) {
		return
	}
	m.publish()
	m.navigator.Navigate(ctx, notify.Navigation{To: notify.DestinationPublic})
}

func (m *Manager) logout(ctx context.Context) bool {
	prev := m.session()
	m.setSession(nil)

	if err := m.repo.Delete(ctx, common.SessionKey); err != nil {
		persistFailuresTotal.Inc()
		m.log.Error(ctx, "failed to delete session snapshot", "error", err)
	}

	if prev != nil {
		m.log.Info(ctx, "logged out", "username", prev.User.Username)
	}
	return prev != nil
}

// Current returns a copy of the session, or nil while Anonymous.
func (m *Manager) Current() *models.Session {
	return m.session().Clone()
}

// State returns a copy of the current state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return State{Restored: m.restored, Session: m.current.Clone()}
}

// Subscribe registers fn to receive the state after every transition and
// after Restore. fn runs on the goroutine that caused the change, while the
// change is still serialized, so subscribers see states in transition order.
// fn may read State and Current but must not call Restore, Login or Logout.
// The same holds for the Navigator. The returned func removes the
// subscription.
func (m *Manager) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

func (m *Manager) publish() {
	m.mu.RLock()
	st := State{Restored: m.restored, Session: m.current.Clone()}
	subs := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.RUnlock()

	for _, fn := range subs {
		fn(st)
	}
}

func (m *Manager) session() *models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Manager) setSession(s *models.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = s
}

// WelcomeMessage is the greeting returned by a successful login.
func WelcomeMessage(p models.Profile) string {
	return fmt.Sprintf("Welcome back, %s!", p.Name)
}
