//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Manager=Manager"
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/klwxsrx/hwstore-client/pkg/log"
	pkgtime "github.com/klwxsrx/hwstore-client/pkg/time"
)

const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "

	defaultLogoutNotifyTimeout = 5 * time.Second
)

var (
	errLogoutRequested = errors.New("logout requested")
	errLoginSuperseded = errors.New("login superseded by another session change")
)

type (
	Manager interface {
		Login(ctx context.Context, email, password string) (*User, error)
		// RestoreSession returns nil when no valid session could be restored.
		RestoreSession(context.Context) *User
		Logout(context.Context)
		// Authorize attaches the bearer token unless the header already carries an Authorization value.
		Authorize(http.Header)
		OnUnauthorized(context.Context)
		State() Snapshot
		CurrentUser() (*User, bool)
		Close()
	}

	ManagerOption func(*manager)
)

type manager struct {
	api     UserAPI
	store   TokenStore
	decoder TokenDecoder
	clock   pkgtime.Clock
	logger  log.Logger

	listeners           []StateListener
	logoutNotifyTimeout time.Duration

	commit sync.Mutex

	mu         sync.RWMutex
	state      State
	user       *User
	token      Token
	timer      pkgtime.Timer
	generation uint64
	epoch      uint64
	closed     bool
}

func NewManager(
	api UserAPI,
	store TokenStore,
	decoder TokenDecoder,
	opts ...ManagerOption,
) Manager {
	m := &manager{
		api:                 api,
		store:               store,
		decoder:             decoder,
		clock:               pkgtime.NewClock(),
		logger:              log.NewStub(),
		logoutNotifyTimeout: defaultLogoutNotifyTimeout,
		state:               StateAnonymous,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

func WithClock(clock pkgtime.Clock) ManagerOption {
	return func(m *manager) {
		m.clock = clock
	}
}

func WithLogger(logger log.Logger) ManagerOption {
	return func(m *manager) {
		m.logger = logger
	}
}

func WithStateListener(listener StateListener) ManagerOption {
	return func(m *manager) {
		m.listeners = append(m.listeners, listener)
	}
}

func WithLogoutNotifyTimeout(timeout time.Duration) ManagerOption {
	return func(m *manager) {
		m.logoutNotifyTimeout = timeout
	}
}

func (m *manager) Login(ctx context.Context, email, password string) (*User, error) {
	m.mu.Lock()
	epoch := m.epoch
	displaced := m.token
	m.resetLocked(StateAuthenticating)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snapshot)

	user, err := m.login(ctx, epoch, email, password)
	if err != nil {
		m.failLogin(ctx, epoch, displaced != "", err)
	}
	if displaced != "" {
		m.notifyBackend(ctx, displaced)
	}

	return user, err
}

func (m *manager) login(ctx context.Context, epoch uint64, email, password string) (*User, error) {
	token, user, err := m.api.Login(ctx, email, password)
	switch {
	case errors.Is(err, ErrUnauthorized):
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, ErrInvalidCredentials)
	case err != nil:
		return nil, fmt.Errorf("%w: %w: %w", ErrAuthenticationFailed, ErrTransientFailure, err)
	case token == "" || user == nil:
		return nil, fmt.Errorf("%w: %w: response has no token or user", ErrAuthenticationFailed, ErrTransientFailure)
	}

	claims, err := m.decoder.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrAuthenticationFailed, ErrTransientFailure, err)
	}

	expiresIn := claims.ExpiresAt.Sub(m.clock.Now())
	if expiresIn <= 0 {
		return nil, fmt.Errorf("%w: %w: %w", ErrAuthenticationFailed, ErrTransientFailure, ErrSessionExpired)
	}

	displaced, err := m.commitLogin(ctx, epoch, token, user, expiresIn)
	if err != nil {
		return nil, err
	}
	if displaced != "" {
		m.notifyBackend(ctx, displaced)
	}

	m.logger.WithField("expiresAt", claims.ExpiresAt).Info(ctx, "user logged in")
	return copyUser(user), nil
}

// commitLogin makes the attempt the current session unless a logout or restore happened since it started.
// Overlapping login attempts do not supersede each other: the last one to finish wins.
// It returns the token of a session the attempt replaced.
func (m *manager) commitLogin(ctx context.Context, epoch uint64, token Token, user *User, expiresIn time.Duration) (Token, error) {
	m.commit.Lock()
	snapshot, displaced, err := m.commitLoginLocked(ctx, epoch, token, user, expiresIn)
	m.commit.Unlock()
	if err != nil {
		return "", err
	}

	m.notify(snapshot)
	return displaced, nil
}

func (m *manager) commitLoginLocked(
	ctx context.Context,
	epoch uint64,
	token Token,
	user *User,
	expiresIn time.Duration,
) (Snapshot, Token, error) {
	m.mu.RLock()
	superseded := m.epoch != epoch
	m.mu.RUnlock()
	if superseded {
		return Snapshot{}, "", fmt.Errorf("%w: %w", ErrAuthenticationFailed, errLoginSuperseded)
	}

	err := m.store.Save(ctx, token)
	if err != nil {
		return Snapshot{}, "", fmt.Errorf("%w: %w: save token: %w", ErrAuthenticationFailed, ErrTransientFailure, err)
	}

	m.mu.Lock()
	if m.epoch != epoch {
		held := m.token
		m.mu.Unlock()
		m.persist(ctx, held)
		return Snapshot{}, "", fmt.Errorf("%w: %w", ErrAuthenticationFailed, errLoginSuperseded)
	}
	displaced := m.token
	m.resetLocked(StateAuthenticated)
	m.token = token
	m.user = user
	m.armLocked(expiresIn)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	return snapshot, displaced, nil
}

func (m *manager) failLogin(ctx context.Context, epoch uint64, hadSession bool, reason error) {
	m.commit.Lock()
	m.mu.Lock()
	if m.epoch != epoch {
		m.mu.Unlock()
		m.commit.Unlock()
		return
	}
	displaced := m.token
	m.resetLocked(StateAnonymous)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	if hadSession || displaced != "" {
		m.clearStore(ctx)
	}
	m.commit.Unlock()

	m.logger.WithError(reason).Warn(ctx, "login failed")
	m.notify(snapshot)

	if displaced != "" {
		m.notifyBackend(ctx, displaced)
	}
}

func (m *manager) RestoreSession(ctx context.Context) *User {
	token, ok, err := m.store.Load(ctx)
	if err != nil {
		m.logger.WithError(err).Warn(ctx, "failed to load persisted token")
		return nil
	}
	if !ok || token == "" {
		return nil
	}

	m.mu.Lock()
	m.epoch++
	gen := m.resetLocked(StateAuthenticating)
	m.token = token
	snapshot := m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snapshot)

	claims, err := m.decoder.Decode(token)
	if err != nil {
		m.logout(ctx, err, &gen)
		return nil
	}

	expiresIn := claims.ExpiresAt.Sub(m.clock.Now())
	if expiresIn <= 0 {
		m.logout(ctx, ErrSessionExpired, &gen)
		return nil
	}

	user, err := m.api.Current(ctx)
	if err != nil || user == nil {
		m.failRestore(ctx, gen, err)
		return nil
	}

	m.mu.Lock()
	if m.generation != gen {
		m.mu.Unlock()
		return nil
	}
	m.user = user
	m.state = StateAuthenticated
	m.armLocked(expiresIn)
	snapshot = m.snapshotLocked()
	m.mu.Unlock()

	m.logger.WithField("expiresAt", claims.ExpiresAt).Info(ctx, "session restored")
	m.notify(snapshot)
	return copyUser(user)
}

func (m *manager) failRestore(ctx context.Context, gen uint64, reason error) {
	m.mu.Lock()
	if m.generation != gen {
		m.mu.Unlock()
		return
	}
	m.resetLocked(StateAnonymous)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.clearStore(ctx)
	m.logger.WithError(reason).Warn(ctx, "failed to restore session")
	m.notify(snapshot)
}

func (m *manager) Logout(ctx context.Context) {
	m.logout(ctx, errLogoutRequested, nil)
}

func (m *manager) OnUnauthorized(ctx context.Context) {
	m.logout(ctx, ErrUnauthorized, nil)
}

// logout ends the session held at generation gen, or any session when gen is nil.
func (m *manager) logout(ctx context.Context, reason error, gen *uint64) {
	m.mu.Lock()
	if m.token == "" || (gen != nil && *gen != m.generation) {
		m.mu.Unlock()
		return
	}
	token := m.token
	m.epoch++
	m.resetLocked(StateAnonymous)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.clearStore(ctx)
	m.logger.
		With(log.Fields{
			"state":  snapshot.State.String(),
			"reason": reason.Error(),
		}).
		Info(ctx, "user logged out")
	m.notify(snapshot)

	m.notifyBackend(ctx, token)
}

func (m *manager) notifyBackend(ctx context.Context, token Token) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.logoutNotifyTimeout)
	defer cancel()

	err := m.api.Logout(ctx, token)
	if err != nil {
		m.logger.WithError(err).Warn(ctx, "failed to notify backend about logout")
	}
}

func (m *manager) Authorize(header http.Header) {
	if header.Get(AuthorizationHeader) != "" {
		return
	}

	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()

	if token != "" {
		header.Set(AuthorizationHeader, BearerPrefix+string(token))
	}
}

func (m *manager) State() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

func (m *manager) CurrentUser() (*User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != StateAuthenticated {
		return nil, false
	}
	return copyUser(m.user), true
}

func (m *manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.generation++
	m.stopTimerLocked()
}

// resetLocked drops the in-memory session and invalidates pending timers and in-flight operations.
func (m *manager) resetLocked(state State) uint64 {
	m.stopTimerLocked()
	m.generation++
	m.state = state
	m.user = nil
	m.token = ""
	return m.generation
}

func (m *manager) armLocked(d time.Duration) {
	m.stopTimerLocked()
	if m.closed {
		return
	}

	gen := m.generation
	m.timer = m.clock.AfterFunc(d, func() {
		m.logout(context.Background(), ErrSessionExpired, &gen)
	})
}

func (m *manager) stopTimerLocked() {
	if m.timer == nil {
		return
	}

	m.timer.Stop()
	m.timer = nil
}

func (m *manager) snapshotLocked() Snapshot {
	return Snapshot{
		State: m.state,
		User:  copyUser(m.user),
	}
}

// persist brings the store in line with the token held in memory.
func (m *manager) persist(ctx context.Context, token Token) {
	if token == "" {
		m.clearStore(ctx)
		return
	}

	err := m.store.Save(ctx, token)
	if err != nil {
		m.logger.WithError(err).Error(ctx, "failed to persist token")
	}
}

func (m *manager) clearStore(ctx context.Context) {
	err := m.store.Clear(ctx)
	if err != nil {
		m.logger.WithError(err).Error(ctx, "failed to clear persisted token")
	}
}

func (m *manager) notify(snapshot Snapshot) {
	for _, listener := range m.listeners {
		listener(snapshot)
	}
}

func copyUser(user *User) *User {
	if user == nil {
		return nil
	}

	result := *user
	return &result
}
