// Package session owns the single authoritative answer to "is the user
// logged in, and with what profile". It keeps the in-memory session, the
// keystore and the backend consistent, and owns the display settings every
// formatting call depends on.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mperko/cjenik/internal/api"
	"github.com/mperko/cjenik/internal/keystore"
	"github.com/mperko/cjenik/internal/model"
)

// State is the session lifecycle state.
type State string

const (
	StateUnknown       State = "unknown"
	StateRestoring     State = "restoring"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// ErrNotAuthenticated reports an operation that needs a logged-in session.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrSessionExpired reports that the server rejected the token (401) and
// the session was logged out as a consequence.
var ErrSessionExpired = errors.New("session expired")

// ErrSettingReverted reports that an optimistic setting change failed
// remotely and the local value was rolled back.
var ErrSettingReverted = errors.New("setting update failed and was reverted")

type revertedError struct {
	cause error
}

func (e *revertedError) Error() string {
	return fmt.Sprintf("setting update failed and was reverted: %v", e.cause)
}

func (e *revertedError) Is(target error) bool { return target == ErrSettingReverted }

func (e *revertedError) Unwrap() error { return e.cause }

// Manager is the session manager. All fields are guarded by mu; the
// manager is the only writer of session and display state, screens only
// read through the accessors.
type Manager struct {
	mu       sync.Mutex
	client   *api.Client
	store    *keystore.Store
	fallback model.DisplaySettings

	state    State
	profile  model.Profile
	display  model.DisplaySettings
	updating bool
}

// NewManager creates a manager in StateUnknown with the fallback display
// settings in effect until a profile is adopted.
func NewManager(client *api.Client, store *keystore.Store, fallback model.DisplaySettings) *Manager {
	return &Manager{
		client:   client,
		store:    store,
		fallback: fallback,
		state:    StateUnknown,
		display:  fallback,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Profile returns the adopted profile; ok is false unless authenticated.
func (m *Manager) Profile() (model.Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile, m.state == StateAuthenticated
}

// Display returns the display settings currently in effect. The value may
// change between calls whenever a profile is adopted or a setting changes;
// callers must not cache it across awaited operations.
func (m *Manager) Display() model.DisplaySettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.display
}

// UpdatingProfile reports whether a profile refresh is in flight.
func (m *Manager) UpdatingProfile() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updating
}

// Restore replays a persisted session at startup. A persisted token is
// only trusted after the server confirms it; any failure clears the
// keystore so the session never claims authentication the server would
// reject.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	m.state = StateRestoring
	m.mu.Unlock()

	token, err := m.store.Get(keystore.KeyAuthToken)
	if err != nil {
		if !errors.Is(err, keystore.ErrNotFound) {
			slog.Warn("reading persisted token failed", "error", err)
		}
		return m.clearToAnonymous(ctx, false)
	}
	if _, err := m.store.Get(keystore.KeyUser); err != nil {
		// Token without profile: the login write was interrupted.
		return m.clearToAnonymous(ctx, false)
	}

	m.client.SetToken(token)
	profile, err := m.client.Profile(ctx)
	if err != nil {
		slog.Info("persisted token rejected, clearing session", "error", err)
		return m.clearToAnonymous(ctx, false)
	}

	// The server's profile is authoritative; refresh the persisted copy.
	if err := m.persistProfile(profile); err != nil {
		return m.clearToAnonymous(ctx, false)
	}

	m.mu.Lock()
	m.profile = profile
	m.display.Apply(profile)
	m.state = StateAuthenticated
	m.mu.Unlock()
	return nil
}

// Login exchanges credentials for a session. On success the token is
// persisted before the profile, bounding the window where one exists
// without the other; failures leave the previous state untouched.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	token, profile, err := m.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return m.adopt(token, profile)
}

// Signup registers an account and starts a session with the response.
func (m *Manager) Signup(ctx context.Context, email, password string) error {
	token, profile, err := m.client.Signup(ctx, email, password)
	if err != nil {
		return err
	}
	return m.adopt(token, profile)
}

func (m *Manager) adopt(token string, profile model.Profile) error {
	if err := m.store.Set(keystore.KeyAuthToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := m.persistProfile(profile); err != nil {
		return err
	}

	m.client.SetToken(token)

	m.mu.Lock()
	m.profile = profile
	m.display.Apply(profile)
	m.state = StateAuthenticated
	m.mu.Unlock()
	return nil
}

// Logout ends the session. The remote invalidation is best effort: its
// failure is logged and local state is cleared regardless, so the user is
// never stuck logged in locally.
func (m *Manager) Logout(ctx context.Context) error {
	return m.clearToAnonymous(ctx, true)
}

func (m *Manager) clearToAnonymous(ctx context.Context, invalidateRemote bool) error {
	if invalidateRemote && m.client.Token() != "" {
		if err := m.client.Logout(ctx); err != nil {
			slog.Warn("remote logout failed", "error", err)
		}
	}

	errToken := m.store.Delete(keystore.KeyAuthToken)
	errUser := m.store.Delete(keystore.KeyUser)

	m.client.SetToken("")

	m.mu.Lock()
	m.profile = model.Profile{}
	m.display = m.fallback
	m.state = StateAnonymous
	m.mu.Unlock()

	if errToken != nil {
		return fmt.Errorf("clear persisted token: %w", errToken)
	}
	if errUser != nil {
		return fmt.Errorf("clear persisted profile: %w", errUser)
	}
	return nil
}

// RefreshProfile re-fetches the profile from the server. A 401 means the
// session expired and forces a logout; any other failure leaves the prior
// profile in place for the caller to retry.
func (m *Manager) RefreshProfile(ctx context.Context) error {
	m.mu.Lock()
	if m.state != StateAuthenticated {
		m.mu.Unlock()
		return ErrNotAuthenticated
	}
	m.updating = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.updating = false
		m.mu.Unlock()
	}()

	profile, err := m.client.Profile(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			if clearErr := m.clearToAnonymous(ctx, false); clearErr != nil {
				slog.Warn("clearing expired session failed", "error", clearErr)
			}
			return fmt.Errorf("%w: %v", ErrSessionExpired, err)
		}
		return err
	}

	if err := m.persistProfile(profile); err != nil {
		return err
	}

	m.mu.Lock()
	m.profile = profile
	m.display.Apply(profile)
	m.mu.Unlock()
	return nil
}

// UpdateSetting changes one display preference. The new value takes effect
// locally before the server confirms, so the UI responds immediately; if
// the server rejects it the previous value is restored and the caller gets
// ErrSettingReverted.
func (m *Manager) UpdateSetting(ctx context.Context, settingType, value string) error {
	switch settingType {
	case model.SettingTheme, model.SettingLanguage, model.SettingCurrency:
	default:
		return fmt.Errorf("unknown setting type %q", settingType)
	}

	m.mu.Lock()
	if m.state != StateAuthenticated {
		m.mu.Unlock()
		return ErrNotAuthenticated
	}
	previous := m.display
	m.applySettingLocked(settingType, value)
	m.mu.Unlock()

	confirmedType, confirmedValue, err := m.client.UpdateSetting(ctx, settingType, value)
	if err != nil {
		m.mu.Lock()
		m.display = previous
		m.mu.Unlock()
		if errors.Is(err, api.ErrUnauthorized) {
			if clearErr := m.clearToAnonymous(ctx, false); clearErr != nil {
				slog.Warn("clearing expired session failed", "error", clearErr)
			}
			return fmt.Errorf("%w: %v", ErrSessionExpired, err)
		}
		return &revertedError{cause: err}
	}

	m.mu.Lock()
	m.applySettingLocked(confirmedType, confirmedValue)
	m.setProfileFieldLocked(confirmedType, confirmedValue)
	profile := m.profile
	m.mu.Unlock()

	// Persisted only after confirmation.
	if err := m.persistProfile(profile); err != nil {
		return err
	}
	return nil
}

// applySettingLocked mutates the display settings; callers hold mu.
func (m *Manager) applySettingLocked(settingType, value string) {
	switch settingType {
	case model.SettingTheme:
		m.display.Theme = value
	case model.SettingLanguage:
		m.display.Language = model.NormalizeLanguage(value)
	case model.SettingCurrency:
		m.display.Currency = value
	}
}

func (m *Manager) setProfileFieldLocked(settingType, value string) {
	switch settingType {
	case model.SettingTheme:
		m.profile.Theme = value
	case model.SettingLanguage:
		m.profile.Language = value
	case model.SettingCurrency:
		m.profile.Currency = value
	}
}

func (m *Manager) persistProfile(profile model.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := m.store.Set(keystore.KeyUser, string(raw)); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}
