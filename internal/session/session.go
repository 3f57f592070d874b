// Package session owns the current-user lifecycle: created at login,
// replaced on profile save, cleared at logout. Components that need the
// current user receive it from the Manager instead of reading ambient
// state.
package session

import (
	"errors"
	"log/slog"

	"finboard/internal/core"
)

var (
	ErrUnknownUsername  = errors.New("unknown username")
	ErrWrongPassword    = errors.New("wrong password")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Manager resolves login credentials against the seeded user list and
// holds the single current user for the session lifetime.
type Manager struct {
	logger  *slog.Logger
	users   []core.User
	current *core.User
}

// NewManager seeds a manager from the user fixture.
func NewManager(users []core.User, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger: logger,
		users:  append([]core.User(nil), users...),
	}
}

// Login matches username and password against the seed users. An
// unknown username is reported before a wrong password: the password
// check is only meaningful for a username that exists.
func (m *Manager) Login(username, password string) (core.User, error) {
	var found *core.User
	for i := range m.users {
		if m.users[i].Username == username {
			found = &m.users[i]
			break
		}
	}
	if found == nil {
		m.logger.Warn("login failed", "username", username, "reason", "unknown username")
		return core.User{}, ErrUnknownUsername
	}
	if found.Password != password {
		m.logger.Warn("login failed", "username", username, "reason", "wrong password")
		return core.User{}, ErrWrongPassword
	}

	u := *found
	u.IsAuthenticated = true
	m.current = &u
	m.logger.Info("login", "user_id", u.ID, "username", u.Username)
	return u, nil
}

// Logout clears the current user.
func (m *Manager) Logout() {
	if m.current != nil {
		m.logger.Info("logout", "user_id", m.current.ID)
	}
	m.current = nil
}

// Current returns a copy of the current user, if any.
func (m *Manager) Current() (core.User, bool) {
	if m.current == nil {
		return core.User{}, false
	}
	return *m.current, true
}

// SaveProfile commits edited profile fields into the session and the
// backing user list, so re-login uses the updated credentials. The
// update is all-or-nothing.
func (m *Manager) SaveProfile(u core.User) error {
	if m.current == nil || m.current.ID != u.ID {
		return ErrNotAuthenticated
	}
	for i := range m.users {
		if m.users[i].ID == u.ID {
			m.users[i].Name = u.Name
			m.users[i].Email = u.Email
			m.users[i].Username = u.Username
			m.users[i].Password = u.Password
			break
		}
	}
	updated := u
	updated.IsAuthenticated = true
	m.current = &updated
	m.logger.Info("profile saved", "user_id", u.ID)
	return nil
}
