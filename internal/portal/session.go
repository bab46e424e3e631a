package portal

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/louisbranch/employee-portal/internal/portal/storage"
)

// session holds the denormalized identity of an authenticated employee. It
// is valid until logout or until the referenced record disappears.
type session struct {
	employeeID int64
	username   string
	fullName   string
}

// sessionManager is a thread-safe in-memory token-to-session store. Each
// token is independent; the map is the only shared state and is guarded by
// the RWMutex.
type sessionManager struct {
	mu       sync.RWMutex
	sessions map[string]session
}

// newSessionManager creates an empty session manager.
func newSessionManager() *sessionManager {
	return &sessionManager{sessions: make(map[string]session)}
}

// establish stores a new session for the employee and returns its token.
func (m *sessionManager) establish(employee storage.Employee) string {
	token := randomHex(16)
	m.mu.Lock()
	m.sessions[token] = session{
		employeeID: employee.ID,
		username:   employee.Username,
		fullName:   employee.FullName,
	}
	m.mu.Unlock()
	return token
}

// current returns the session for a token, when one exists.
func (m *sessionManager) current(token string) (session, bool) {
	m.mu.RLock()
	sess, ok := m.sessions[token]
	m.mu.RUnlock()
	return sess, ok
}

// teardown removes the session for a token. No-op for unknown tokens.
func (m *sessionManager) teardown(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// randomHex generates a cryptographically random hex string of n bytes.
func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
