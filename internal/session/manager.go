package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager — серверное хранилище сессий: непрозрачный токен → user id.
// Живёт всю жизнь процесса, без TTL; сессия умирает только по Destroy
// или при рестарте.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]uint
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]uint)}
}

// Create выдаёт свежий токен для userID.
func (m *Manager) Create(userID uint) string {
	sid := uuid.NewString()

	m.mu.Lock()
	m.sessions[sid] = userID
	m.mu.Unlock()

	return sid
}

// Resolve возвращает userID живой сессии.
func (m *Manager) Resolve(sid string) (uint, bool) {
	m.mu.RLock()
	userID, ok := m.sessions[sid]
	m.mu.RUnlock()
	return userID, ok
}

// Destroy гасит сессию. Повторный вызов или несуществующий
// токен — не ошибка.
func (m *Manager) Destroy(sid string) {
	m.mu.Lock()
	delete(m.sessions, sid)
	m.mu.Unlock()
}
