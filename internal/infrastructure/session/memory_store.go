package session

import (
	"sync"

	"cardpay/internal/usecase/interfaces"
)

// MemoryStore keeps per-session checkout markers in process memory. The
// markers are request-lifecycle hints, not durable state, so loss on
// restart is acceptable.

type MemoryStore struct {
	mu       sync.RWMutex
	awaiting map[string]string
	reload   map[string]bool
}

var _ interfaces.ICheckoutSession = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		awaiting: make(map[string]string),
		reload:   make(map[string]bool),
	}
}

func (s *MemoryStore) SetAwaitingOrder(sessionKey, orderID string) {
	if sessionKey == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awaiting[sessionKey] = orderID
}

func (s *MemoryStore) AwaitingOrder(sessionKey string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.awaiting[sessionKey]
}

func (s *MemoryStore) ClearAwaitingOrder(sessionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.awaiting, sessionKey)
}

func (s *MemoryStore) SetReloadCheckout(sessionKey string) {
	if sessionKey == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reload[sessionKey] = true
}

func (s *MemoryStore) NeedsReload(sessionKey string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reload[sessionKey]
}

func (s *MemoryStore) ClearReloadCheckout(sessionKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reload, sessionKey)
}
