// Package session maps opaque tokens to user ids. The token travels in an
// HTTP-only cookie and is the sole authentication factor, so it has to be
// unguessable; nothing else about it is interesting. Tokens live until
// logout or process restart, with no expiry.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

type Store struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewStore() *Store {
	return &Store{tokens: make(map[string]string)}
}

// Create mints a 64-hex-char token from crypto/rand and records the
// mapping to userID.
func (s *Store) Create(userID string) (string, error) {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b[:])

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return token, nil
}

func (s *Store) Resolve(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.tokens[token]
	return userID, ok
}

func (s *Store) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// Reset drops every session. Used by the demo reset endpoint.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[string]string)
}
