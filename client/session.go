package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// sessionState is everything persisted between CLI invocations: the cached
// merchant identity, the one-time API key, the last step the client observed,
// and the idempotency keys of actions that have not succeeded yet.
type sessionState struct {
	MerchantID  string            `json:"merchant_id,omitempty"`
	APIKey      string            `json:"api_key,omitempty"`
	LastStep    string            `json:"last_step,omitempty"`
	PendingKeys map[string]string `json:"pending_keys,omitempty"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Session is a file-backed cache giving the onboarding flow continuity
// across process restarts. The server stays the source of truth; everything
// here is advisory except the API key, which only the client ever holds in
// plaintext.
type Session struct {
	mu    sync.RWMutex
	path  string
	state sessionState
}

func OpenSession(path string) (*Session, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	s := &Session{path: path}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.state.PendingKeys = map[string]string{}
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.state); err != nil {
		return nil, err
	}
	if s.state.PendingKeys == nil {
		s.state.PendingKeys = map[string]string{}
	}
	return s, nil
}

func (s *Session) MerchantID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.MerchantID
}

func (s *Session) SetMerchantID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.MerchantID = id
	return s.flushLocked()
}

func (s *Session) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.APIKey
}

func (s *Session) SetAPIKey(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.APIKey = key
	return s.flushLocked()
}

func (s *Session) LastStep() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.LastStep
}

func (s *Session) SetLastStep(step string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LastStep = step
	return s.flushLocked()
}

// PendingKey returns the idempotency key for a logical action, minting and
// persisting one on first use. Retries of the same action reuse the key until
// ClearPendingKey is called on success.
func (s *Session) PendingKey(action string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key, ok := s.state.PendingKeys[action]; ok {
		return key, nil
	}
	key := uuid.NewString()
	s.state.PendingKeys[action] = key
	if err := s.flushLocked(); err != nil {
		return "", err
	}
	return key, nil
}

func (s *Session) ClearPendingKey(action string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.PendingKeys[action]; !ok {
		return nil
	}
	delete(s.state.PendingKeys, action)
	return s.flushLocked()
}

// flushLocked writes the state through a temp file and rename so a crash
// mid-write cannot truncate the session.
func (s *Session) flushLocked() error {
	s.state.UpdatedAt = time.Now().UTC()
	raw, err := json.MarshalIndent(&s.state, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
