package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const stateTTL = 10 * time.Minute

// StateManager stores one-time OAuth state tokens for CSRF protection.
type StateManager struct {
	states map[string]stateEntry
	mutex  sync.Mutex
}

type stateEntry struct {
	createdAt time.Time
	provider  string
}

func NewStateManager() *StateManager {
	return &StateManager{states: make(map[string]stateEntry)}
}

// GenerateState creates and stores a new state token.
func (sm *StateManager) GenerateState(provider string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}
	state := base64.URLEncoding.EncodeToString(b)

	sm.mutex.Lock()
	sm.states[state] = stateEntry{createdAt: time.Now(), provider: provider}
	sm.mutex.Unlock()

	return state, nil
}

// ValidateState checks a state token and consumes it (one-time use).
func (sm *StateManager) ValidateState(state, provider string) error {
	if state == "" {
		return fmt.Errorf("state token is required")
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	entry, exists := sm.states[state]
	if !exists {
		return fmt.Errorf("invalid or expired state token")
	}
	delete(sm.states, state)

	if time.Since(entry.createdAt) > stateTTL {
		return fmt.Errorf("state token has expired")
	}
	if entry.provider != provider {
		return fmt.Errorf("state token provider mismatch")
	}

	return nil
}

// StartCleanup periodically drops expired tokens. Runs until the process exits.
func (sm *StateManager) StartCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		logger := slog.With("component", "state_manager", "operation", "cleanup")
		for range ticker.C {
			sm.mutex.Lock()
			now := time.Now()
			expired := 0
			for state, entry := range sm.states {
				if now.Sub(entry.createdAt) > stateTTL {
					delete(sm.states, state)
					expired++
				}
			}
			remaining := len(sm.states)
			sm.mutex.Unlock()

			if expired > 0 {
				logger.Debug("Cleaned up expired state tokens", "expired_count", expired, "remaining_count", remaining)
			}
		}
	}()
}
