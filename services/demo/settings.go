package demo

import (
	"strings"
	"sync"
)

// Merchant mode values. Baseline serves plain relevance search; K2 enables
// scenario matching.
const (
	ModeBaseline = "baseline"
	ModeK2       = "k2"
)

// Settings holds the process-wide demo toggles: merchant mode and whether the
// simulated shopper has identity. Both are mutable at runtime and readable
// from concurrent requests.
type Settings struct {
	mu          sync.RWMutex
	mode        string
	hasIdentity bool
}

func NewSettings(mode string, hasIdentity bool) *Settings {
	if mode != ModeK2 {
		mode = ModeBaseline
	}
	return &Settings{mode: mode, hasIdentity: hasIdentity}
}

func (s *Settings) Mode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode normalizes and applies a merchant mode; anything other than "k2"
// falls back to baseline. Returns the applied mode.
func (s *Settings) SetMode(mode string) string {
	applied := ModeBaseline
	if strings.EqualFold(strings.TrimSpace(mode), ModeK2) {
		applied = ModeK2
	}
	s.mu.Lock()
	s.mode = applied
	s.mu.Unlock()
	return applied
}

func (s *Settings) HasIdentity() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasIdentity
}

func (s *Settings) SetIdentity(hasIdentity bool) {
	s.mu.Lock()
	s.hasIdentity = hasIdentity
	s.mu.Unlock()
}

// K2Enabled resolves whether K2 should run for a request, honoring a
// header-level override when present ("true"/"1" to force K2, "false"/"0" to
// force baseline; the mode names themselves also work); an empty or
// unrecognized override defers to the process-wide mode.
func (s *Settings) K2Enabled(override string) bool {
	switch strings.ToLower(strings.TrimSpace(override)) {
	case "true", "1", ModeK2:
		return true
	case "false", "0", ModeBaseline:
		return false
	}
	return s.Mode() == ModeK2
}

// IdentityFor resolves the identity flag for a request, honoring a
// header-level override ("true"/"false"); empty defers to the process-wide
// setting.
func (s *Settings) IdentityFor(override string) bool {
	switch strings.ToLower(strings.TrimSpace(override)) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return s.HasIdentity()
}
