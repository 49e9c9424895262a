package store

import (
	"context"
	"sync"

	"github.com/emre/storefront/internal/theme/domain"
	"github.com/emre/storefront/pkg/logger"
)

// Store tracks the dark/light preference and exposes the derived palette.
// The palette is a pure function of the flag, so only the flag is
// persisted. Persistence failures are logged and never roll back the
// in-memory flag.
type Store struct {
	mu     sync.RWMutex
	isDark bool
	repo   domain.Repository
}

// New creates a theme store defaulting to light. Call Load to restore
// the persisted preference.
func New(repo domain.Repository) *Store {
	return &Store{repo: repo}
}

// Load restores the persisted preference. Errors and unrecognized
// tokens are treated as "no stored preference" and default to light.
func (s *Store) Load(ctx context.Context) {
	token, err := s.repo.Load(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to load theme, defaulting to light")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isDark = domain.IsDarkToken(token)
}

// Toggle flips the flag and persists the new token, returning the new
// flag value. A failed save is logged; the flip stays applied.
func (s *Store) Toggle(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isDark = !s.isDark
	if err := s.repo.Save(ctx, domain.TokenFor(s.isDark)); err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to save theme")
	}
	return s.isDark
}

// IsDark reports the current flag
func (s *Store) IsDark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isDark
}

// Theme returns the theme derived from the current flag
func (s *Store) Theme() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ThemeFor(s.isDark)
}

// Colors returns the palette derived from the current flag
func (s *Store) Colors() domain.Palette {
	return s.Theme().Colors
}
