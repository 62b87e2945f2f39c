// Package directory holds the in-memory user directory used for member and
// leader search.
package directory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/mmynk/tripmate/internal/models"
)

// UserLister fetches the full user directory.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Cache keeps the directory for the life of the process. It is fetched once,
// on first use, and never refreshed unless Invalidate is called.
type Cache struct {
	lister UserLister

	mu        sync.Mutex
	users     []models.User
	loading   bool
	attempted bool

	// generation is bumped by Invalidate. A fetch started under an older
	// generation is discarded.
	generation uint64
}

// NewCache creates an empty cache backed by lister.
func NewCache(lister UserLister) *Cache {
	return &Cache{lister: lister}
}

// Ensure fetches the directory if it is empty, no fetch is in flight and no
// fetch has been attempted yet. A concurrent caller does not wait for an
// in-flight fetch; it sees whatever the cache holds.
func (c *Cache) Ensure(ctx context.Context) error {
	c.mu.Lock()
	if len(c.users) > 0 || c.loading || c.attempted {
		c.mu.Unlock()
		return nil
	}
	c.loading = true
	gen := c.generation
	c.mu.Unlock()

	users, err := c.lister.ListUsers(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if gen != c.generation {
		// Invalidated mid-fetch: the snapshot may miss new users, so leave
		// the cache empty for the next Ensure to fetch again.
		slog.Debug("directory fetch discarded after invalidation")
		return nil
	}
	c.attempted = true
	if err != nil {
		slog.Error("directory fetch failed", "error", err)
		return fmt.Errorf("failed to load user directory: %w", err)
	}
	c.users = users
	slog.Debug("directory loaded", "users", len(users))
	return nil
}

// Invalidate drops the cached directory so the next Ensure fetches again.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users = nil
	c.attempted = false
	c.generation++
}

// Users returns a copy of the cached directory.
func (c *Cache) Users() []models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.users)
}

// Filter returns users whose username or email contains query, ignoring case.
// The current user and anyone in exclude are never returned. An empty query
// matches every remaining user.
func (c *Cache) Filter(query, currentUserID string, exclude []string) []models.User {
	return Filter(c.Users(), query, currentUserID, exclude)
}

// Filter applies the search rules of Cache.Filter to users.
func Filter(users []models.User, query, currentUserID string, exclude []string) []models.User {
	q := strings.ToLower(strings.TrimSpace(query))

	var matches []models.User
	for _, u := range users {
		if u.ID == currentUserID || slices.Contains(exclude, u.ID) {
			continue
		}
		if strings.Contains(strings.ToLower(u.Username), q) || strings.Contains(strings.ToLower(u.Email), q) {
			matches = append(matches, u)
		}
	}
	return matches
}
