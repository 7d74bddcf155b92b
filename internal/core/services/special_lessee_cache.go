package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	portsrepo "github.com/railfleet/fleet_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/railfleet/fleet_mgmt_app/internal/core/ports/services"
	"github.com/railfleet/fleet_mgmt_app/internal/middleware"
)

// specialLesseeCache is a read-through TTL cache over the special-lessee
// reference table. The list is small and changes rarely, so the whole set is
// loaded in one query and held until it expires. Lookups are case-insensitive.
type specialLesseeCache struct {
	repo portsrepo.SpecialLesseeRepository
	ttl  time.Duration

	mu        sync.RWMutex
	names     map[string]bool
	expiresAt time.Time
}

// NewSpecialLesseeCache creates the provider with the given refresh interval.
func NewSpecialLesseeCache(repo portsrepo.SpecialLesseeRepository, ttl time.Duration) portssvc.SpecialLesseeProvider {
	return &specialLesseeCache{
		repo: repo,
		ttl:  ttl,
	}
}

var _ portssvc.SpecialLesseeProvider = (*specialLesseeCache)(nil)

// IsSpecialLessee reports whether the lessee is on the special-approval list,
// refreshing the cached set when it has expired. A refresh failure with no
// usable cached set propagates as an error; the validation engine turns that
// into a conservative block.
func (c *specialLesseeCache) IsSpecialLessee(ctx context.Context, lesseeName string) (bool, error) {
	c.mu.RLock()
	if c.names != nil && time.Now().Before(c.expiresAt) {
		special := c.names[strings.ToUpper(lesseeName)]
		c.mu.RUnlock()
		return special, nil
	}
	c.mu.RUnlock()

	names, err := c.refresh(ctx)
	if err != nil {
		return false, err
	}
	return names[strings.ToUpper(lesseeName)], nil
}

func (c *specialLesseeCache) refresh(ctx context.Context) (map[string]bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have refreshed while we waited for the lock.
	if c.names != nil && time.Now().Before(c.expiresAt) {
		return c.names, nil
	}

	list, err := c.repo.ListSpecialLessees(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to refresh special lessee cache", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load special lessees: %w", err)
	}

	names := make(map[string]bool, len(list))
	for _, name := range list {
		names[strings.ToUpper(name)] = true
	}
	c.names = names
	c.expiresAt = time.Now().Add(c.ttl)
	return names, nil
}
