package cache

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/nanumteam/nanum/internal/metrics"
	"github.com/nanumteam/nanum/internal/repository"
)

type OrganizationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Organization, error)
	GetApproved(ctx context.Context) ([]*repository.Organization, error)
}

// OrgCache keeps the approved organizations in memory. It implements the
// organization gate consumed by the lifecycle engine; misses fall through
// to the repository so a freshly approved organization is still found.
type OrgCache struct {
	mu    sync.RWMutex
	cache map[uuid.UUID]*repository.Organization
	repo  OrganizationRepository
}

func NewOrgCache(repo OrganizationRepository) *OrgCache {
	return &OrgCache{
		cache: make(map[uuid.UUID]*repository.Organization),
		repo:  repo,
	}
}

func (c *OrgCache) LoadInitialData(ctx context.Context) error {
	log.Println("Loading approved organizations into cache...")
	orgs, err := c.repo.GetApproved(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, org := range orgs {
		orgCopy := *org
		c.cache[org.ID] = &orgCopy
	}
	metrics.OrgCacheItems.Set(float64(len(c.cache)))
	log.Printf("Successfully loaded %d approved organizations into cache.", len(c.cache))
	return nil
}

func (c *OrgCache) GetByID(ctx context.Context, id uuid.UUID) (*repository.Organization, error) {
	c.mu.RLock()
	org, found := c.cache[id]
	c.mu.RUnlock()
	if found {
		orgCopy := *org
		return &orgCopy, nil
	}

	org, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org.Status == repository.OrgApproved {
		c.set(org)
	}
	return org, nil
}

func (c *OrgCache) IsApproved(ctx context.Context, id uuid.UUID) bool {
	org, err := c.GetByID(ctx, id)
	return err == nil && org.Status == repository.OrgApproved
}

func (c *OrgCache) GetApproved(ctx context.Context) ([]*repository.Organization, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	orgs := make([]*repository.Organization, 0, len(c.cache))
	for _, org := range c.cache {
		orgCopy := *org
		orgs = append(orgs, &orgCopy)
	}
	sort.Slice(orgs, func(i, j int) bool { return orgs[i].Name < orgs[j].Name })
	return orgs, nil
}

func (c *OrgCache) set(org *repository.Organization) {
	c.mu.Lock()
	defer c.mu.Unlock()
	orgCopy := *org
	c.cache[org.ID] = &orgCopy
	metrics.OrgCacheItems.Set(float64(len(c.cache)))
}
