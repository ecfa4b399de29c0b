package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Cheertaboi/coffee-shop-billing/internal/cache"
	"github.com/Cheertaboi/coffee-shop-billing/internal/models"
)

// MenuRepo is the menu storage the service reads from and bootstraps.
type MenuRepo interface {
	EnsureSchema(ctx context.Context) error
	ListItems(ctx context.Context) ([]models.MenuItem, error)
	SeedItems(ctx context.Context, items []models.MenuItem) (bool, error)
}

type MenuService struct {
	repo  MenuRepo
	cache *cache.MenuCache
	log   *slog.Logger
}

func NewMenuService(repo MenuRepo, c *cache.MenuCache, log *slog.Logger) *MenuService {
	return &MenuService{repo: repo, cache: c, log: log}
}

// Bootstrap creates the menu table and, when seed is set, fills an empty
// table with defaults.
func (s *MenuService) Bootstrap(ctx context.Context, seed bool, defaults []models.MenuItem) error {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("bootstrap menu: %w", err)
	}
	if !seed {
		return nil
	}
	inserted, err := s.repo.SeedItems(ctx, defaults)
	if err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	if inserted {
		s.cache.Invalidate()
		s.log.InfoContext(ctx, "default menu items added", "count", len(defaults))
	}
	return nil
}

// List returns the menu, served from cache while it is fresh.
func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	if items, ok := s.cache.Get(); ok {
		return items, nil
	}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(items)
	return items, nil
}
