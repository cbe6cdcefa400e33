package memstore

import (
	"context"
	"sort"
	"sync"

	"arcade-booking/internal/domain/game"
	"arcade-booking/internal/pkg/errs"
	"arcade-booking/internal/usecase"

	"github.com/google/uuid"
)

// GameCatalog is the in-memory station list.
type GameCatalog struct {
	mu    sync.Mutex
	games map[uuid.UUID]game.Game
}

var _ usecase.GameCatalog = (*GameCatalog)(nil)

func NewGameCatalog() *GameCatalog {
	return &GameCatalog{
		games: make(map[uuid.UUID]game.Game),
	}
}

func (c *GameCatalog) Add(g game.Game) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.games[g.ID] = g
}

func (c *GameCatalog) Get(_ context.Context, id uuid.UUID) (game.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, ok := c.games[id]
	if !ok {
		return game.Game{}, errs.ErrGameNotFound
	}
	return g, nil
}

func (c *GameCatalog) ListVisible(_ context.Context) ([]game.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []game.Game
	for _, g := range c.games {
		if !g.Hidden {
			out = append(out, g)
		}
	}
	sortByTitle(out)
	return out, nil
}

func (c *GameCatalog) ListAll(_ context.Context) ([]game.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]game.Game, 0, len(c.games))
	for _, g := range c.games {
		out = append(out, g)
	}
	sortByTitle(out)
	return out, nil
}

func (c *GameCatalog) SetAvailable(_ context.Context, id uuid.UUID, available bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, ok := c.games[id]
	if !ok {
		return errs.ErrGameNotFound
	}
	g.Available = available
	c.games[id] = g
	return nil
}

func (c *GameCatalog) SetRate(_ context.Context, id uuid.UUID, pricePerHour int) error {
	if pricePerHour < 0 {
		return errs.ErrInvalidBooking
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	g, ok := c.games[id]
	if !ok {
		return errs.ErrGameNotFound
	}
	g.PricePerHour = pricePerHour
	c.games[id] = g
	return nil
}

func sortByTitle(gs []game.Game) {
	sort.Slice(gs, func(i, j int) bool { return gs[i].Title < gs[j].Title })
}
