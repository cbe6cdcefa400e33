package pgstore

import (
	"context"
	"errors"

	"arcade-booking/internal/domain/game"
	"arcade-booking/internal/pkg/errs"
	"arcade-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GameCatalog struct {
	pool *pgxpool.Pool
}

var _ usecase.GameCatalog = (*GameCatalog)(nil)

func NewGameCatalog(pool *pgxpool.Pool) *GameCatalog {
	return &GameCatalog{pool: pool}
}

const gameColumns = `id, title, category, price_per_hour, available, hidden`

func (c *GameCatalog) Get(ctx context.Context, id uuid.UUID) (game.Game, error) {
	row := c.pool.QueryRow(ctx, `SELECT `+gameColumns+` FROM games WHERE id = $1`, id)
	g, err := scanGame(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return game.Game{}, errs.ErrGameNotFound
		}
		return game.Game{}, errs.Mark(errs.Wrap(err, "failed to load game"), errs.ErrStoreFailure)
	}
	return g, nil
}

func (c *GameCatalog) ListVisible(ctx context.Context) ([]game.Game, error) {
	return c.list(ctx, `SELECT `+gameColumns+` FROM games WHERE NOT hidden ORDER BY title`)
}

func (c *GameCatalog) ListAll(ctx context.Context) ([]game.Game, error) {
	return c.list(ctx, `SELECT `+gameColumns+` FROM games ORDER BY title`)
}

func (c *GameCatalog) SetAvailable(ctx context.Context, id uuid.UUID, available bool) error {
	tag, err := c.pool.Exec(ctx, `UPDATE games SET available = $2 WHERE id = $1`, id, available)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to update game availability"), errs.ErrStoreFailure)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrGameNotFound
	}
	return nil
}

func (c *GameCatalog) SetRate(ctx context.Context, id uuid.UUID, pricePerHour int) error {
	if pricePerHour < 0 {
		return errs.ErrInvalidBooking
	}

	tag, err := c.pool.Exec(ctx, `UPDATE games SET price_per_hour = $2 WHERE id = $1`, id, pricePerHour)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to update game rate"), errs.ErrStoreFailure)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrGameNotFound
	}
	return nil
}

func (c *GameCatalog) list(ctx context.Context, query string) ([]game.Game, error) {
	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to list games"), errs.ErrStoreFailure)
	}
	defer rows.Close()

	var out []game.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "failed to scan game row"), errs.ErrStoreFailure)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to iterate game rows"), errs.ErrStoreFailure)
	}
	return out, nil
}

func scanGame(row rowScanner) (game.Game, error) {
	var g game.Game
	if err := row.Scan(&g.ID, &g.Title, &g.Category, &g.PricePerHour, &g.Available, &g.Hidden); err != nil {
		return game.Game{}, err
	}
	return g, nil
}
