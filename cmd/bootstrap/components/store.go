package components

import (
	"context"
	"fmt"
	"log/slog"

	"arcade-booking/internal/infra/memstore"
	"arcade-booking/internal/infra/pgstore"
	"arcade-booking/internal/pkg/config"
	"arcade-booking/internal/usecase"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStores,
	),
)

// Stores bundles the three backing stores so selection between the in-memory
// and postgres implementations happens in one place.
type Stores struct {
	fx.Out

	Bookings usecase.BookingStore
	Coupons  usecase.CouponLedger
	Games    usecase.GameCatalog
}

func NewStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	switch cfg.Engine.Store {
	case "memory":
		return newMemoryStores(cfg, logger)
	case "postgres":
		return newPostgresStores(lc, cfg, logger)
	default:
		return Stores{}, fmt.Errorf("unknown store backend %q", cfg.Engine.Store)
	}
}

func newMemoryStores(cfg config.Config, logger *slog.Logger) (Stores, error) {
	games := memstore.NewGameCatalog()
	coupons := memstore.NewCouponLedger()

	if cfg.Engine.SeedDemoData {
		if err := memstore.SeedDemoData(games, coupons); err != nil {
			return Stores{}, err
		}
		logger.Info("seeded demo games and offers")
	}

	return Stores{
		Bookings: memstore.NewBookingStore(),
		Coupons:  coupons,
		Games:    games,
	}, nil
}

func newPostgresStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	pool, cleanup, err := pgstore.Connect(context.Background(), cfg.DB)
	if err != nil {
		return Stores{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	logger.Info("connected to postgres", "host", cfg.DB.Host, "db", cfg.DB.DBName)

	return Stores{
		Bookings: pgstore.NewBookingStore(pool),
		Coupons:  pgstore.NewCouponLedger(pool),
		Games:    pgstore.NewGameCatalog(pool),
	}, nil
}
