package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"arcade-booking/internal/pkg/clock"
	"arcade-booking/internal/pkg/config"
	"arcade-booking/internal/usecase"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(startSweeper),
)

// startSweeper runs the engine's maintenance pass on a fixed interval for the
// lifetime of the process: expiring overdue bookings and refreshing the open
// state. One immediate pass runs at startup so a restart converges without
// waiting a full interval.
func startSweeper(lc fx.Lifecycle, engine *usecase.Engine, clk clock.Clock, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)

				if err := engine.SweepOnce(ctx, clk.Now()); err != nil {
					logger.Error("initial sweep failed", "error", err)
				}

				ticker := time.NewTicker(cfg.Engine.SweepInterval)
				defer ticker.Stop()

				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if err := engine.SweepOnce(ctx, clk.Now()); err != nil {
							logger.Error("sweep failed", "error", err)
						}
					}
				}
			}()
			logger.Info("sweeper started", "interval", cfg.Engine.SweepInterval)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
