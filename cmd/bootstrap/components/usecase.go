package components

import (
	"fmt"

	"arcade-booking/internal/domain/schedule"
	"arcade-booking/internal/pkg/clock"
	"arcade-booking/internal/pkg/config"
	"arcade-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewShopSchedule,
		usecase.NewEngine,
		usecase.NewVerificationService,
	),
)

// NewShopSchedule builds the startup schedule from configuration. The engine
// owns the values from then on; config is only the initial state.
func NewShopSchedule(cfg config.Config, clk clock.Clock) (schedule.Shop, error) {
	open, err := schedule.ParseTimeOfDay(cfg.Schedule.OpenTime)
	if err != nil {
		return schedule.Shop{}, fmt.Errorf("invalid SHOP_OPEN_TIME: %w", err)
	}
	close, err := schedule.ParseTimeOfDay(cfg.Schedule.CloseTime)
	if err != nil {
		return schedule.Shop{}, fmt.Errorf("invalid SHOP_CLOSE_TIME: %w", err)
	}

	window := schedule.NewWindow(open, close)
	shop := schedule.Shop{
		Window:   window,
		AutoMode: cfg.Schedule.AutoMode,
	}
	if shop.AutoMode {
		shop.IsOpen = window.Contains(clk.Now())
	}
	return shop, nil
}
