package components

import (
	"arcade-booking/internal/handler"
	"arcade-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewGameHandler,
		api.NewScheduleHandler,
		api.NewCouponHandler,
		api.NewVerifyHandler,
		func(
			booking *api.BookingHandler,
			game *api.GameHandler,
			sched *api.ScheduleHandler,
			coupon *api.CouponHandler,
			verify *api.VerifyHandler,
		) handler.Handlers {
			return handler.Handlers{
				Booking:  booking,
				Game:     game,
				Schedule: sched,
				Coupon:   coupon,
				Verify:   verify,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
