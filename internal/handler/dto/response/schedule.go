package response

import (
	"arcade-booking/internal/domain/schedule"
)

type ScheduleResponse struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	AutoMode  bool   `json:"autoMode"`
	IsOpen    bool   `json:"isOpen"`
}

// OpenStateResponse answers "can I book right now".
type OpenStateResponse struct {
	IsOpen bool `json:"isOpen"`
}

func FromShop(s schedule.Shop) ScheduleResponse {
	return ScheduleResponse{
		OpenTime:  s.Window.Open.String(),
		CloseTime: s.Window.Close.String(),
		AutoMode:  s.AutoMode,
		IsOpen:    s.IsOpen,
	}
}
