package request

import (
	"arcade-booking/internal/domain/schedule"
)

type UpdateScheduleRequest struct {
	OpenTime  string `json:"open_time" binding:"required"`
	CloseTime string `json:"close_time" binding:"required"`
	AutoMode  bool   `json:"auto_mode"`
}

func (r UpdateScheduleRequest) ToWindow() (schedule.Window, error) {
	open, err := schedule.ParseTimeOfDay(r.OpenTime)
	if err != nil {
		return schedule.Window{}, err
	}
	close, err := schedule.ParseTimeOfDay(r.CloseTime)
	if err != nil {
		return schedule.Window{}, err
	}
	return schedule.NewWindow(open, close), nil
}

type ManualOverrideRequest struct {
	Open *bool `json:"open" binding:"required"`
}
