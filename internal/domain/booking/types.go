package booking

// Status is the booking lifecycle state. Transitions are one-way:
// confirmed -> expired (time-driven) and confirmed -> cancelled
// (administrative). Expired and cancelled are terminal.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) Terminal() bool {
	return s == StatusExpired || s == StatusCancelled
}
