package game

import "github.com/google/uuid"

// Game is a bookable station (PC rig, console seat, VR room).
type Game struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	PricePerHour int       `json:"pricePerHour"`
	Available    bool      `json:"available"`
	Hidden       bool      `json:"hidden"`
}

// Bookable reports whether the game can be offered on the booking screen.
func (g Game) Bookable() bool {
	return g.Available && !g.Hidden
}
