package response

import (
	"arcade-booking/internal/domain/game"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GameResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	PricePerHour int       `json:"pricePerHour"`
	Available    bool      `json:"available"`
}

type AdminGameResponse struct {
	GameResponse
	Hidden bool `json:"hidden"`
}

func FromGame(g game.Game) GameResponse {
	var resp GameResponse
	// Field names line up with the entity; copier carries them across.
	_ = copier.Copy(&resp, &g)
	return resp
}

func FromGames(gs []game.Game) []GameResponse {
	out := make([]GameResponse, len(gs))
	for i, g := range gs {
		out[i] = FromGame(g)
	}
	return out
}

func FromGameAdmin(g game.Game) AdminGameResponse {
	return AdminGameResponse{
		GameResponse: FromGame(g),
		Hidden:       g.Hidden,
	}
}

func FromGamesAdmin(gs []game.Game) []AdminGameResponse {
	out := make([]AdminGameResponse, len(gs))
	for i, g := range gs {
		out[i] = FromGameAdmin(g)
	}
	return out
}
