package memstore

import (
	"context"

	"arcade-booking/internal/domain/game"
	"arcade-booking/internal/usecase"

	"github.com/google/uuid"
)

// SeedDemoData loads the demo catalog and offer set used when the engine runs
// without a database behind it.
func SeedDemoData(games *GameCatalog, coupons *CouponLedger) error {
	demoGames := []game.Game{
		{ID: uuid.New(), Title: "Cyber Warfare X", Category: "PC", PricePerHour: 120, Available: true},
		{ID: uuid.New(), Title: "Speed Demon GT", Category: "PS5", PricePerHour: 100, Available: true},
		{ID: uuid.New(), Title: "Galactic Empire", Category: "PC", PricePerHour: 120, Available: false},
		{ID: uuid.New(), Title: "Zombie Apoc VR", Category: "VR", PricePerHour: 250, Available: true},
		{ID: uuid.New(), Title: "Kingdom Quest", Category: "Xbox", PricePerHour: 80, Available: true},
	}
	for _, g := range demoGames {
		games.Add(g)
	}

	demoOffers := []usecase.CouponParams{
		{Title: "Starter Pack", Description: "Small discount for new joiners", Code: "LEVEL10", Percentage: 10, MaxClaims: 100},
		{Title: "Power Up", Description: "Get a boost", Code: "BOOST20", Percentage: 20, MaxClaims: 50},
		{Title: "Half Life", Description: "Half price gaming", Code: "HALF50", Percentage: 50, MaxClaims: 10},
		{Title: "The One", Description: "The golden ticket", Code: "GOLD100", Percentage: 100, MaxClaims: 1},
	}
	for _, p := range demoOffers {
		if _, err := coupons.Create(context.Background(), p); err != nil {
			return err
		}
		if err := coupons.SetActive(context.Background(), p.Code, true); err != nil {
			return err
		}
	}
	return nil
}
