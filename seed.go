package main

import (
	"context"
	"fmt"
	"log"

	"hotel-records/services"
)

func ptr(s string) *string { return &s }

var defaultRoomTypes = []services.RoomTypeInput{
	{Name: "simple", FloorPrice: 80, CeilingPrice: ptr("120"), Description: ptr("Single room")},
	{Name: "double", FloorPrice: 110, CeilingPrice: ptr("160"), Description: ptr("Double room")},
	{Name: "suite", FloorPrice: 200, CeilingPrice: ptr("350"), Description: ptr("Suite")},
}

// seedRoomTypes makes sure the default room types exist. Creation goes through the
// catalog, so running it twice finds the existing rows instead of duplicating them.
func seedRoomTypes(ctx context.Context, catalog *services.RoomCatalogService) error {
	created := 0
	for _, in := range defaultRoomTypes {
		_, outcome, err := catalog.CreateRoomType(ctx, in)
		if err != nil {
			return fmt.Errorf("seed room type %q: %w", in.Name, err)
		}
		if outcome == services.Created {
			created++
		}
	}
	log.Printf("RoomTypes seeded (%d new)", created)
	return nil
}
