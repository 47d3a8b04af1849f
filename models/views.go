package models

import "time"

// Outbound shapes. GuestView has no password field.

type RoomTypeView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	FloorPrice   float64 `json:"floorPrice"`
	CeilingPrice *string `json:"ceilingPrice"`
	Description  *string `json:"description"`
}

type RoomView struct {
	ID        string       `json:"id"`
	Number    int          `json:"number"`
	Available bool         `json:"available"`
	Notes     *string      `json:"notes"`
	Type      RoomTypeView `json:"type"`
}

type GuestView struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Mobile    string `json:"mobile"`
	Role      string `json:"role"`
}

type ReservationView struct {
	ID          string    `json:"id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	PricePerDay float64   `json:"pricePerDay"`
	Note        *string   `json:"note"`
	Room        RoomView  `json:"room"`
	Guest       GuestView `json:"guest"`
}
