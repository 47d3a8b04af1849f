package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation books one room for one guest between StartAt and EndAt.
// EndAt is always after StartAt once persisted by the reservation service.
type Reservation struct {
	ID string `gorm:"primaryKey;type:char(36)" json:"id"`

	StartAt     time.Time `gorm:"column:start_at;not null" json:"start"`
	EndAt       time.Time `gorm:"column:end_at;not null" json:"end"`
	PricePerDay float64   `gorm:"column:price_per_day;type:decimal(10,2);not null" json:"pricePerDay"`
	Note        *string   `gorm:"column:note;type:text" json:"note,omitempty"`

	GuestID string `gorm:"column:guest_id;type:char(36);not null;index" json:"guestId"`
	RoomID  string `gorm:"column:room_id;type:char(36);not null;index" json:"roomId"`

	Guest Guest `gorm:"foreignKey:GuestID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Room  Room  `gorm:"foreignKey:RoomID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// View expects Guest and Room.RoomType to be preloaded.
func (r Reservation) View() ReservationView {
	return ReservationView{
		ID:          r.ID,
		Start:       r.StartAt,
		End:         r.EndAt,
		PricePerDay: r.PricePerDay,
		Note:        r.Note,
		Room:        r.Room.View(),
		Guest:       r.Guest.View(),
	}
}
