package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Room struct {
	ID string `gorm:"primaryKey;type:char(36)" json:"id"`

	Number    int     `gorm:"column:number;not null;index" json:"number"`
	Available bool    `gorm:"column:available;not null" json:"available"`
	Notes     *string `gorm:"column:notes;type:text" json:"notes,omitempty"`

	// A room type cannot be removed while rooms still point at it.
	RoomTypeID string   `gorm:"column:room_type_id;type:char(36);not null;index" json:"roomTypeId"`
	RoomType   RoomType `gorm:"foreignKey:RoomTypeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// View expects RoomType to be preloaded.
func (r Room) View() RoomView {
	return RoomView{
		ID:        r.ID,
		Number:    r.Number,
		Available: r.Available,
		Notes:     r.Notes,
		Type:      r.RoomType.View(),
	}
}
