package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomType is a category of room. Name is unique by convention only.
type RoomType struct {
	ID string `gorm:"primaryKey;type:char(36)" json:"id"`

	Name         string  `gorm:"column:name;size:50;not null;index" json:"name"`
	FloorPrice   float64 `gorm:"column:floor_price;type:decimal(10,2);not null" json:"floorPrice"`
	CeilingPrice *string `gorm:"column:ceiling_price;size:10" json:"ceilingPrice,omitempty"`
	Description  *string `gorm:"column:description;size:200" json:"description,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (rt *RoomType) BeforeCreate(tx *gorm.DB) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	return nil
}

func (rt RoomType) View() RoomTypeView {
	return RoomTypeView{
		ID:           rt.ID,
		Name:         rt.Name,
		FloorPrice:   rt.FloorPrice,
		CeilingPrice: rt.CeilingPrice,
		Description:  rt.Description,
	}
}
