package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MobileWidth   = 15
	PasswordWidth = 60
)

// Guest is a person who may hold reservations. Role also marks administrative
// accounts ("client", "admin", ...).
type Guest struct {
	ID string `gorm:"primaryKey;type:char(36)" json:"id"`

	FirstName string `gorm:"column:first_name;size:50;not null;index:idx_guest_identity,priority:2" json:"firstName"`
	LastName  string `gorm:"column:last_name;size:50;not null;index:idx_guest_identity,priority:1" json:"lastName"`
	Address   string `gorm:"column:address;size:100;not null" json:"address"`
	Mobile    string `gorm:"column:mobile;type:char(15);not null;index:idx_guest_identity,priority:3" json:"mobile"`

	// Legacy fixed-width column, stored as written (see utils.FixedWidth).
	Password string `gorm:"column:password;type:char(60);not null" json:"-"`
	Role     string `gorm:"column:role;size:50;not null" json:"role"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// View returns the mobile without its padding, the way a CHAR column reads back.
func (g Guest) View() GuestView {
	return GuestView{
		ID:        g.ID,
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Address:   g.Address,
		Mobile:    strings.TrimRight(g.Mobile, " "),
		Role:      g.Role,
	}
}
