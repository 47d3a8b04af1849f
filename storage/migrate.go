package storage

import (
	"gorm.io/gorm"

	"hotel-records/models"
)

// Migrate creates the schema, parents before children so FK constraints resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.RoomType{},
		&models.Room{},
		&models.Guest{},
		&models.Reservation{},
	)
}
