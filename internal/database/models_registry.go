package database

import "constella/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.Circle{},
		&models.Moment{},
		&models.Connection{},
		&models.Note{},
	}
}
