package models

import (
	"github.com/mkulima/dairyfarm_backend/config"
)

// MigrateTable creates or updates the schema for every entity. Call order
// matters only for readability; gorm resolves foreign keys itself.
func MigrateTable() error {
	db := config.GetDB()
	return db.AutoMigrate(
		&User{},
		&Cow{},
		&CowInventory{},
		&CowInventoryUpdateHistory{},
		&WeightRecord{},
		&CullingRecord{},
		&QuarantineRecord{},
		&Pathogen{},
		&DiseaseCategory{},
		&Symptom{},
		&Disease{},
		&Recovery{},
		&Treatment{},
		&Inseminator{},
		&Heat{},
		&Insemination{},
		&Pregnancy{},
		&Lactation{},
	)
}
