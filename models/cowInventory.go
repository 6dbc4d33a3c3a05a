package models

import (
	"context"
	"errors"
	"time"

	"github.com/mkulima/dairyfarm_backend/config"
	"gorm.io/gorm"
)

const cowInventoryCacheKey = "CowInventory"

// CowInventory is the single derived aggregate of the herd. It is never
// authored by a client: every Cow create/update/delete recomputes it in full
// from the Cow table. A full recount (rather than incremental counters) is
// last-writer-wins safe under concurrent cow mutations, because each writer
// re-reads the authoritative state.
type CowInventory struct {
	ID                 int       `gorm:"primary_key" json:"id"`
	TotalNumberOfCows  int       `gorm:"not null;default:0" json:"total_number_of_cows"`
	NumberOfMaleCows   int       `gorm:"not null;default:0" json:"number_of_male_cows"`
	NumberOfFemaleCows int       `gorm:"not null;default:0" json:"number_of_female_cows"`
	NumberOfSoldCows   int       `gorm:"not null;default:0" json:"number_of_sold_cows"`
	NumberOfDeadCows   int       `gorm:"not null;default:0" json:"number_of_dead_cows"`
	LastUpdate         time.Time `gorm:"autoUpdateTime" json:"last_update"`
}

// CowInventoryUpdateHistory is an append-only log: one row per inventory
// save, i.e. one per cow mutation, whether or not the counts changed.
type CowInventoryUpdateHistory struct {
	ID           int       `gorm:"primary_key" json:"id"`
	NumberOfCows int       `gorm:"not null;default:0" json:"number_of_cows"`
	DateUpdated  time.Time `gorm:"autoCreateTime" json:"date_updated"`
}

// fetchOrCreateCowInventory returns the one inventory record, creating it on
// first use.
func fetchOrCreateCowInventory(tx *gorm.DB) (*CowInventory, error) {
	var inventory CowInventory
	err := tx.Order("id").First(&inventory).Error
	if err == nil {
		return &inventory, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	inventory = CowInventory{}
	if err := tx.Create(&inventory).Error; err != nil {
		return nil, err
	}
	return &inventory, nil
}

// RefreshCowInventory recomputes the aggregate from scratch and saves it.
// Runs inside the transaction of the cow write that triggered it.
func RefreshCowInventory(tx *gorm.DB) error {
	inventory, err := fetchOrCreateCowInventory(tx)
	if err != nil {
		return err
	}

	counts := []struct {
		dest  *int
		where []interface{}
	}{
		{&inventory.TotalNumberOfCows, []interface{}{"availability_status = ?", CowAvailabilityAlive}},
		{&inventory.NumberOfMaleCows, []interface{}{"availability_status = ? AND gender = ?", CowAvailabilityAlive, SexMale}},
		{&inventory.NumberOfFemaleCows, []interface{}{"availability_status = ? AND gender = ?", CowAvailabilityAlive, SexFemale}},
		{&inventory.NumberOfSoldCows, []interface{}{"availability_status = ?", CowAvailabilitySold}},
		{&inventory.NumberOfDeadCows, []interface{}{"availability_status = ?", CowAvailabilityDead}},
	}
	for _, c := range counts {
		var n int64
		if err := tx.Model(&Cow{}).Where(c.where[0], c.where[1:]...).Count(&n).Error; err != nil {
			return err
		}
		*c.dest = int(n)
	}

	return tx.Save(inventory).Error
}

// GetCowInventory returns the aggregate, or nil when no cow has ever been
// written. "No data yet" is a valid empty state, not an error.
func GetCowInventory(ctx context.Context) (*CowInventory, error) {
	var cached CowInventory
	if exists, err := config.GetRedisObject(cowInventoryCacheKey, &cached); err == nil && exists {
		return &cached, nil
	}

	db := config.GetDB()
	var inventory CowInventory
	err := db.WithContext(ctx).Order("id").First(&inventory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	// best effort: a failed cache write never fails the read
	_ = config.SetRedisObject(cowInventoryCacheKey, &inventory, time.Hour)
	return &inventory, nil
}

func ListCowInventoryHistory(ctx context.Context) ([]*CowInventoryUpdateHistory, error) {
	db := config.GetDB()
	var history []*CowInventoryUpdateHistory
	if err := db.WithContext(ctx).Order("id").Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}
