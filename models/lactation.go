package models

import (
	"context"
	"errors"
	"time"

	"github.com/mkulima/dairyfarm_backend/utils"
	"gorm.io/gorm"
)

// Lactation is a milking period for a cow, numbered from 1 upward. Records
// are opened and closed by the calving reactor, never authored by clients.
type Lactation struct {
	ID              int        `gorm:"primary_key" json:"id"`
	CowId           int        `gorm:"index;not null" json:"cow_id"`
	Cow             *Cow       `gorm:"foreignKey:CowId;constraint:OnDelete:CASCADE" json:"cow,omitempty"`
	PregnancyId     *int       `gorm:"uniqueIndex" json:"pregnancy_id"`
	Pregnancy       *Pregnancy `gorm:"foreignKey:PregnancyId" json:"pregnancy,omitempty"`
	StartDate       time.Time  `gorm:"not null" json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	LactationNumber int        `gorm:"not null;default:1" json:"lactation_number"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// latestLactation returns the cow's most recent lactation by number, or nil
// when the cow has never lactated.
func latestLactation(tx *gorm.DB, cowId int) (*Lactation, error) {
	var lactation Lactation
	err := tx.Where("cow_id = ?", cowId).
		Order("lactation_number DESC").
		First(&lactation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lactation, nil
}

// rolloverLactation closes the cow's open lactation the day before calving
// and opens the next one, tied to the pregnancy that produced it. The first
// lactation of a cow's life is number 1.
func rolloverLactation(tx *gorm.DB, cowId int, pregnancyId int, calvingDate time.Time) error {
	previous, err := latestLactation(tx, cowId)
	if err != nil {
		return err
	}

	number := 1
	if previous != nil {
		number = previous.LactationNumber + 1
		if previous.EndDate == nil {
			endDate := utils.DateOnly(calvingDate).AddDate(0, 0, -1)
			previous.EndDate = &endDate
			if err := tx.Save(previous).Error; err != nil {
				return err
			}
		}
	}

	lactation := Lactation{
		CowId:           cowId,
		PregnancyId:     &pregnancyId,
		StartDate:       utils.DateOnly(calvingDate),
		LactationNumber: number,
	}
	return tx.Create(&lactation).Error
}

func GetLactation(ctx context.Context, id int) (*Lactation, error) {
	return utils.FetchSingleModel[Lactation](ctx, id, "Cow", "Pregnancy")
}

func ListCowLactations(ctx context.Context, cowId int) ([]*Lactation, error) {
	return utils.ListModels[Lactation](ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("cow_id = ?", cowId).Order("lactation_number ASC")
	})
}
