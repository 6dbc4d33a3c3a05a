package models

import (
	"context"
	"time"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
	"gorm.io/gorm"
)

// Heat must have been observed at most this many days before an
// insemination attempt.
const heatValidityDays = 3

// Insemination is a breeding attempt. A successful attempt has exactly one
// Pregnancy, opened by the insemination reactor.
type Insemination struct {
	ID                 int          `gorm:"primary_key" json:"id"`
	CowId              int          `gorm:"index;not null" json:"cow_id"`
	Cow                *Cow         `gorm:"foreignKey:CowId" json:"cow,omitempty"`
	InseminatorId      int          `gorm:"index;not null" json:"inseminator_id"`
	Inseminator        *Inseminator `gorm:"foreignKey:InseminatorId" json:"inseminator,omitempty"`
	DateOfInsemination time.Time    `gorm:"not null" json:"date_of_insemination"`
	Success            *bool        `gorm:"not null;default:false" json:"success"`
	Notes              string       `gorm:"type:text" json:"notes"`
	PregnancyId        *int         `gorm:"uniqueIndex" json:"pregnancy_id"`
	Pregnancy          *Pregnancy   `gorm:"foreignKey:PregnancyId" json:"pregnancy,omitempty"`
	CreatedAt          time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewInsemination struct {
	CowId              int        `json:"cow_id" binding:"required"`
	InseminatorId      int        `json:"inseminator_id" binding:"required"`
	DateOfInsemination *time.Time `json:"date_of_insemination"`
	Success            *bool      `json:"success"`
	Notes              string     `json:"notes"`
}

func (i *Insemination) validateInsemination(tx *gorm.DB) error {
	var cow Cow
	if err := tx.First(&cow, i.CowId).Error; err != nil {
		return utils.ErrorRecordNotFound
	}
	if err := tx.First(&Inseminator{}, i.InseminatorId).Error; err != nil {
		return utils.ErrorRecordNotFound
	}
	if cow.Gender != SexFemale {
		return utils.NewValidationError("invalid_gender", "only female cows can be inseminated")
	}
	if cow.AvailabilityStatus != CowAvailabilityAlive && cow.AvailabilityStatus != CowAvailabilityQuarantined {
		return utils.NewValidationError("invalid_availability_status",
			"a cow with availability status %s can not be inseminated", cow.AvailabilityStatus)
	}
	if err := i.validateAttemptInterval(tx); err != nil {
		return err
	}
	return i.validateHeatWindow(tx)
}

// validateAttemptInterval keeps breeding attempts at least one oestrus cycle
// apart.
func (i *Insemination) validateAttemptInterval(tx *gorm.DB) error {
	cycleStart := i.DateOfInsemination.AddDate(0, 0, -heatCycleDays)
	var count int64
	err := tx.Model(&Insemination{}).
		Where("cow_id = ? AND id <> ?", i.CowId, i.ID).
		Where("date_of_insemination > ? AND date_of_insemination <= ?", cycleStart, i.DateOfInsemination).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.NewValidationError("insemination_too_soon",
			"the cow was already inseminated within the last %d days", heatCycleDays)
	}
	return nil
}

// validateHeatWindow requires a recorded heat shortly before the attempt.
func (i *Insemination) validateHeatWindow(tx *gorm.DB) error {
	windowStart := i.DateOfInsemination.AddDate(0, 0, -heatValidityDays)
	var count int64
	err := tx.Model(&Heat{}).
		Where("cow_id = ?", i.CowId).
		Where("observation_time > ? AND observation_time <= ?", windowStart, i.DateOfInsemination).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return utils.NewValidationError("cow_not_in_heat",
			"no heat was observed for the cow within the last %d days", heatValidityDays)
	}
	return nil
}

func CreateInsemination(ctx context.Context, input *NewInsemination) (*Insemination, error) {
	insemination := Insemination{
		CowId:              input.CowId,
		InseminatorId:      input.InseminatorId,
		DateOfInsemination: time.Now(),
		Success:            utils.NewFalse(),
		Notes:              input.Notes,
	}
	if input.DateOfInsemination != nil {
		insemination.DateOfInsemination = *input.DateOfInsemination
	}
	if input.Success != nil {
		insemination.Success = input.Success
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&insemination).Error; err != nil {
		return nil, err
	}
	return &insemination, nil
}

// UpdateInsemination exists mainly to flip Success once a pregnancy check
// comes back positive. The pregnancy link itself is reactor-owned.
func UpdateInsemination(ctx context.Context, id int, input *NewInsemination) (*Insemination, error) {
	insemination, err := utils.FetchSingleModel[Insemination](ctx, id)
	if err != nil {
		return nil, err
	}

	insemination.CowId = input.CowId
	insemination.InseminatorId = input.InseminatorId
	if input.DateOfInsemination != nil {
		insemination.DateOfInsemination = *input.DateOfInsemination
	}
	if input.Success != nil {
		insemination.Success = input.Success
	}
	insemination.Notes = input.Notes

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(insemination).Error; err != nil {
		return nil, err
	}
	return insemination, nil
}

func GetInsemination(ctx context.Context, id int) (*Insemination, error) {
	return utils.FetchSingleModel[Insemination](ctx, id, "Cow", "Inseminator", "Pregnancy")
}

// DeleteInsemination is rejected once a pregnancy hangs off the record.
func DeleteInsemination(ctx context.Context, id int) error {
	insemination, err := utils.FetchSingleModel[Insemination](ctx, id)
	if err != nil {
		return err
	}
	if insemination.PregnancyId != nil {
		return utils.ErrorProtectedRecord
	}
	return utils.DeleteModel[Insemination](ctx, id)
}
