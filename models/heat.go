package models

import (
	"context"
	"time"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
	"gorm.io/gorm"
)

const (
	// Minimum age before a cow can enter the breeding pool.
	minBreedingAgeDays = 365
	// Post-calving rest period before a new heat is plausible.
	postCalvingRestDays = 60
	// Normal oestrus cycle length; two heats closer than this are suspect.
	heatCycleDays = 21
)

// Heat records an observed oestrus event for a cow.
type Heat struct {
	ID              int       `gorm:"primary_key" json:"id"`
	CowId           int       `gorm:"index;not null" json:"cow_id"`
	Cow             *Cow      `gorm:"foreignKey:CowId;constraint:OnDelete:CASCADE" json:"cow,omitempty"`
	ObservationTime time.Time `gorm:"not null" json:"observation_time"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewHeat struct {
	CowId           int        `json:"cow_id" binding:"required"`
	ObservationTime *time.Time `json:"observation_time"`
}

func ValidateHeatCowGender(cow *Cow) error {
	if cow.Gender != SexFemale {
		return utils.NewValidationError("invalid_gender", "heat can only be recorded for female cows")
	}
	return nil
}

func ValidateHeatCowAvailability(cow *Cow) error {
	if cow.AvailabilityStatus == CowAvailabilityDead {
		return utils.NewValidationError("invalid_availability_status", "heat can not be observed on a dead cow")
	}
	if cow.AvailabilityStatus == CowAvailabilitySold {
		return utils.NewValidationError("invalid_availability_status", "heat can not be observed on a sold cow")
	}
	return nil
}

func ValidateHeatCowProductionStatus(cow *Cow) error {
	if cow.CurrentProductionStatus == CowProductionStatusCulled {
		return utils.NewValidationError("invalid_production_status", "heat can not be observed on a culled cow")
	}
	return nil
}

func ValidateHeatCowAge(cow *Cow, observationTime time.Time) error {
	if cow.AgeInDays(observationTime) < minBreedingAgeDays {
		return utils.NewValidationError("invalid_cow_age",
			"cow is under %d days old and can not yet be in heat", minBreedingAgeDays)
	}
	return nil
}

func ValidateHeatCowNotPregnant(cow *Cow) error {
	if cow.CurrentPregnancyStatus == CowPregnancyStatusPregnant {
		return utils.NewValidationError("cow_already_pregnant", "heat can not be observed on a pregnant cow")
	}
	return nil
}

func (h *Heat) validateHeat(tx *gorm.DB) error {
	var cow Cow
	if err := tx.First(&cow, h.CowId).Error; err != nil {
		return utils.ErrorRecordNotFound
	}
	if err := ValidateHeatCowGender(&cow); err != nil {
		return err
	}
	if err := ValidateHeatCowAvailability(&cow); err != nil {
		return err
	}
	if err := ValidateHeatCowProductionStatus(&cow); err != nil {
		return err
	}
	if err := ValidateHeatCowAge(&cow, h.ObservationTime); err != nil {
		return err
	}
	if err := ValidateHeatCowNotPregnant(&cow); err != nil {
		return err
	}
	if err := h.validateCalvingInterval(tx); err != nil {
		return err
	}
	return h.validateCycleInterval(tx)
}

// validateCalvingInterval rejects a heat within the rest period following
// the cow's most recent calving.
func (h *Heat) validateCalvingInterval(tx *gorm.DB) error {
	windowStart := h.ObservationTime.AddDate(0, 0, -postCalvingRestDays)
	var count int64
	err := tx.Model(&Pregnancy{}).
		Where("cow_id = ? AND date_of_calving IS NOT NULL", h.CowId).
		Where("date_of_calving > ? AND date_of_calving <= ?", windowStart, h.ObservationTime).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.NewValidationError("heat_too_soon_after_calving",
			"heat can not be observed within %d days of calving", postCalvingRestDays)
	}
	return nil
}

// validateCycleInterval rejects a second heat inside one oestrus cycle, with
// a tighter code for a same-day duplicate.
func (h *Heat) validateCycleInterval(tx *gorm.DB) error {
	sameDayStart := h.ObservationTime.Add(-24 * time.Hour)
	var count int64
	err := tx.Model(&Heat{}).
		Where("cow_id = ? AND id <> ?", h.CowId, h.ID).
		Where("observation_time > ? AND observation_time <= ?", sameDayStart, h.ObservationTime).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.NewValidationError("cow_already_in_heat", "the cow is already in heat")
	}

	cycleStart := h.ObservationTime.AddDate(0, 0, -heatCycleDays)
	err = tx.Model(&Heat{}).
		Where("cow_id = ? AND id <> ?", h.CowId, h.ID).
		Where("observation_time > ? AND observation_time <= ?", cycleStart, h.ObservationTime).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.NewValidationError("heat_within_cycle",
			"a heat was already observed within the last %d days", heatCycleDays)
	}
	return nil
}

func CreateHeat(ctx context.Context, input *NewHeat) (*Heat, error) {
	heat := Heat{
		CowId:           input.CowId,
		ObservationTime: time.Now(),
	}
	if input.ObservationTime != nil {
		heat.ObservationTime = *input.ObservationTime
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&heat).Error; err != nil {
		return nil, err
	}
	return &heat, nil
}

func GetHeat(ctx context.Context, id int) (*Heat, error) {
	return utils.FetchSingleModel[Heat](ctx, id, "Cow")
}

func DeleteHeat(ctx context.Context, id int) error {
	return utils.DeleteModel[Heat](ctx, id)
}
