package models

import (
	"context"
	"time"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
	"gorm.io/gorm"
)

// Gestation in cattle runs about 283 days; beyond this a pregnancy without a
// calving record is implausible.
const maxGestationDays = 295

// Pregnancy tracks a gestation from conception to its outcome. Records are
// opened by the insemination reactor for successful attempts; clients may
// also open one directly (e.g. a bought-in pregnant cow).
type Pregnancy struct {
	ID                  int              `gorm:"primary_key" json:"id"`
	CowId               int              `gorm:"index;not null" json:"cow_id"`
	Cow                 *Cow             `gorm:"foreignKey:CowId" json:"cow,omitempty"`
	StartDate           time.Time        `gorm:"not null" json:"start_date"`
	DateOfCalving       *time.Time       `json:"date_of_calving"`
	PregnancyStatus     PregnancyStatus  `gorm:"size:15;not null;default:'Unconfirmed'" json:"pregnancy_status"`
	PregnancyNotes      string           `gorm:"type:text" json:"pregnancy_notes"`
	CalvingNotes        string           `gorm:"type:text" json:"calving_notes"`
	PregnancyScanDate   *time.Time       `json:"pregnancy_scan_date"`
	PregnancyFailedDate *time.Time       `json:"pregnancy_failed_date"`
	PregnancyOutcome    PregnancyOutcome `gorm:"size:15" json:"pregnancy_outcome"`
	CreatedAt           time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewPregnancy struct {
	CowId               int              `json:"cow_id" binding:"required"`
	StartDate           time.Time        `json:"start_date" binding:"required"`
	DateOfCalving       *time.Time       `json:"date_of_calving"`
	PregnancyStatus     PregnancyStatus  `json:"pregnancy_status"`
	PregnancyNotes      string           `json:"pregnancy_notes"`
	CalvingNotes        string           `json:"calving_notes"`
	PregnancyScanDate   *time.Time       `json:"pregnancy_scan_date"`
	PregnancyFailedDate *time.Time       `json:"pregnancy_failed_date"`
	PregnancyOutcome    PregnancyOutcome `json:"pregnancy_outcome"`
}

// open reports whether the pregnancy is still running: not failed and not
// yet calved.
func (p *Pregnancy) open() bool {
	return p.PregnancyStatus != PregnancyStatusFailed && p.DateOfCalving == nil
}

func ValidatePregnancyCow(cow *Cow, startDate time.Time) error {
	if cow.Gender != SexFemale {
		return utils.NewValidationError("invalid_gender", "only female cows can be pregnant")
	}
	if cow.AvailabilityStatus == CowAvailabilityDead || cow.AvailabilityStatus == CowAvailabilitySold {
		return utils.NewValidationError("invalid_availability_status",
			"a pregnancy can not be recorded for a cow with availability status %s", cow.AvailabilityStatus)
	}
	if cow.AgeInDays(startDate) < minBreedingAgeDays {
		return utils.NewValidationError("invalid_cow_age",
			"cow is under %d days old and can not be pregnant", minBreedingAgeDays)
	}
	return nil
}

func ValidatePregnancyDates(p *Pregnancy) error {
	if p.StartDate.After(utils.TodaysDate()) {
		return utils.NewValidationError("invalid_start_date", "pregnancy start date cannot be in the future")
	}
	if p.DateOfCalving != nil && p.DateOfCalving.Before(p.StartDate) {
		return utils.NewValidationError("invalid_date_of_calving",
			"the date of calving cannot precede the pregnancy start date")
	}
	if p.PregnancyScanDate != nil && p.PregnancyScanDate.Before(p.StartDate) {
		return utils.NewValidationError("invalid_scan_date",
			"the scan date cannot precede the pregnancy start date")
	}
	return nil
}

func ValidatePregnancyStatusFields(p *Pregnancy) error {
	if !p.PregnancyStatus.Valid() {
		return utils.NewValidationError("invalid_pregnancy_status",
			"invalid pregnancy status: %s", p.PregnancyStatus)
	}
	if p.PregnancyOutcome != "" && !p.PregnancyOutcome.Valid() {
		return utils.NewValidationError("invalid_pregnancy_outcome",
			"invalid pregnancy outcome: %s", p.PregnancyOutcome)
	}

	if p.PregnancyStatus == PregnancyStatusFailed {
		if p.PregnancyFailedDate == nil {
			return utils.NewValidationError("missing_failed_date",
				"a failed pregnancy requires a pregnancy failed date")
		}
		if p.DateOfCalving != nil {
			return utils.NewValidationError("invalid_date_of_calving",
				"a failed pregnancy cannot have a date of calving")
		}
	} else if p.PregnancyFailedDate != nil {
		return utils.NewValidationError("invalid_failed_date",
			"a pregnancy failed date requires status %s", PregnancyStatusFailed)
	}

	switch p.PregnancyOutcome {
	case PregnancyOutcomeLive, PregnancyOutcomeStillborn:
		if p.PregnancyStatus != PregnancyStatusConfirmed {
			return utils.NewValidationError("invalid_pregnancy_outcome",
				"outcome %s requires a confirmed pregnancy", p.PregnancyOutcome)
		}
		if p.DateOfCalving == nil {
			return utils.NewValidationError("missing_date_of_calving",
				"outcome %s requires a date of calving", p.PregnancyOutcome)
		}
	case PregnancyOutcomeMiscarriage:
		if p.PregnancyStatus != PregnancyStatusFailed {
			return utils.NewValidationError("invalid_pregnancy_outcome",
				"outcome %s requires a failed pregnancy", PregnancyOutcomeMiscarriage)
		}
	}

	if p.open() {
		elapsed := int(utils.TodaysDate().Sub(utils.DateOnly(p.StartDate)).Hours() / 24)
		if elapsed > maxGestationDays {
			return utils.NewValidationError("invalid_pregnancy_duration",
				"a pregnancy cannot run over %d days without a recorded calving", maxGestationDays)
		}
	}
	return nil
}

func (p *Pregnancy) validatePregnancy(tx *gorm.DB) error {
	var cow Cow
	if err := tx.First(&cow, p.CowId).Error; err != nil {
		return utils.ErrorRecordNotFound
	}
	if err := ValidatePregnancyCow(&cow, p.StartDate); err != nil {
		return err
	}
	if err := ValidatePregnancyDates(p); err != nil {
		return err
	}
	if err := ValidatePregnancyStatusFields(p); err != nil {
		return err
	}
	if p.open() {
		var count int64
		err := tx.Model(&Pregnancy{}).
			Where("cow_id = ? AND id <> ?", p.CowId, p.ID).
			Where("pregnancy_status <> ? AND date_of_calving IS NULL", PregnancyStatusFailed).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return utils.NewValidationError("pregnancy_conflict", "the cow already has an open pregnancy")
		}
	}
	return nil
}

func CreatePregnancy(ctx context.Context, input *NewPregnancy) (*Pregnancy, error) {
	pregnancy := Pregnancy{
		CowId:               input.CowId,
		StartDate:           utils.DateOnly(input.StartDate),
		DateOfCalving:       input.DateOfCalving,
		PregnancyStatus:     input.PregnancyStatus,
		PregnancyNotes:      input.PregnancyNotes,
		CalvingNotes:        input.CalvingNotes,
		PregnancyScanDate:   input.PregnancyScanDate,
		PregnancyFailedDate: input.PregnancyFailedDate,
		PregnancyOutcome:    input.PregnancyOutcome,
	}
	if pregnancy.PregnancyStatus == "" {
		pregnancy.PregnancyStatus = PregnancyStatusUnconfirmed
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&pregnancy).Error; err != nil {
		return nil, err
	}
	return &pregnancy, nil
}

func UpdatePregnancy(ctx context.Context, id int, input *NewPregnancy) (*Pregnancy, error) {
	pregnancy, err := utils.FetchSingleModel[Pregnancy](ctx, id)
	if err != nil {
		return nil, err
	}

	pregnancy.CowId = input.CowId
	pregnancy.StartDate = utils.DateOnly(input.StartDate)
	pregnancy.DateOfCalving = input.DateOfCalving
	if input.PregnancyStatus != "" {
		pregnancy.PregnancyStatus = input.PregnancyStatus
	}
	pregnancy.PregnancyNotes = input.PregnancyNotes
	pregnancy.CalvingNotes = input.CalvingNotes
	pregnancy.PregnancyScanDate = input.PregnancyScanDate
	pregnancy.PregnancyFailedDate = input.PregnancyFailedDate
	pregnancy.PregnancyOutcome = input.PregnancyOutcome

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(pregnancy).Error; err != nil {
		return nil, err
	}
	return pregnancy, nil
}

func GetPregnancy(ctx context.Context, id int) (*Pregnancy, error) {
	return utils.FetchSingleModel[Pregnancy](ctx, id, "Cow")
}

// DeletePregnancy clears the back-link on the originating insemination, if
// any, before removing the record.
func DeletePregnancy(ctx context.Context, id int) error {
	pregnancy, err := utils.FetchSingleModel[Pregnancy](ctx, id)
	if err != nil {
		return err
	}

	db := config.GetDB()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Insemination{}).
			Where("pregnancy_id = ?", id).
			UpdateColumn("pregnancy_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(pregnancy).Error
	})
}
