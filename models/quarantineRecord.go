package models

import (
	"context"
	"time"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
	"gorm.io/gorm"
)

// QuarantineRecord isolates a cow for a recorded reason and date range.
// Saving it propagates Quarantined onto the cow's availability status.
type QuarantineRecord struct {
	ID        int              `gorm:"primary_key" json:"id"`
	CowId     int              `gorm:"index;not null" json:"cow_id"`
	Cow       *Cow             `gorm:"foreignKey:CowId;constraint:OnDelete:CASCADE" json:"cow,omitempty"`
	Reason    QuarantineReason `gorm:"size:35;not null" json:"reason"`
	StartDate time.Time        `gorm:"not null;index" json:"start_date"`
	EndDate   *time.Time       `json:"end_date"`
	Notes     string           `gorm:"size:100" json:"notes"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewQuarantineRecord struct {
	CowId     int              `json:"cow_id" binding:"required"`
	Reason    QuarantineReason `json:"reason" binding:"required"`
	StartDate time.Time        `json:"start_date"`
	EndDate   *time.Time       `json:"end_date"`
	Notes     string           `json:"notes"`
}

// ValidateQuarantineReason rejects a Calving quarantine for anything but a
// pregnant female.
func ValidateQuarantineReason(reason QuarantineReason, cow *Cow) error {
	if !reason.Valid() {
		return utils.NewValidationError("invalid_quarantine_reason", "invalid quarantine reason: %s", reason)
	}
	if reason == QuarantineReasonCalving {
		if cow.Gender != SexFemale {
			return utils.NewValidationError("invalid_quarantine_reason",
				"only female cows can be quarantined for %s", QuarantineReasonCalving)
		}
		if cow.CurrentPregnancyStatus != CowPregnancyStatusPregnant {
			return utils.NewValidationError("invalid_quarantine_reason",
				"only pregnant female cows can be quarantined for %s", QuarantineReasonCalving)
		}
	}
	return nil
}

// ValidateQuarantineDates checks the start/end ordering when both are set.
func ValidateQuarantineDates(startDate time.Time, endDate *time.Time) error {
	if endDate != nil && startDate.After(*endDate) {
		return utils.NewValidationError("invalid_date_range",
			"end date must be equal to or after the start date")
	}
	return nil
}

func (q *QuarantineRecord) validateQuarantineRecord(tx *gorm.DB) error {
	var cow Cow
	if err := tx.First(&cow, q.CowId).Error; err != nil {
		return utils.ErrorRecordNotFound
	}
	if err := ValidateQuarantineReason(q.Reason, &cow); err != nil {
		return err
	}
	return ValidateQuarantineDates(q.StartDate, q.EndDate)
}

func CreateQuarantineRecord(ctx context.Context, input *NewQuarantineRecord) (*QuarantineRecord, error) {
	record := QuarantineRecord{
		CowId:     input.CowId,
		Reason:    input.Reason,
		StartDate: utils.DateOnly(input.StartDate),
		EndDate:   input.EndDate,
		Notes:     input.Notes,
	}
	if input.StartDate.IsZero() {
		record.StartDate = utils.TodaysDate()
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func UpdateQuarantineRecord(ctx context.Context, id int, input *NewQuarantineRecord) (*QuarantineRecord, error) {
	record, err := utils.FetchSingleModel[QuarantineRecord](ctx, id)
	if err != nil {
		return nil, err
	}

	record.CowId = input.CowId
	record.Reason = input.Reason
	if !input.StartDate.IsZero() {
		record.StartDate = utils.DateOnly(input.StartDate)
	}
	record.EndDate = input.EndDate
	record.Notes = input.Notes

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func GetQuarantineRecord(ctx context.Context, id int) (*QuarantineRecord, error) {
	return utils.FetchSingleModel[QuarantineRecord](ctx, id)
}

func DeleteQuarantineRecord(ctx context.Context, id int) error {
	return utils.DeleteModel[QuarantineRecord](ctx, id)
}
