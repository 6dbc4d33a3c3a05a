package models

import (
	"context"
	"time"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	minCowWeightKgs = decimal.NewFromInt(10)
	maxCowWeightKgs = decimal.NewFromInt(1500)
)

type WeightRecord struct {
	ID          int             `gorm:"primary_key" json:"id"`
	CowId       int             `gorm:"index;not null" json:"cow_id"`
	Cow         *Cow            `gorm:"foreignKey:CowId;constraint:OnDelete:CASCADE" json:"cow,omitempty"`
	WeightInKgs decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"weight_in_kgs"`
	DateTaken   time.Time       `gorm:"not null;index" json:"date_taken"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewWeightRecord struct {
	CowId       int             `json:"cow_id" binding:"required"`
	WeightInKgs decimal.Decimal `json:"weight_in_kgs" binding:"required"`
	DateTaken   time.Time       `json:"date_taken"`
}

// ValidateWeight checks the plausible bounds for a cow's weight.
func ValidateWeight(weightInKgs decimal.Decimal) error {
	if weightInKgs.LessThan(minCowWeightKgs) {
		return utils.NewValidationError("invalid_weight", "a cow cannot weigh less than %s kgs", minCowWeightKgs)
	}
	if weightInKgs.GreaterThan(maxCowWeightKgs) {
		return utils.NewValidationError("invalid_weight", "a cow's weight cannot exceed %s kgs", maxCowWeightKgs)
	}
	return nil
}

// ValidateCowIsAlive rejects records for cows no longer present in the farm.
func ValidateCowIsAlive(cow *Cow) error {
	if cow.AvailabilityStatus != CowAvailabilityAlive {
		return utils.NewValidationError("invalid_availability_status",
			"weight records are only allowed for cows present in the farm; this cow is marked as: %s",
			cow.AvailabilityStatus)
	}
	return nil
}

// validateWeightRecord gates every weight record write: bounds, cow
// availability and the one-record-per-day rule.
func (w *WeightRecord) validateWeightRecord(tx *gorm.DB) error {
	if err := ValidateWeight(w.WeightInKgs); err != nil {
		return err
	}

	var cow Cow
	if err := tx.First(&cow, w.CowId).Error; err != nil {
		return utils.ErrorRecordNotFound
	}
	if err := ValidateCowIsAlive(&cow); err != nil {
		return err
	}

	query := tx.Model(&WeightRecord{}).Where("cow_id = ? AND date_taken = ?", w.CowId, w.DateTaken)
	if w.ID > 0 {
		query = query.Where("id <> ?", w.ID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return utils.NewValidationError("duplicate_weight_record",
			"this cow already has a weight record on this date")
	}
	return nil
}

func CreateWeightRecord(ctx context.Context, input *NewWeightRecord) (*WeightRecord, error) {
	record := WeightRecord{
		CowId:       input.CowId,
		WeightInKgs: input.WeightInKgs,
		DateTaken:   utils.DateOnly(input.DateTaken),
	}
	if input.DateTaken.IsZero() {
		record.DateTaken = utils.TodaysDate()
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func UpdateWeightRecord(ctx context.Context, id int, input *NewWeightRecord) (*WeightRecord, error) {
	record, err := utils.FetchSingleModel[WeightRecord](ctx, id)
	if err != nil {
		return nil, err
	}

	record.CowId = input.CowId
	record.WeightInKgs = input.WeightInKgs
	if !input.DateTaken.IsZero() {
		record.DateTaken = utils.DateOnly(input.DateTaken)
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func GetWeightRecord(ctx context.Context, id int) (*WeightRecord, error) {
	return utils.FetchSingleModel[WeightRecord](ctx, id)
}

func DeleteWeightRecord(ctx context.Context, id int) error {
	return utils.DeleteModel[WeightRecord](ctx, id)
}
