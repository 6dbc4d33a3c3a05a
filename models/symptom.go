package models

import (
	"context"
	"time"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
)

type Symptom struct {
	ID           int             `gorm:"primary_key" json:"id"`
	Name         string          `gorm:"size:50;not null" json:"name"`
	SymptomType  SymptomType     `gorm:"size:20;not null" json:"symptom_type"`
	Description  string          `gorm:"type:text" json:"description"`
	Severity     SymptomSeverity `gorm:"size:20;not null" json:"severity"`
	Location     SymptomLocation `gorm:"size:20;not null" json:"location"`
	DateObserved time.Time       `gorm:"not null" json:"date_observed"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewSymptom struct {
	Name         string          `json:"name" binding:"required"`
	SymptomType  SymptomType     `json:"symptom_type" binding:"required"`
	Description  string          `json:"description"`
	Severity     SymptomSeverity `json:"severity" binding:"required"`
	Location     SymptomLocation `json:"location" binding:"required"`
	DateObserved time.Time       `json:"date_observed" binding:"required"`
}

func ValidateSymptomName(name string) error {
	if !utils.IsAlphaWithSpaces(name) {
		return utils.NewValidationError("invalid_symptom_name",
			"symptom name should only contain alphabetic characters (no numerics allowed)")
	}
	return nil
}

func ValidateSymptomFields(dateObserved time.Time, symptomType SymptomType, severity SymptomSeverity, location SymptomLocation) error {
	if dateObserved.After(utils.TodaysDate()) {
		return utils.NewValidationError("invalid_date_observed", "the date of observation cannot be in the future")
	}
	if !symptomType.Valid() {
		return utils.NewValidationError("invalid_symptom_type", "invalid symptom type: (%s)", symptomType)
	}
	if !severity.Valid() {
		return utils.NewValidationError("invalid_symptom_severity", "invalid severity choice: (%s)", severity)
	}
	if !location.Valid() {
		return utils.NewValidationError("invalid_symptom_location", "invalid body location: (%s)", location)
	}
	return nil
}

// ValidateSymptomTypeAndLocation enforces anatomical compatibility:
// respiratory symptoms can only present in the chest, neck, head or whole
// body.
func ValidateSymptomTypeAndLocation(symptomType SymptomType, location SymptomLocation) error {
	if symptomType != SymptomTypeRespiratory {
		return nil
	}
	switch location {
	case SymptomLocationChest, SymptomLocationNeck, SymptomLocationHead, SymptomLocationWholeBody:
		return nil
	}
	return utils.NewValidationError("incompatible_type_and_location",
		"for respiratory symptoms, the location must be Chest, Neck, Head, or Whole body")
}

func (input *NewSymptom) validate() error {
	if err := ValidateSymptomName(input.Name); err != nil {
		return err
	}
	if err := ValidateSymptomFields(input.DateObserved, input.SymptomType, input.Severity, input.Location); err != nil {
		return err
	}
	return ValidateSymptomTypeAndLocation(input.SymptomType, input.Location)
}

func CreateSymptom(ctx context.Context, input *NewSymptom) (*Symptom, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	symptom := Symptom{
		Name:         input.Name,
		SymptomType:  input.SymptomType,
		Description:  input.Description,
		Severity:     input.Severity,
		Location:     input.Location,
		DateObserved: utils.DateOnly(input.DateObserved),
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&symptom).Error; err != nil {
		return nil, err
	}
	return &symptom, nil
}

func UpdateSymptom(ctx context.Context, id int, input *NewSymptom) (*Symptom, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	symptom, err := utils.FetchSingleModel[Symptom](ctx, id)
	if err != nil {
		return nil, err
	}

	symptom.Name = input.Name
	symptom.SymptomType = input.SymptomType
	symptom.Description = input.Description
	symptom.Severity = input.Severity
	symptom.Location = input.Location
	symptom.DateObserved = utils.DateOnly(input.DateObserved)

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(symptom).Error; err != nil {
		return nil, err
	}
	return symptom, nil
}

func GetSymptom(ctx context.Context, id int) (*Symptom, error) {
	return utils.FetchSingleModel[Symptom](ctx, id)
}

func DeleteSymptom(ctx context.Context, id int) error {
	return utils.DeleteModel[Symptom](ctx, id)
}
