package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
	"gorm.io/gorm"
)

// Cow is the root entity. Health and reproduction records reference it by
// foreign key; the inventory aggregate is recomputed from it on every write.
type Cow struct {
	ID                      int                 `gorm:"primary_key" json:"id"`
	TagNumber               string              `gorm:"size:30;uniqueIndex;not null" json:"tag_number"`
	Name                    string              `gorm:"size:50;not null" json:"name"`
	Breed                   CowBreed            `gorm:"size:20;not null;index" json:"breed"`
	Gender                  Sex                 `gorm:"size:10;not null;index" json:"gender"`
	DateOfBirth             time.Time           `gorm:"not null" json:"date_of_birth"`
	AvailabilityStatus      CowAvailability     `gorm:"size:15;not null;default:'Alive';index" json:"availability_status"`
	CurrentPregnancyStatus  CowPregnancyStatus  `gorm:"size:15;not null;default:'Open'" json:"current_pregnancy_status"`
	CurrentProductionStatus CowProductionStatus `gorm:"size:25;not null;default:'Open'" json:"current_production_status"`
	IsBought                *bool               `gorm:"not null;default:false" json:"is_bought"`
	DateIntroducedInFarm    time.Time           `gorm:"autoCreateTime" json:"date_introduced_in_farm"`
	CreatedAt               time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCow struct {
	TagNumber               string              `json:"tag_number"`
	Name                    string              `json:"name" binding:"required"`
	Breed                   CowBreed            `json:"breed" binding:"required"`
	Gender                  Sex                 `json:"gender" binding:"required"`
	DateOfBirth             time.Time           `json:"date_of_birth" binding:"required"`
	AvailabilityStatus      CowAvailability     `json:"availability_status"`
	CurrentPregnancyStatus  CowPregnancyStatus  `json:"current_pregnancy_status"`
	CurrentProductionStatus CowProductionStatus `json:"current_production_status"`
	IsBought                *bool               `json:"is_bought"`
}

// AgeInDays returns the cow's age at the given date.
func (c *Cow) AgeInDays(at time.Time) int {
	return int(at.Sub(c.DateOfBirth).Hours() / 24)
}

// ValidateCowStatusConsistency enforces the invariant that availability,
// pregnancy and production statuses never contradict each other.
func ValidateCowStatusConsistency(gender Sex, availability CowAvailability, pregnancy CowPregnancyStatus, production CowProductionStatus) error {
	if availability == CowAvailabilityDead || availability == CowAvailabilitySold {
		if pregnancy == CowPregnancyStatusPregnant {
			return utils.NewValidationError("invalid_status_combination",
				"a %s cow cannot be pregnant", strings.ToLower(string(availability)))
		}
		if production == CowProductionStatusLactating {
			return utils.NewValidationError("invalid_status_combination",
				"a %s cow cannot be lactating", strings.ToLower(string(availability)))
		}
	}
	if production == CowProductionStatusCulled && pregnancy != CowPregnancyStatusUnavailable {
		return utils.NewValidationError("invalid_status_combination",
			"a culled cow must have pregnancy status %s", CowPregnancyStatusUnavailable)
	}
	if gender == SexMale && pregnancy != CowPregnancyStatusUnavailable {
		return utils.NewValidationError("invalid_status_combination",
			"a male cow must have pregnancy status %s", CowPregnancyStatusUnavailable)
	}
	return nil
}

func (input *NewCow) applyDefaults() {
	if input.AvailabilityStatus == "" {
		input.AvailabilityStatus = CowAvailabilityAlive
	}
	if input.CurrentPregnancyStatus == "" {
		if input.Gender == SexMale {
			input.CurrentPregnancyStatus = CowPregnancyStatusUnavailable
		} else {
			input.CurrentPregnancyStatus = CowPregnancyStatusOpen
		}
	}
	if input.CurrentProductionStatus == "" {
		input.CurrentProductionStatus = CowProductionStatusOpen
	}
	if input.IsBought == nil {
		input.IsBought = utils.NewFalse()
	}
}

// validate input for both create & update. (id = 0 for create)
func (input *NewCow) validate(ctx context.Context, id int) error {
	if !input.Breed.Valid() {
		return utils.NewValidationError("invalid_breed", "invalid breed: %s", input.Breed)
	}
	if !input.Gender.Valid() {
		return utils.NewValidationError("invalid_gender", "invalid gender: %s", input.Gender)
	}
	if !input.AvailabilityStatus.Valid() {
		return utils.NewValidationError("invalid_availability_status",
			"invalid availability status: %s", input.AvailabilityStatus)
	}
	if !input.CurrentPregnancyStatus.Valid() {
		return utils.NewValidationError("invalid_pregnancy_status",
			"invalid pregnancy status: %s", input.CurrentPregnancyStatus)
	}
	if !input.CurrentProductionStatus.Valid() {
		return utils.NewValidationError("invalid_production_status",
			"invalid production status: %s", input.CurrentProductionStatus)
	}
	if input.DateOfBirth.After(time.Now()) {
		return utils.NewValidationError("invalid_date_of_birth", "date of birth cannot be in the future")
	}
	if err := ValidateCowStatusConsistency(input.Gender, input.AvailabilityStatus,
		input.CurrentPregnancyStatus, input.CurrentProductionStatus); err != nil {
		return err
	}
	if input.TagNumber != "" {
		if err := utils.ValidateUnique[Cow](ctx, "tag_number", input.TagNumber, id); err != nil {
			return err
		}
	}
	return nil
}

// generateTagNumber builds a tag like "FR-2022-5D41F2" from the breed and
// birth year plus a short random suffix.
func generateTagNumber(breed CowBreed, dateOfBirth time.Time) string {
	prefix := strings.ToUpper(string(breed))
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("%s-%d-%s", prefix, dateOfBirth.Year(), suffix)
}

func CreateCow(ctx context.Context, input *NewCow) (*Cow, error) {
	input.applyDefaults()
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	cow := Cow{
		TagNumber:               input.TagNumber,
		Name:                    input.Name,
		Breed:                   input.Breed,
		Gender:                  input.Gender,
		DateOfBirth:             utils.DateOnly(input.DateOfBirth),
		AvailabilityStatus:      input.AvailabilityStatus,
		CurrentPregnancyStatus:  input.CurrentPregnancyStatus,
		CurrentProductionStatus: input.CurrentProductionStatus,
		IsBought:                input.IsBought,
	}
	if cow.TagNumber == "" {
		cow.TagNumber = generateTagNumber(cow.Breed, cow.DateOfBirth)
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&cow).Error; err != nil {
		return nil, err
	}
	return &cow, nil
}

func UpdateCow(ctx context.Context, id int, input *NewCow) (*Cow, error) {
	input.applyDefaults()
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	cow, err := utils.FetchSingleModel[Cow](ctx, id)
	if err != nil {
		return nil, err
	}

	cow.Name = input.Name
	cow.Breed = input.Breed
	cow.Gender = input.Gender
	cow.DateOfBirth = utils.DateOnly(input.DateOfBirth)
	cow.AvailabilityStatus = input.AvailabilityStatus
	cow.CurrentPregnancyStatus = input.CurrentPregnancyStatus
	cow.CurrentProductionStatus = input.CurrentProductionStatus
	cow.IsBought = input.IsBought
	if input.TagNumber != "" {
		cow.TagNumber = input.TagNumber
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(cow).Error; err != nil {
		return nil, err
	}
	return cow, nil
}

func GetCow(ctx context.Context, id int) (*Cow, error) {
	return utils.FetchSingleModel[Cow](ctx, id)
}

// DeleteCow removes a cow and its dependent health records. Reproduction
// records protect the cow: deletion is rejected while inseminations or
// pregnancies reference it.
func DeleteCow(ctx context.Context, id int) error {
	cow, err := utils.FetchSingleModel[Cow](ctx, id)
	if err != nil {
		return err
	}

	db := config.GetDB()

	var pregnancies int64
	if err := db.WithContext(ctx).Model(&Pregnancy{}).Where("cow_id = ?", id).Count(&pregnancies).Error; err != nil {
		return err
	}
	var inseminations int64
	if err := db.WithContext(ctx).Model(&Insemination{}).Where("cow_id = ?", id).Count(&inseminations).Error; err != nil {
		return err
	}
	if pregnancies > 0 || inseminations > 0 {
		return utils.ErrorProtectedRecord
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []interface{}{
			&WeightRecord{}, &QuarantineRecord{}, &Heat{},
			&CullingRecord{}, &Recovery{}, &Treatment{},
		} {
			if err := tx.Where("cow_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("DELETE FROM disease_cows WHERE cow_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(cow).Error
	})
}
