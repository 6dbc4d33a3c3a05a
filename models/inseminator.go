package models

import (
	"context"
	"time"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
)

// Inseminator is a registered technician performing inseminations.
type Inseminator struct {
	ID            int       `gorm:"primary_key" json:"id"`
	FirstName     string    `gorm:"size:20;not null" json:"first_name"`
	LastName      string    `gorm:"size:20;not null" json:"last_name"`
	PhoneNumber   string    `gorm:"size:15;uniqueIndex;not null" json:"phone_number"`
	Email         string    `gorm:"size:50;uniqueIndex;not null" json:"email"`
	Company       string    `gorm:"size:50" json:"company"`
	LicenseNumber string    `gorm:"size:25;uniqueIndex;not null" json:"license_number"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewInseminator struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	PhoneNumber   string `json:"phone_number" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Company       string `json:"company"`
	LicenseNumber string `json:"license_number" binding:"required"`
}

// validate input for both create & update. (id = 0 for create)
func (input *NewInseminator) validate(ctx context.Context, id int) error {
	if err := utils.ValidatePhoneNumber(input.PhoneNumber, utils.CountryCode); err != nil {
		return utils.NewValidationError("invalid_phone_number", "invalid phone number: %v", err)
	}
	if err := utils.ValidateUnique[Inseminator](ctx, "phone_number", input.PhoneNumber, id); err != nil {
		return err
	}
	if err := utils.ValidateUnique[Inseminator](ctx, "email", input.Email, id); err != nil {
		return err
	}
	return utils.ValidateUnique[Inseminator](ctx, "license_number", input.LicenseNumber, id)
}

func CreateInseminator(ctx context.Context, input *NewInseminator) (*Inseminator, error) {
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	inseminator := Inseminator{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		PhoneNumber:   input.PhoneNumber,
		Email:         input.Email,
		Company:       input.Company,
		LicenseNumber: input.LicenseNumber,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&inseminator).Error; err != nil {
		return nil, err
	}
	return &inseminator, nil
}

func UpdateInseminator(ctx context.Context, id int, input *NewInseminator) (*Inseminator, error) {
	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	inseminator, err := utils.FetchSingleModel[Inseminator](ctx, id)
	if err != nil {
		return nil, err
	}

	inseminator.FirstName = input.FirstName
	inseminator.LastName = input.LastName
	inseminator.PhoneNumber = input.PhoneNumber
	inseminator.Email = input.Email
	inseminator.Company = input.Company
	inseminator.LicenseNumber = input.LicenseNumber

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(inseminator).Error; err != nil {
		return nil, err
	}
	return inseminator, nil
}

func GetInseminator(ctx context.Context, id int) (*Inseminator, error) {
	return utils.FetchSingleModel[Inseminator](ctx, id)
}

// DeleteInseminator is rejected while insemination records reference the
// technician.
func DeleteInseminator(ctx context.Context, id int) error {
	count, err := utils.ResourceCountWhere[Insemination](ctx, "inseminator_id = ?", id)
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.ErrorProtectedRecord
	}
	return utils.DeleteModel[Inseminator](ctx, id)
}
