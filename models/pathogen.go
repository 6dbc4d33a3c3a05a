package models

import (
	"context"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
)

type Pathogen struct {
	ID   int          `gorm:"primary_key" json:"id"`
	Name PathogenName `gorm:"size:10;uniqueIndex;not null" json:"name"`
}

type NewPathogen struct {
	Name PathogenName `json:"name" binding:"required"`
}

func ValidatePathogenName(name PathogenName) error {
	if !name.Valid() {
		return utils.NewValidationError("invalid_pathogen_name", "invalid name for the pathogen: %s", name)
	}
	return nil
}

func (input *NewPathogen) validate(ctx context.Context, id int) error {
	if err := ValidatePathogenName(input.Name); err != nil {
		return err
	}
	return utils.ValidateUnique[Pathogen](ctx, "name", input.Name, id)
}

func CreatePathogen(ctx context.Context, input *NewPathogen) (*Pathogen, error) {
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	pathogen := Pathogen{Name: input.Name}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&pathogen).Error; err != nil {
		return nil, err
	}
	return &pathogen, nil
}

func GetPathogen(ctx context.Context, id int) (*Pathogen, error) {
	return utils.FetchSingleModel[Pathogen](ctx, id)
}

// DeletePathogen is rejected while diseases still reference the pathogen.
func DeletePathogen(ctx context.Context, id int) error {
	count, err := utils.ResourceCountWhere[Disease](ctx, "pathogen_id = ?", id)
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.ErrorProtectedRecord
	}
	return utils.DeleteModel[Pathogen](ctx, id)
}
