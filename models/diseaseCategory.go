package models

import (
	"context"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
)

type DiseaseCategory struct {
	ID   int                 `gorm:"primary_key" json:"id"`
	Name DiseaseCategoryName `gorm:"size:15;uniqueIndex;not null" json:"name"`
}

type NewDiseaseCategory struct {
	Name DiseaseCategoryName `json:"name" binding:"required"`
}

func ValidateDiseaseCategoryName(name DiseaseCategoryName) error {
	if !name.Valid() {
		return utils.NewValidationError("invalid_disease_category_name", "invalid name: %s", name)
	}
	return nil
}

func (input *NewDiseaseCategory) validate(ctx context.Context, id int) error {
	if err := ValidateDiseaseCategoryName(input.Name); err != nil {
		return err
	}
	return utils.ValidateUnique[DiseaseCategory](ctx, "name", input.Name, id)
}

func CreateDiseaseCategory(ctx context.Context, input *NewDiseaseCategory) (*DiseaseCategory, error) {
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	category := DiseaseCategory{Name: input.Name}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func GetDiseaseCategory(ctx context.Context, id int) (*DiseaseCategory, error) {
	return utils.FetchSingleModel[DiseaseCategory](ctx, id)
}

// DeleteDiseaseCategory is rejected while diseases still reference the
// category.
func DeleteDiseaseCategory(ctx context.Context, id int) error {
	count, err := utils.ResourceCountWhere[Disease](ctx, "category_id = ?", id)
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.ErrorProtectedRecord
	}
	return utils.DeleteModel[DiseaseCategory](ctx, id)
}
