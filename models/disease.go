package models

import (
	"context"
	"time"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
	"gorm.io/gorm"
)

// Disease links a pathogen and category to the set of affected cows. Linking
// a cow opens a Recovery record for the (cow, disease) pair; unlinking never
// removes one, recoveries are historical records.
type Disease struct {
	ID             int              `gorm:"primary_key" json:"id"`
	Name           string           `gorm:"size:50;not null" json:"name"`
	PathogenId     int              `gorm:"index;not null" json:"pathogen_id"`
	Pathogen       *Pathogen        `gorm:"foreignKey:PathogenId" json:"pathogen,omitempty"`
	CategoryId     int              `gorm:"index;not null" json:"category_id"`
	Category       *DiseaseCategory `gorm:"foreignKey:CategoryId" json:"category,omitempty"`
	DateReported   time.Time        `gorm:"not null" json:"date_reported"`
	OccurrenceDate time.Time        `gorm:"not null" json:"occurrence_date"`
	Notes          string           `gorm:"type:text" json:"notes"`
	Cows           []Cow            `gorm:"many2many:disease_cows" json:"cows,omitempty"`
	Symptoms       []Symptom        `gorm:"many2many:disease_symptoms" json:"symptoms,omitempty"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewDisease struct {
	Name           string    `json:"name" binding:"required"`
	PathogenId     int       `json:"pathogen_id" binding:"required"`
	CategoryId     int       `json:"category_id" binding:"required"`
	OccurrenceDate time.Time `json:"occurrence_date" binding:"required"`
	Notes          string    `json:"notes"`
	CowIds         []int     `json:"cow_ids"`
	SymptomIds     []int     `json:"symptom_ids"`
}

func ValidateDiseaseOccurrenceDate(occurrenceDate time.Time) error {
	if occurrenceDate.After(utils.TodaysDate()) {
		return utils.NewValidationError("invalid_occurrence_date", "occurrence date cannot be in the future")
	}
	return nil
}

func (input *NewDisease) validate(ctx context.Context) error {
	if err := ValidateDiseaseOccurrenceDate(input.OccurrenceDate); err != nil {
		return err
	}
	if err := utils.ValidateResourceId[Pathogen](ctx, input.PathogenId); err != nil {
		return utils.NewValidationError("invalid_pathogen", "pathogen not found")
	}
	if err := utils.ValidateResourceId[DiseaseCategory](ctx, input.CategoryId); err != nil {
		return utils.NewValidationError("invalid_disease_category", "disease category not found")
	}
	for _, cowId := range input.CowIds {
		if err := utils.ValidateResourceId[Cow](ctx, cowId); err != nil {
			return utils.NewValidationError("invalid_cow", "cow %d not found", cowId)
		}
	}
	for _, symptomId := range input.SymptomIds {
		if err := utils.ValidateResourceId[Symptom](ctx, symptomId); err != nil {
			return utils.NewValidationError("invalid_symptom", "symptom %d not found", symptomId)
		}
	}
	return nil
}

// createRecoveriesForLinkedCows opens a Recovery for each cow newly linked
// to the disease. Fires once per (cow, disease) pair: an existing recovery
// for the pair is left untouched.
func createRecoveriesForLinkedCows(tx *gorm.DB, disease *Disease, cowIds []int) error {
	for _, cowId := range cowIds {
		var count int64
		if err := tx.Model(&Recovery{}).
			Where("cow_id = ? AND disease_id = ?", cowId, disease.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		recovery := Recovery{
			CowId:         cowId,
			DiseaseId:     disease.ID,
			DiagnosisDate: disease.DateReported,
		}
		if err := tx.Create(&recovery).Error; err != nil {
			return err
		}
	}
	return nil
}

func CreateDisease(ctx context.Context, input *NewDisease) (*Disease, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	disease := Disease{
		Name:           input.Name,
		PathogenId:     input.PathogenId,
		CategoryId:     input.CategoryId,
		DateReported:   utils.TodaysDate(),
		OccurrenceDate: utils.DateOnly(input.OccurrenceDate),
		Notes:          input.Notes,
	}

	db := config.GetDB()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&disease).Error; err != nil {
			return err
		}
		if err := linkDiseaseAssociations(tx, &disease, input.CowIds, input.SymptomIds); err != nil {
			return err
		}
		return createRecoveriesForLinkedCows(tx, &disease, input.CowIds)
	})
	if err != nil {
		return nil, err
	}
	return &disease, nil
}

func linkDiseaseAssociations(tx *gorm.DB, disease *Disease, cowIds []int, symptomIds []int) error {
	if len(cowIds) > 0 {
		var cows []Cow
		if err := tx.Find(&cows, cowIds).Error; err != nil {
			return err
		}
		if err := tx.Model(disease).Association("Cows").Replace(cows); err != nil {
			return err
		}
	}
	if len(symptomIds) > 0 {
		var symptoms []Symptom
		if err := tx.Find(&symptoms, symptomIds).Error; err != nil {
			return err
		}
		if err := tx.Model(disease).Association("Symptoms").Replace(symptoms); err != nil {
			return err
		}
	}
	return nil
}

// UpdateDisease rewrites the record and its link sets. Cows newly added to
// the set get a Recovery; removed cows keep theirs.
func UpdateDisease(ctx context.Context, id int, input *NewDisease) (*Disease, error) {
	if err := input.validate(ctx); err != nil {
		return nil, err
	}

	disease, err := utils.FetchSingleModel[Disease](ctx, id, "Cows")
	if err != nil {
		return nil, err
	}

	linked := make(map[int]bool, len(disease.Cows))
	for _, cow := range disease.Cows {
		linked[cow.ID] = true
	}
	var addedCowIds []int
	for _, cowId := range input.CowIds {
		if !linked[cowId] {
			addedCowIds = append(addedCowIds, cowId)
		}
	}

	disease.Name = input.Name
	disease.PathogenId = input.PathogenId
	disease.CategoryId = input.CategoryId
	disease.OccurrenceDate = utils.DateOnly(input.OccurrenceDate)
	disease.Notes = input.Notes

	db := config.GetDB()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Cows", "Symptoms").Save(disease).Error; err != nil {
			return err
		}
		if err := linkDiseaseAssociations(tx, disease, input.CowIds, input.SymptomIds); err != nil {
			return err
		}
		return createRecoveriesForLinkedCows(tx, disease, addedCowIds)
	})
	if err != nil {
		return nil, err
	}
	return disease, nil
}

func GetDisease(ctx context.Context, id int) (*Disease, error) {
	return utils.FetchSingleModel[Disease](ctx, id, "Pathogen", "Category", "Cows", "Symptoms")
}

// DeleteDisease is rejected while treatments reference the disease.
// Recoveries cascade with it.
func DeleteDisease(ctx context.Context, id int) error {
	disease, err := utils.FetchSingleModel[Disease](ctx, id)
	if err != nil {
		return err
	}

	count, err := utils.ResourceCountWhere[Treatment](ctx, "disease_id = ?", id)
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.ErrorProtectedRecord
	}

	db := config.GetDB()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("disease_id = ?", id).Delete(&Recovery{}).Error; err != nil {
			return err
		}
		if err := tx.Model(disease).Association("Cows").Clear(); err != nil {
			return err
		}
		if err := tx.Model(disease).Association("Symptoms").Clear(); err != nil {
			return err
		}
		return tx.Delete(disease).Error
	})
}
