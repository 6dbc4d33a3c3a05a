package models

import (
	"context"
	"time"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
	"gorm.io/gorm"
)

// Treatment records care given to a cow for a disease. Setting a completion
// date closes the matching Recovery; a treatment presumes the cow was linked
// to the disease beforehand.
type Treatment struct {
	ID              int             `gorm:"primary_key" json:"id"`
	DiseaseId       int             `gorm:"index;not null" json:"disease_id"`
	Disease         *Disease        `gorm:"foreignKey:DiseaseId" json:"disease,omitempty"`
	CowId           int             `gorm:"index;not null" json:"cow_id"`
	Cow             *Cow            `gorm:"foreignKey:CowId;constraint:OnDelete:CASCADE" json:"cow,omitempty"`
	DateOfTreatment time.Time       `gorm:"not null" json:"date_of_treatment"`
	TreatmentMethod string          `gorm:"size:300;not null" json:"treatment_method"`
	Notes           string          `gorm:"type:text" json:"notes"`
	TreatmentStatus TreatmentStatus `gorm:"size:15;not null;default:'Scheduled'" json:"treatment_status"`
	CompletionDate  *time.Time      `json:"completion_date"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewTreatment struct {
	DiseaseId       int             `json:"disease_id" binding:"required"`
	CowId           int             `json:"cow_id" binding:"required"`
	TreatmentMethod string          `json:"treatment_method" binding:"required"`
	Notes           string          `json:"notes"`
	TreatmentStatus TreatmentStatus `json:"treatment_status"`
	CompletionDate  *time.Time      `json:"completion_date"`
}

func (t *Treatment) validateTreatment(tx *gorm.DB) error {
	if !t.TreatmentStatus.Valid() {
		return utils.NewValidationError("invalid_treatment_status",
			"invalid treatment status: %s", t.TreatmentStatus)
	}
	if err := tx.First(&Cow{}, t.CowId).Error; err != nil {
		return utils.ErrorRecordNotFound
	}
	if err := tx.First(&Disease{}, t.DiseaseId).Error; err != nil {
		return utils.ErrorRecordNotFound
	}
	if t.CompletionDate != nil && t.TreatmentStatus != TreatmentStatusCompleted {
		return utils.NewValidationError("invalid_treatment_status",
			"a treatment with a completion date must have status %s", TreatmentStatusCompleted)
	}
	return nil
}

func CreateTreatment(ctx context.Context, input *NewTreatment) (*Treatment, error) {
	treatment := Treatment{
		DiseaseId:       input.DiseaseId,
		CowId:           input.CowId,
		DateOfTreatment: time.Now(),
		TreatmentMethod: input.TreatmentMethod,
		Notes:           input.Notes,
		TreatmentStatus: input.TreatmentStatus,
		CompletionDate:  input.CompletionDate,
	}
	if treatment.TreatmentStatus == "" {
		treatment.TreatmentStatus = TreatmentStatusScheduled
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&treatment).Error; err != nil {
		return nil, err
	}
	return &treatment, nil
}

func UpdateTreatment(ctx context.Context, id int, input *NewTreatment) (*Treatment, error) {
	treatment, err := utils.FetchSingleModel[Treatment](ctx, id)
	if err != nil {
		return nil, err
	}

	treatment.DiseaseId = input.DiseaseId
	treatment.CowId = input.CowId
	treatment.TreatmentMethod = input.TreatmentMethod
	treatment.Notes = input.Notes
	if input.TreatmentStatus != "" {
		treatment.TreatmentStatus = input.TreatmentStatus
	}
	treatment.CompletionDate = input.CompletionDate

	db := config.GetDB()
	if err := db.WithContext(ctx).Save(treatment).Error; err != nil {
		return nil, err
	}
	return treatment, nil
}

func GetTreatment(ctx context.Context, id int) (*Treatment, error) {
	return utils.FetchSingleModel[Treatment](ctx, id, "Cow", "Disease")
}

func DeleteTreatment(ctx context.Context, id int) error {
	return utils.DeleteModel[Treatment](ctx, id)
}
