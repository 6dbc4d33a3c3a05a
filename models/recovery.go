package models

import (
	"context"
	"time"

	"github.com/mkulima/dairyfarm_backend/utils"
)

// Recovery tracks a cow's diagnosis-to-recovery span for a disease. It is
// never authored by a client: the disease-linkage reactor creates it and the
// treatment-completion reactor fills in the recovery date.
type Recovery struct {
	ID            int        `gorm:"primary_key" json:"id"`
	CowId         int        `gorm:"index;not null" json:"cow_id"`
	Cow           *Cow       `gorm:"foreignKey:CowId;constraint:OnDelete:CASCADE" json:"cow,omitempty"`
	DiseaseId     int        `gorm:"index;not null" json:"disease_id"`
	Disease       *Disease   `gorm:"foreignKey:DiseaseId;constraint:OnDelete:CASCADE" json:"disease,omitempty"`
	DiagnosisDate time.Time  `gorm:"not null" json:"diagnosis_date"`
	RecoveryDate  *time.Time `json:"recovery_date"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func GetRecovery(ctx context.Context, id int) (*Recovery, error) {
	return utils.FetchSingleModel[Recovery](ctx, id, "Cow", "Disease")
}
