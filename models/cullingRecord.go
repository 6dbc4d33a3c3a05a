package models

import (
	"context"
	"time"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
	"gorm.io/gorm"
)

// CullingRecord marks the permanent removal of a cow from the active herd.
// One per cow; saving it propagates Culled/Unavailable onto the cow.
type CullingRecord struct {
	ID          int           `gorm:"primary_key" json:"id"`
	CowId       int           `gorm:"uniqueIndex;not null" json:"cow_id"`
	Cow         *Cow          `gorm:"foreignKey:CowId;constraint:OnDelete:CASCADE" json:"cow,omitempty"`
	Reason      CullingReason `gorm:"size:35;not null" json:"reason"`
	Notes       string        `gorm:"size:100" json:"notes"`
	DateCarried time.Time     `gorm:"not null" json:"date_carried"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCullingRecord struct {
	CowId  int           `json:"cow_id" binding:"required"`
	Reason CullingReason `json:"reason" binding:"required"`
	Notes  string        `json:"notes"`
}

func (c *CullingRecord) validateCullingRecord(tx *gorm.DB) error {
	if !c.Reason.Valid() {
		return utils.NewValidationError("invalid_culling_reason", "invalid culling reason: %s", c.Reason)
	}

	var cow Cow
	if err := tx.First(&cow, c.CowId).Error; err != nil {
		return utils.ErrorRecordNotFound
	}

	query := tx.Model(&CullingRecord{}).Where("cow_id = ?", c.CowId)
	if c.ID > 0 {
		query = query.Where("id <> ?", c.ID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return utils.NewValidationError("duplicate_culling_record",
			"this cow already has a culling record")
	}
	return nil
}

func CreateCullingRecord(ctx context.Context, input *NewCullingRecord) (*CullingRecord, error) {
	record := CullingRecord{
		CowId:       input.CowId,
		Reason:      input.Reason,
		Notes:       input.Notes,
		DateCarried: utils.TodaysDate(),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func GetCullingRecord(ctx context.Context, id int) (*CullingRecord, error) {
	return utils.FetchSingleModel[CullingRecord](ctx, id)
}

func DeleteCullingRecord(ctx context.Context, id int) error {
	return utils.DeleteModel[CullingRecord](ctx, id)
}
