package utils

import (
	"context"

	"github.com/mkulima/dairyfarm_backend/config"
	"gorm.io/gorm"
)

/* DB fetching */

// fetch model from db by primary key
// (may return RecordNotFound)
func FetchSingleModel[T any](ctx context.Context, id int, associations ...string) (*T, error) {
	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	for _, field := range associations {
		dbCtx = dbCtx.Preload(field)
	}
	var result T
	err := dbCtx.First(&result, id).Error
	if err != nil {
		return nil, ErrorRecordNotFound
	}
	return &result, nil
}

// list models, optionally narrowed by the caller's query scopes
func ListModels[T any](ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*T, error) {
	db := config.GetDB()
	var results []*T
	err := db.WithContext(ctx).Scopes(scopes...).Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// delete by primary key
// (may return RecordNotFound)
func DeleteModel[T any](ctx context.Context, id int) error {
	db := config.GetDB()
	var model T
	if err := db.WithContext(ctx).First(&model, id).Error; err != nil {
		return ErrorRecordNotFound
	}
	return db.WithContext(ctx).Delete(&model).Error
}
