package models_test

import (
	"testing"

	"github.com/mkulima/dairyfarm_backend/models"
	"github.com/shopspring/decimal"
)

func TestWeightRecordBounds(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")

	_, err := models.CreateWeightRecord(ctx, &models.NewWeightRecord{
		CowId:       cow.ID,
		WeightInKgs: decimal.NewFromInt(5),
	})
	expectValidationCode(t, err, "invalid_weight")

	_, err = models.CreateWeightRecord(ctx, &models.NewWeightRecord{
		CowId:       cow.ID,
		WeightInKgs: decimal.NewFromInt(2000),
	})
	expectValidationCode(t, err, "invalid_weight")

	record, err := models.CreateWeightRecord(ctx, &models.NewWeightRecord{
		CowId:       cow.ID,
		WeightInKgs: decimal.NewFromInt(450),
	})
	if err != nil {
		t.Fatalf("CreateWeightRecord: %v", err)
	}
	if !record.WeightInKgs.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("expected 450 kgs, got %s", record.WeightInKgs)
	}
}

func TestWeightRecordRequiresAliveCow(t *testing.T) {
	ctx := setupTestDB(t)

	cow, err := models.CreateCow(ctx, &models.NewCow{
		Name:               "Marehemu",
		Breed:              models.CowBreedAyrshire,
		Gender:             models.SexFemale,
		DateOfBirth:        daysAgo(3 * 365),
		AvailabilityStatus: models.CowAvailabilityDead,
	})
	if err != nil {
		t.Fatalf("CreateCow: %v", err)
	}

	_, err = models.CreateWeightRecord(ctx, &models.NewWeightRecord{
		CowId:       cow.ID,
		WeightInKgs: decimal.NewFromInt(400),
	})
	expectValidationCode(t, err, "invalid_availability_status")
}

func TestWeightRecordOnePerCowPerDay(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")

	first, err := models.CreateWeightRecord(ctx, &models.NewWeightRecord{
		CowId:       cow.ID,
		WeightInKgs: decimal.NewFromInt(440),
	})
	if err != nil {
		t.Fatalf("CreateWeightRecord: %v", err)
	}

	_, err = models.CreateWeightRecord(ctx, &models.NewWeightRecord{
		CowId:       cow.ID,
		WeightInKgs: decimal.NewFromInt(445),
	})
	expectValidationCode(t, err, "duplicate_weight_record")

	// updating the same record on the same day must not trip the rule
	updated, err := models.UpdateWeightRecord(ctx, first.ID, &models.NewWeightRecord{
		CowId:       cow.ID,
		WeightInKgs: decimal.NewFromInt(442),
		DateTaken:   first.DateTaken,
	})
	if err != nil {
		t.Fatalf("UpdateWeightRecord: %v", err)
	}
	if !updated.WeightInKgs.Equal(decimal.NewFromInt(442)) {
		t.Fatalf("expected 442 kgs after update, got %s", updated.WeightInKgs)
	}

	// a different day is fine
	if _, err := models.CreateWeightRecord(ctx, &models.NewWeightRecord{
		CowId:       cow.ID,
		WeightInKgs: decimal.NewFromInt(448),
		DateTaken:   daysAgo(1),
	}); err != nil {
		t.Fatalf("CreateWeightRecord on another day: %v", err)
	}
}
