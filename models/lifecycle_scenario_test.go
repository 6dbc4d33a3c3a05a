package models_test

import (
	"testing"

	"github.com/mkulima/dairyfarm_backend/models"
	"github.com/mkulima/dairyfarm_backend/utils"
	"github.com/shopspring/decimal"
)

// Walks one cow through the full life of the system: intake, weighing,
// breeding, calving, sickness, recovery and culling, checking the derived
// state at each step.
func TestCowLifecycleScenario(t *testing.T) {
	ctx := setupTestDB(t)

	cow := matureCow(t, ctx, "Neema")
	inseminator := createTestInseminator(t, ctx)

	inventory, err := models.GetCowInventory(ctx)
	if err != nil {
		t.Fatalf("GetCowInventory: %v", err)
	}
	if inventory.TotalNumberOfCows != 1 || inventory.NumberOfFemaleCows != 1 {
		t.Fatalf("unexpected inventory after intake: %+v", inventory)
	}

	if _, err := models.CreateWeightRecord(ctx, &models.NewWeightRecord{
		CowId:       cow.ID,
		WeightInKgs: decimal.NewFromInt(420),
	}); err != nil {
		t.Fatalf("CreateWeightRecord: %v", err)
	}

	// breeding: heat, successful insemination, automatic pregnancy
	if _, err := models.CreateHeat(ctx, &models.NewHeat{CowId: cow.ID}); err != nil {
		t.Fatalf("CreateHeat: %v", err)
	}
	insemination, err := models.CreateInsemination(ctx, &models.NewInsemination{
		CowId:         cow.ID,
		InseminatorId: inseminator.ID,
		Success:       utils.NewTrue(),
	})
	if err != nil {
		t.Fatalf("CreateInsemination: %v", err)
	}
	if insemination.PregnancyId == nil {
		t.Fatal("expected pregnancy from successful insemination")
	}

	// calving
	pregnancy, err := models.GetPregnancy(ctx, *insemination.PregnancyId)
	if err != nil {
		t.Fatalf("GetPregnancy: %v", err)
	}
	calving := utils.TodaysDate()
	if _, err := models.UpdatePregnancy(ctx, pregnancy.ID, &models.NewPregnancy{
		CowId:            cow.ID,
		StartDate:        pregnancy.StartDate,
		PregnancyStatus:  models.PregnancyStatusConfirmed,
		DateOfCalving:    &calving,
		PregnancyOutcome: models.PregnancyOutcomeLive,
	}); err != nil {
		t.Fatalf("UpdatePregnancy: %v", err)
	}

	lactations, err := models.ListCowLactations(ctx, cow.ID)
	if err != nil {
		t.Fatalf("ListCowLactations: %v", err)
	}
	if len(lactations) != 1 || lactations[0].LactationNumber != 1 {
		t.Fatalf("expected one open lactation numbered 1, got %+v", lactations)
	}

	// sickness and recovery
	disease := createTestDisease(t, ctx, cow.ID)
	completion := utils.TodaysDate()
	if _, err := models.CreateTreatment(ctx, &models.NewTreatment{
		DiseaseId:       disease.ID,
		CowId:           cow.ID,
		TreatmentMethod: "Antibiotics",
		TreatmentStatus: models.TreatmentStatusCompleted,
		CompletionDate:  &completion,
	}); err != nil {
		t.Fatalf("CreateTreatment: %v", err)
	}
	recoveries, err := utils.ListModels[models.Recovery](ctx)
	if err != nil {
		t.Fatalf("list recoveries: %v", err)
	}
	if len(recoveries) != 1 || recoveries[0].RecoveryDate == nil {
		t.Fatalf("expected one closed recovery, got %+v", recoveries)
	}

	// culling closes the productive life
	if _, err := models.CreateCullingRecord(ctx, &models.NewCullingRecord{
		CowId:  cow.ID,
		Reason: models.CullingReasonConsistentLowProduction,
	}); err != nil {
		t.Fatalf("CreateCullingRecord: %v", err)
	}
	refreshed, err := models.GetCow(ctx, cow.ID)
	if err != nil {
		t.Fatalf("GetCow: %v", err)
	}
	if refreshed.CurrentProductionStatus != models.CowProductionStatusCulled {
		t.Fatalf("expected Culled, got %s", refreshed.CurrentProductionStatus)
	}

	history, err := models.ListCowInventoryHistory(ctx)
	if err != nil {
		t.Fatalf("ListCowInventoryHistory: %v", err)
	}
	if len(history) == 0 {
		t.Fatal("expected inventory history rows from the cow's life")
	}
}
