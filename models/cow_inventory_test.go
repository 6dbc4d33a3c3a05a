package models_test

import (
	"testing"

	"github.com/mkulima/dairyfarm_backend/models"
)

func TestCowInventoryEmptyState(t *testing.T) {
	ctx := setupTestDB(t)

	inventory, err := models.GetCowInventory(ctx)
	if err != nil {
		t.Fatalf("GetCowInventory: %v", err)
	}
	if inventory != nil {
		t.Fatalf("expected nil inventory before any cow write, got %+v", inventory)
	}
}

func TestCowInventoryRecountOnCreate(t *testing.T) {
	ctx := setupTestDB(t)

	createTestCow(t, ctx, "Neema", models.SexFemale, 3*365)
	createTestCow(t, ctx, "Simba", models.SexMale, 2*365)

	inventory, err := models.GetCowInventory(ctx)
	if err != nil {
		t.Fatalf("GetCowInventory: %v", err)
	}
	if inventory == nil {
		t.Fatal("expected inventory after cow writes")
	}
	if inventory.TotalNumberOfCows != 2 {
		t.Fatalf("expected 2 alive cows, got %d", inventory.TotalNumberOfCows)
	}
	if inventory.NumberOfMaleCows != 1 || inventory.NumberOfFemaleCows != 1 {
		t.Fatalf("expected 1 male / 1 female, got %d / %d",
			inventory.NumberOfMaleCows, inventory.NumberOfFemaleCows)
	}
}

func TestCowInventoryTracksAvailabilityTransitions(t *testing.T) {
	ctx := setupTestDB(t)

	cow := createTestCow(t, ctx, "Neema", models.SexFemale, 3*365)
	createTestCow(t, ctx, "Zawadi", models.SexFemale, 3*365)

	_, err := models.UpdateCow(ctx, cow.ID, &models.NewCow{
		Name:               cow.Name,
		Breed:              cow.Breed,
		Gender:             cow.Gender,
		DateOfBirth:        cow.DateOfBirth,
		AvailabilityStatus: models.CowAvailabilitySold,
	})
	if err != nil {
		t.Fatalf("UpdateCow: %v", err)
	}

	inventory, err := models.GetCowInventory(ctx)
	if err != nil {
		t.Fatalf("GetCowInventory: %v", err)
	}
	if inventory.TotalNumberOfCows != 1 {
		t.Fatalf("expected 1 alive cow after sale, got %d", inventory.TotalNumberOfCows)
	}
	if inventory.NumberOfSoldCows != 1 {
		t.Fatalf("expected 1 sold cow, got %d", inventory.NumberOfSoldCows)
	}
}

func TestCowInventoryRecountOnDelete(t *testing.T) {
	ctx := setupTestDB(t)

	cow := createTestCow(t, ctx, "Neema", models.SexFemale, 3*365)
	createTestCow(t, ctx, "Zawadi", models.SexFemale, 3*365)

	if err := models.DeleteCow(ctx, cow.ID); err != nil {
		t.Fatalf("DeleteCow: %v", err)
	}

	inventory, err := models.GetCowInventory(ctx)
	if err != nil {
		t.Fatalf("GetCowInventory: %v", err)
	}
	if inventory.TotalNumberOfCows != 1 {
		t.Fatalf("expected 1 alive cow after delete, got %d", inventory.TotalNumberOfCows)
	}
}

func TestCowInventoryHistoryAppendsPerMutation(t *testing.T) {
	ctx := setupTestDB(t)

	createTestCow(t, ctx, "Neema", models.SexFemale, 3*365)
	createTestCow(t, ctx, "Zawadi", models.SexFemale, 3*365)

	history, err := models.ListCowInventoryHistory(ctx)
	if err != nil {
		t.Fatalf("ListCowInventoryHistory: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 history rows after 2 cow writes, got %d", len(history))
	}
	if history[len(history)-1].NumberOfCows != 2 {
		t.Fatalf("expected last history row to record 2 cows, got %d",
			history[len(history)-1].NumberOfCows)
	}
}

func TestDeleteCowProtectedByReproductionRecords(t *testing.T) {
	ctx := setupTestDB(t)

	cow := matureCow(t, ctx, "Neema")
	inseminator := createTestInseminator(t, ctx)

	if _, err := models.CreateHeat(ctx, &models.NewHeat{CowId: cow.ID}); err != nil {
		t.Fatalf("CreateHeat: %v", err)
	}
	if _, err := models.CreateInsemination(ctx, &models.NewInsemination{
		CowId:         cow.ID,
		InseminatorId: inseminator.ID,
	}); err != nil {
		t.Fatalf("CreateInsemination: %v", err)
	}

	err := models.DeleteCow(ctx, cow.ID)
	if err == nil {
		t.Fatal("expected delete to be blocked by insemination record")
	}
}
