package models_test

import (
	"context"
	"testing"
	"time"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/models"
	"github.com/mkulima/dairyfarm_backend/utils"
)

func createTestDisease(t *testing.T, ctx context.Context, cowIds ...int) *models.Disease {
	t.Helper()
	pathogen, err := models.CreatePathogen(ctx, &models.NewPathogen{Name: models.PathogenNameBacteria})
	if err != nil {
		t.Fatalf("CreatePathogen: %v", err)
	}
	category, err := models.CreateDiseaseCategory(ctx, &models.NewDiseaseCategory{Name: models.DiseaseCategoryNameInfectious})
	if err != nil {
		t.Fatalf("CreateDiseaseCategory: %v", err)
	}
	disease, err := models.CreateDisease(ctx, &models.NewDisease{
		Name:           "Mastitis",
		PathogenId:     pathogen.ID,
		CategoryId:     category.ID,
		OccurrenceDate: daysAgo(2),
		CowIds:         cowIds,
	})
	if err != nil {
		t.Fatalf("CreateDisease: %v", err)
	}
	return disease
}

func countRecoveries(t *testing.T, ctx context.Context, cowId, diseaseId int) int64 {
	t.Helper()
	count, err := utils.ResourceCountWhere[models.Recovery](ctx,
		"cow_id = ? AND disease_id = ?", cowId, diseaseId)
	if err != nil {
		t.Fatalf("count recoveries: %v", err)
	}
	return count
}

func TestDiseaseLinkOpensRecovery(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")

	disease := createTestDisease(t, ctx, cow.ID)

	if n := countRecoveries(t, ctx, cow.ID, disease.ID); n != 1 {
		t.Fatalf("expected 1 recovery for linked cow, got %d", n)
	}
}

func TestDiseaseUnlinkKeepsRecovery(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")
	other := matureCow(t, ctx, "Zawadi")

	disease := createTestDisease(t, ctx, cow.ID)

	// swap the linked cow; the first cow's recovery must survive
	_, err := models.UpdateDisease(ctx, disease.ID, &models.NewDisease{
		Name:           disease.Name,
		PathogenId:     disease.PathogenId,
		CategoryId:     disease.CategoryId,
		OccurrenceDate: disease.OccurrenceDate,
		CowIds:         []int{other.ID},
	})
	if err != nil {
		t.Fatalf("UpdateDisease: %v", err)
	}

	if n := countRecoveries(t, ctx, cow.ID, disease.ID); n != 1 {
		t.Fatalf("expected unlinked cow to keep its recovery, got %d", n)
	}
	if n := countRecoveries(t, ctx, other.ID, disease.ID); n != 1 {
		t.Fatalf("expected newly linked cow to get a recovery, got %d", n)
	}

	// relinking the first cow must not open a second recovery
	_, err = models.UpdateDisease(ctx, disease.ID, &models.NewDisease{
		Name:           disease.Name,
		PathogenId:     disease.PathogenId,
		CategoryId:     disease.CategoryId,
		OccurrenceDate: disease.OccurrenceDate,
		CowIds:         []int{cow.ID, other.ID},
	})
	if err != nil {
		t.Fatalf("UpdateDisease relink: %v", err)
	}
	if n := countRecoveries(t, ctx, cow.ID, disease.ID); n != 1 {
		t.Fatalf("expected exactly 1 recovery after relink, got %d", n)
	}
}

func TestTreatmentCompletionClosesRecovery(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")
	disease := createTestDisease(t, ctx, cow.ID)

	completion := utils.TodaysDate()
	_, err := models.CreateTreatment(ctx, &models.NewTreatment{
		DiseaseId:       disease.ID,
		CowId:           cow.ID,
		TreatmentMethod: "Intramammary antibiotics",
		TreatmentStatus: models.TreatmentStatusCompleted,
		CompletionDate:  &completion,
	})
	if err != nil {
		t.Fatalf("CreateTreatment: %v", err)
	}

	var recovery models.Recovery
	db := config.GetDB()
	if err := db.Where("cow_id = ? AND disease_id = ?", cow.ID, disease.ID).First(&recovery).Error; err != nil {
		t.Fatalf("fetch recovery: %v", err)
	}
	if recovery.RecoveryDate == nil {
		t.Fatal("expected recovery date to be set by treatment completion")
	}
	if !recovery.RecoveryDate.Equal(completion) {
		t.Fatalf("expected recovery date %s, got %s", completion, recovery.RecoveryDate)
	}
}

func TestTreatmentCompletionWithoutRecoveryRollsBack(t *testing.T) {
	ctx := setupTestDB(t)
	linked := matureCow(t, ctx, "Neema")
	unlinked := matureCow(t, ctx, "Zawadi")
	disease := createTestDisease(t, ctx, linked.ID)

	completion := utils.TodaysDate()
	_, err := models.CreateTreatment(ctx, &models.NewTreatment{
		DiseaseId:       disease.ID,
		CowId:           unlinked.ID,
		TreatmentMethod: "Intramammary antibiotics",
		TreatmentStatus: models.TreatmentStatusCompleted,
		CompletionDate:  &completion,
	})
	if err == nil {
		t.Fatal("expected completion for an unlinked cow to fail")
	}
	if _, ok := utils.IsReactorError(err); !ok {
		t.Fatalf("expected reactor error, got %T: %v", err, err)
	}

	// the failing reactor must take the treatment down with it
	count, cerr := utils.ResourceCountWhere[models.Treatment](ctx, "cow_id = ?", unlinked.ID)
	if cerr != nil {
		t.Fatalf("count treatments: %v", cerr)
	}
	if count != 0 {
		t.Fatalf("expected treatment write to roll back, found %d rows", count)
	}
}

func TestTreatmentCompletionDateRequiresCompletedStatus(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")
	disease := createTestDisease(t, ctx, cow.ID)

	completion := utils.TodaysDate()
	_, err := models.CreateTreatment(ctx, &models.NewTreatment{
		DiseaseId:       disease.ID,
		CowId:           cow.ID,
		TreatmentMethod: "Intramammary antibiotics",
		TreatmentStatus: models.TreatmentStatusScheduled,
		CompletionDate:  &completion,
	})
	expectValidationCode(t, err, "invalid_treatment_status")
}

func TestDeleteDiseaseProtectedByTreatments(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")
	disease := createTestDisease(t, ctx, cow.ID)

	if _, err := models.CreateTreatment(ctx, &models.NewTreatment{
		DiseaseId:       disease.ID,
		CowId:           cow.ID,
		TreatmentMethod: "Observation",
	}); err != nil {
		t.Fatalf("CreateTreatment: %v", err)
	}

	if err := models.DeleteDisease(ctx, disease.ID); err != utils.ErrorProtectedRecord {
		t.Fatalf("expected protected record error, got %v", err)
	}
}

func TestDeletePathogenProtectedByDiseases(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")
	disease := createTestDisease(t, ctx, cow.ID)

	if err := models.DeletePathogen(ctx, disease.PathogenId); err != utils.ErrorProtectedRecord {
		t.Fatalf("expected protected record error, got %v", err)
	}
}

func TestSymptomTypeLocationCompatibility(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := models.CreateSymptom(ctx, &models.NewSymptom{
		Name:         "Laboured breathing",
		SymptomType:  models.SymptomTypeRespiratory,
		Severity:     models.SymptomSeveritySevere,
		Location:     models.SymptomLocationLegs,
		DateObserved: daysAgo(1),
	})
	expectValidationCode(t, err, "incompatible_type_and_location")

	if _, err := models.CreateSymptom(ctx, &models.NewSymptom{
		Name:         "Laboured breathing",
		SymptomType:  models.SymptomTypeRespiratory,
		Severity:     models.SymptomSeveritySevere,
		Location:     models.SymptomLocationChest,
		DateObserved: daysAgo(1),
	}); err != nil {
		t.Fatalf("CreateSymptom: %v", err)
	}

	_, err = models.CreateSymptom(ctx, &models.NewSymptom{
		Name:         "Fever 3",
		SymptomType:  models.SymptomTypeOther,
		Severity:     models.SymptomSeverityMild,
		Location:     models.SymptomLocationWholeBody,
		DateObserved: daysAgo(1),
	})
	expectValidationCode(t, err, "invalid_symptom_name")

	_, err = models.CreateSymptom(ctx, &models.NewSymptom{
		Name:         "Fever",
		SymptomType:  models.SymptomTypeOther,
		Severity:     models.SymptomSeverityMild,
		Location:     models.SymptomLocationWholeBody,
		DateObserved: utils.TodaysDate().Add(48 * time.Hour),
	})
	expectValidationCode(t, err, "invalid_date_observed")
}
