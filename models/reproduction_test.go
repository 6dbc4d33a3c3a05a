package models_test

import (
	"testing"
	"time"

	"github.com/mkulima/dairyfarm_backend/models"
	"github.com/mkulima/dairyfarm_backend/utils"
)

func TestHeatRules(t *testing.T) {
	ctx := setupTestDB(t)

	bull := createTestCow(t, ctx, "Simba", models.SexMale, 3*365)
	_, err := models.CreateHeat(ctx, &models.NewHeat{CowId: bull.ID})
	expectValidationCode(t, err, "invalid_gender")

	calf := createTestCow(t, ctx, "Kidogo", models.SexFemale, 200)
	_, err = models.CreateHeat(ctx, &models.NewHeat{CowId: calf.ID})
	expectValidationCode(t, err, "invalid_cow_age")

	cow := matureCow(t, ctx, "Neema")
	if _, err := models.CreateHeat(ctx, &models.NewHeat{CowId: cow.ID}); err != nil {
		t.Fatalf("CreateHeat: %v", err)
	}

	// a second observation on the same day is a duplicate, not a new heat
	_, err = models.CreateHeat(ctx, &models.NewHeat{CowId: cow.ID})
	expectValidationCode(t, err, "cow_already_in_heat")

	// and one ten days later is still inside the oestrus cycle
	tenDaysOn := time.Now().AddDate(0, 0, 10)
	_, err = models.CreateHeat(ctx, &models.NewHeat{CowId: cow.ID, ObservationTime: &tenDaysOn})
	expectValidationCode(t, err, "heat_within_cycle")
}

func TestHeatRejectedForPregnantCow(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")

	if _, err := models.CreatePregnancy(ctx, &models.NewPregnancy{
		CowId:     cow.ID,
		StartDate: daysAgo(30),
	}); err != nil {
		t.Fatalf("CreatePregnancy: %v", err)
	}

	_, err := models.CreateHeat(ctx, &models.NewHeat{CowId: cow.ID})
	expectValidationCode(t, err, "cow_already_pregnant")
}

func TestInseminationRequiresRecentHeat(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")
	inseminator := createTestInseminator(t, ctx)

	_, err := models.CreateInsemination(ctx, &models.NewInsemination{
		CowId:         cow.ID,
		InseminatorId: inseminator.ID,
	})
	expectValidationCode(t, err, "cow_not_in_heat")
}

func TestInseminationAttemptInterval(t *testing.T) {
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

	_, err := models.CreateInsemination(ctx, &models.NewInsemination{
		CowId:         cow.ID,
		InseminatorId: inseminator.ID,
	})
	expectValidationCode(t, err, "insemination_too_soon")
}

func TestSuccessfulInseminationOpensPregnancy(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")
	inseminator := createTestInseminator(t, ctx)

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
		t.Fatal("expected a pregnancy to be opened for the successful attempt")
	}

	pregnancy, err := models.GetPregnancy(ctx, *insemination.PregnancyId)
	if err != nil {
		t.Fatalf("GetPregnancy: %v", err)
	}
	if pregnancy.CowId != cow.ID {
		t.Fatalf("pregnancy opened for wrong cow: %d", pregnancy.CowId)
	}
	if !pregnancy.StartDate.Equal(utils.DateOnly(insemination.DateOfInsemination)) {
		t.Fatalf("expected pregnancy start %s, got %s",
			utils.DateOnly(insemination.DateOfInsemination), pregnancy.StartDate)
	}

	refreshed, err := models.GetCow(ctx, cow.ID)
	if err != nil {
		t.Fatalf("GetCow: %v", err)
	}
	if refreshed.CurrentPregnancyStatus != models.CowPregnancyStatusPregnant {
		t.Fatalf("expected cow pregnancy status Pregnant, got %s", refreshed.CurrentPregnancyStatus)
	}

	// re-saving the attempt must not open a second pregnancy
	if _, err := models.UpdateInsemination(ctx, insemination.ID, &models.NewInsemination{
		CowId:         cow.ID,
		InseminatorId: inseminator.ID,
		Success:       utils.NewTrue(),
		Notes:         "confirmed by scan",
	}); err != nil {
		t.Fatalf("UpdateInsemination: %v", err)
	}
	count, err := utils.ResourceCountWhere[models.Pregnancy](ctx, "cow_id = ?", cow.ID)
	if err != nil {
		t.Fatalf("count pregnancies: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 pregnancy, got %d", count)
	}
}

func TestPregnancyOpenConflict(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")

	if _, err := models.CreatePregnancy(ctx, &models.NewPregnancy{
		CowId:     cow.ID,
		StartDate: daysAgo(30),
	}); err != nil {
		t.Fatalf("CreatePregnancy: %v", err)
	}

	_, err := models.CreatePregnancy(ctx, &models.NewPregnancy{
		CowId:     cow.ID,
		StartDate: daysAgo(10),
	})
	expectValidationCode(t, err, "pregnancy_conflict")
}

func TestPregnancyUnderageCowRejected(t *testing.T) {
	ctx := setupTestDB(t)
	calf := createTestCow(t, ctx, "Kidogo", models.SexFemale, 200)

	_, err := models.CreatePregnancy(ctx, &models.NewPregnancy{
		CowId:     calf.ID,
		StartDate: daysAgo(10),
	})
	expectValidationCode(t, err, "invalid_cow_age")
}

func TestPregnancyOutcomeRules(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")

	pregnancy, err := models.CreatePregnancy(ctx, &models.NewPregnancy{
		CowId:     cow.ID,
		StartDate: daysAgo(280),
	})
	if err != nil {
		t.Fatalf("CreatePregnancy: %v", err)
	}

	// a live outcome needs a confirmed status and a calving date
	calving := daysAgo(1)
	_, err = models.UpdatePregnancy(ctx, pregnancy.ID, &models.NewPregnancy{
		CowId:            cow.ID,
		StartDate:        pregnancy.StartDate,
		PregnancyStatus:  models.PregnancyStatusUnconfirmed,
		DateOfCalving:    &calving,
		PregnancyOutcome: models.PregnancyOutcomeLive,
	})
	expectValidationCode(t, err, "invalid_pregnancy_outcome")

	// miscarriage only fits a failed pregnancy
	_, err = models.UpdatePregnancy(ctx, pregnancy.ID, &models.NewPregnancy{
		CowId:            cow.ID,
		StartDate:        pregnancy.StartDate,
		PregnancyStatus:  models.PregnancyStatusConfirmed,
		PregnancyOutcome: models.PregnancyOutcomeMiscarriage,
	})
	expectValidationCode(t, err, "invalid_pregnancy_outcome")

	// a failed pregnancy needs its failed date
	_, err = models.UpdatePregnancy(ctx, pregnancy.ID, &models.NewPregnancy{
		CowId:           cow.ID,
		StartDate:       pregnancy.StartDate,
		PregnancyStatus: models.PregnancyStatusFailed,
	})
	expectValidationCode(t, err, "missing_failed_date")
}

func TestCalvingRollsOverLactation(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")

	first, err := models.CreatePregnancy(ctx, &models.NewPregnancy{
		CowId:     cow.ID,
		StartDate: daysAgo(280),
	})
	if err != nil {
		t.Fatalf("CreatePregnancy: %v", err)
	}

	firstCalving := daysAgo(200)
	if _, err := models.UpdatePregnancy(ctx, first.ID, &models.NewPregnancy{
		CowId:            cow.ID,
		StartDate:        first.StartDate,
		PregnancyStatus:  models.PregnancyStatusConfirmed,
		DateOfCalving:    &firstCalving,
		PregnancyOutcome: models.PregnancyOutcomeLive,
	}); err != nil {
		t.Fatalf("UpdatePregnancy (first calving): %v", err)
	}

	refreshed, err := models.GetCow(ctx, cow.ID)
	if err != nil {
		t.Fatalf("GetCow: %v", err)
	}
	if refreshed.CurrentPregnancyStatus != models.CowPregnancyStatusCalved {
		t.Fatalf("expected pregnancy status Calved, got %s", refreshed.CurrentPregnancyStatus)
	}
	if refreshed.CurrentProductionStatus != models.CowProductionStatusLactating {
		t.Fatalf("expected production status Lactating, got %s", refreshed.CurrentProductionStatus)
	}

	lactations, err := models.ListCowLactations(ctx, cow.ID)
	if err != nil {
		t.Fatalf("ListCowLactations: %v", err)
	}
	if len(lactations) != 1 {
		t.Fatalf("expected 1 lactation after first calving, got %d", len(lactations))
	}
	if lactations[0].LactationNumber != 1 {
		t.Fatalf("expected lactation number 1, got %d", lactations[0].LactationNumber)
	}
	if lactations[0].EndDate != nil {
		t.Fatal("expected first lactation to be open")
	}
	if !lactations[0].StartDate.Equal(firstCalving) {
		t.Fatalf("expected lactation start %s, got %s", firstCalving, lactations[0].StartDate)
	}

	// second gestation: the rollover closes lactation 1 the day before the
	// new calving and opens lactation 2
	second, err := models.CreatePregnancy(ctx, &models.NewPregnancy{
		CowId:     cow.ID,
		StartDate: daysAgo(150),
	})
	if err != nil {
		t.Fatalf("CreatePregnancy (second): %v", err)
	}
	secondCalving := daysAgo(10)
	if _, err := models.UpdatePregnancy(ctx, second.ID, &models.NewPregnancy{
		CowId:            cow.ID,
		StartDate:        second.StartDate,
		PregnancyStatus:  models.PregnancyStatusConfirmed,
		DateOfCalving:    &secondCalving,
		PregnancyOutcome: models.PregnancyOutcomeLive,
	}); err != nil {
		t.Fatalf("UpdatePregnancy (second calving): %v", err)
	}

	lactations, err = models.ListCowLactations(ctx, cow.ID)
	if err != nil {
		t.Fatalf("ListCowLactations: %v", err)
	}
	if len(lactations) != 2 {
		t.Fatalf("expected 2 lactations after second calving, got %d", len(lactations))
	}
	if lactations[0].EndDate == nil {
		t.Fatal("expected first lactation to be closed by the rollover")
	}
	wantEnd := secondCalving.AddDate(0, 0, -1)
	if !lactations[0].EndDate.Equal(wantEnd) {
		t.Fatalf("expected first lactation to end %s, got %s", wantEnd, lactations[0].EndDate)
	}
	if lactations[1].LactationNumber != 2 {
		t.Fatalf("expected lactation number 2, got %d", lactations[1].LactationNumber)
	}
}

func TestMiscarriageNeverStartsLactation(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")

	pregnancy, err := models.CreatePregnancy(ctx, &models.NewPregnancy{
		CowId:     cow.ID,
		StartDate: daysAgo(100),
	})
	if err != nil {
		t.Fatalf("CreatePregnancy: %v", err)
	}

	failedDate := daysAgo(5)
	if _, err := models.UpdatePregnancy(ctx, pregnancy.ID, &models.NewPregnancy{
		CowId:               cow.ID,
		StartDate:           pregnancy.StartDate,
		PregnancyStatus:     models.PregnancyStatusFailed,
		PregnancyFailedDate: &failedDate,
		PregnancyOutcome:    models.PregnancyOutcomeMiscarriage,
	}); err != nil {
		t.Fatalf("UpdatePregnancy (miscarriage): %v", err)
	}

	lactations, err := models.ListCowLactations(ctx, cow.ID)
	if err != nil {
		t.Fatalf("ListCowLactations: %v", err)
	}
	if len(lactations) != 0 {
		t.Fatalf("expected no lactation after miscarriage, got %d", len(lactations))
	}

	refreshed, err := models.GetCow(ctx, cow.ID)
	if err != nil {
		t.Fatalf("GetCow: %v", err)
	}
	if refreshed.CurrentPregnancyStatus != models.CowPregnancyStatusOpen {
		t.Fatalf("expected cow back to Open after miscarriage, got %s", refreshed.CurrentPregnancyStatus)
	}
}

func TestDeleteInseminationProtectedByPregnancy(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")
	inseminator := createTestInseminator(t, ctx)

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

	if err := models.DeleteInsemination(ctx, insemination.ID); err != utils.ErrorProtectedRecord {
		t.Fatalf("expected protected record error, got %v", err)
	}
}

func TestHeatPostCalvingRestPeriod(t *testing.T) {
	ctx := setupTestDB(t)

	recentlyCalved := matureCow(t, ctx, "Neema")
	calving := daysAgo(30)
	if _, err := models.CreatePregnancy(ctx, &models.NewPregnancy{
		CowId:            recentlyCalved.ID,
		StartDate:        daysAgo(290),
		DateOfCalving:    &calving,
		PregnancyStatus:  models.PregnancyStatusConfirmed,
		PregnancyOutcome: models.PregnancyOutcomeLive,
	}); err != nil {
		t.Fatalf("CreatePregnancy: %v", err)
	}

	_, err := models.CreateHeat(ctx, &models.NewHeat{CowId: recentlyCalved.ID})
	expectValidationCode(t, err, "heat_too_soon_after_calving")

	rested := matureCow(t, ctx, "Zawadi")
	oldCalving := daysAgo(70)
	if _, err := models.CreatePregnancy(ctx, &models.NewPregnancy{
		CowId:            rested.ID,
		StartDate:        daysAgo(290),
		DateOfCalving:    &oldCalving,
		PregnancyStatus:  models.PregnancyStatusConfirmed,
		PregnancyOutcome: models.PregnancyOutcomeLive,
	}); err != nil {
		t.Fatalf("CreatePregnancy: %v", err)
	}

	if _, err := models.CreateHeat(ctx, &models.NewHeat{CowId: rested.ID}); err != nil {
		t.Fatalf("CreateHeat after the rest period: %v", err)
	}
}

func TestPregnancyOpenGestationCap(t *testing.T) {
	ctx := setupTestDB(t)
	cow := matureCow(t, ctx, "Neema")

	_, err := models.CreatePregnancy(ctx, &models.NewPregnancy{
		CowId:     cow.ID,
		StartDate: daysAgo(300),
	})
	expectValidationCode(t, err, "invalid_pregnancy_duration")

	// inside the cap the same open pregnancy is fine
	if _, err := models.CreatePregnancy(ctx, &models.NewPregnancy{
		CowId:     cow.ID,
		StartDate: daysAgo(290),
	}); err != nil {
		t.Fatalf("CreatePregnancy: %v", err)
	}
}
