package models_test

import (
	"context"
	"testing"
	"time"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/models"
	"github.com/mkulima/dairyfarm_backend/utils"
)

// setupTestDB points the global handle at a fresh in-memory database named
// after the test, so cases never see each other's rows.
func setupTestDB(t *testing.T) context.Context {
	t.Helper()
	config.ConnectTestDatabase(t.Name())
	if err := models.MigrateTable(); err != nil {
		t.Fatalf("MigrateTable: %v", err)
	}
	ctx := context.Background()
	ctx = utils.SetUserIdInContext(ctx, 1)
	ctx = utils.SetUsernameInContext(ctx, "test@local")
	return ctx
}

func daysAgo(n int) time.Time {
	return utils.DateOnly(time.Now().AddDate(0, 0, -n))
}

func createTestCow(t *testing.T, ctx context.Context, name string, gender models.Sex, ageDays int) *models.Cow {
	t.Helper()
	cow, err := models.CreateCow(ctx, &models.NewCow{
		Name:        name,
		Breed:       models.CowBreedFriesian,
		Gender:      gender,
		DateOfBirth: daysAgo(ageDays),
	})
	if err != nil {
		t.Fatalf("CreateCow(%s): %v", name, err)
	}
	return cow
}

// matureCow is old enough for every breeding rule.
func matureCow(t *testing.T, ctx context.Context, name string) *models.Cow {
	t.Helper()
	return createTestCow(t, ctx, name, models.SexFemale, 3*365)
}

func createTestInseminator(t *testing.T, ctx context.Context) *models.Inseminator {
	t.Helper()
	inseminator, err := models.CreateInseminator(ctx, &models.NewInseminator{
		FirstName:     "Juma",
		LastName:      "Otieno",
		PhoneNumber:   "0712345678",
		Email:         "juma.otieno@example.com",
		Company:       "Bora Breeders",
		LicenseNumber: "AI-2024-001",
	})
	if err != nil {
		t.Fatalf("CreateInseminator: %v", err)
	}
	return inseminator
}

func expectValidationCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error %q, got nil", code)
	}
	ve, ok := utils.IsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error %q, got %T: %v", code, err, err)
	}
	if ve.Code != code {
		t.Fatalf("expected validation code %q, got %q (%s)", code, ve.Code, ve.Message)
	}
}
