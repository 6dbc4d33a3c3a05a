package models_test

import (
	"testing"

	"github.com/mkulima/dairyfarm_backend/models"
	"github.com/mkulima/dairyfarm_backend/utils"
)

func TestUserLoginRoundTrip(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := models.CreateUser(ctx, &models.NewUser{
		Username: "mary",
		Name:     "Mary Wanjiku",
		Password: "changeme-now",
		Role:     models.UserRoleManager,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	info, err := models.Login(ctx, "mary", "changeme-now")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if info.Token == "" {
		t.Fatal("expected a token")
	}
	if info.Role != string(models.UserRoleManager) {
		t.Fatalf("expected role manager, got %s", info.Role)
	}

	validated, err := utils.JwtValidate(info.Token)
	if err != nil || !validated.Valid {
		t.Fatalf("token failed validation: %v", err)
	}

	if _, err := models.Login(ctx, "mary", "wrong-password"); err == nil {
		t.Fatal("expected login with wrong password to fail")
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := models.CreateUser(ctx, &models.NewUser{
		Username: "bob",
		Name:     "Bob",
		Password: "changeme-now",
		Role:     "superuser",
	})
	expectValidationCode(t, err, "invalid_role")
}

func TestDisabledUserCannotLogin(t *testing.T) {
	ctx := setupTestDB(t)

	if _, err := models.CreateUser(ctx, &models.NewUser{
		Username: "asha",
		Name:     "Asha",
		Password: "changeme-now",
		Role:     models.UserRoleWorker,
		IsActive: utils.NewFalse(),
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if _, err := models.Login(ctx, "asha", "changeme-now"); err == nil {
		t.Fatal("expected disabled user login to fail")
	}
}
