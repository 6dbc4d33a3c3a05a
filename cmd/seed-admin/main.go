// seed-admin creates or updates the farm owner account (username: farmOwner).
// Owner accounts are never created over the API.
//
// Usage (from backend directory):
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-admin
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/models"
	"github.com/mkulima/dairyfarm_backend/utils"
	"gorm.io/gorm"
)

const (
	ownerUsername = "farmOwner"
	ownerName     = "Farm Owner"
)

func main() {
	_ = godotenv.Load()

	password := os.Getenv("SEED_OWNER_PASSWORD")
	if password == "" {
		fmt.Fprintln(os.Stderr, "SEED_OWNER_PASSWORD is required")
		os.Exit(1)
	}

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	if err := models.MigrateTable(); err != nil {
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	var existing models.User
	err = db.WithContext(ctx).Model(&models.User{}).Where("username = ?", ownerUsername).First(&existing).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			fmt.Fprintf(os.Stderr, "failed to lookup user: %v\n", err)
			os.Exit(1)
		}
		u := models.User{
			Username: ownerUsername,
			Name:     ownerName,
			Password: hashed,
			IsActive: utils.NewTrue(),
			Role:     models.UserRoleOwner,
		}
		if err := db.WithContext(ctx).Create(&u).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to create owner user: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created owner user: username=%q\n", ownerUsername)
		return
	}

	if err := db.WithContext(ctx).Model(&models.User{}).Where("username = ?", ownerUsername).Updates(map[string]any{
		"password":  hashed,
		"name":      ownerName,
		"is_active": utils.NewTrue(),
		"role":      models.UserRoleOwner,
	}).Error; err != nil {
		fmt.Fprintf(os.Stderr, "failed to update owner user: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Updated owner user: username=%q\n", ownerUsername)
}
