// inventory-rebuild recomputes the herd inventory aggregate from the cow
// table. Useful after manual data surgery or when the derived counts are
// suspected to have drifted.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/models"
	"gorm.io/gorm"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Print the recomputed counts without saving them")
	flag.Parse()

	_ = godotenv.Load()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized")
		os.Exit(1)
	}

	if *dryRun {
		var alive, male, female, sold, dead int64
		counts := []struct {
			dest  *int64
			where []interface{}
		}{
			{&alive, []interface{}{"availability_status = ?", models.CowAvailabilityAlive}},
			{&male, []interface{}{"availability_status = ? AND gender = ?", models.CowAvailabilityAlive, models.SexMale}},
			{&female, []interface{}{"availability_status = ? AND gender = ?", models.CowAvailabilityAlive, models.SexFemale}},
			{&sold, []interface{}{"availability_status = ?", models.CowAvailabilitySold}},
			{&dead, []interface{}{"availability_status = ?", models.CowAvailabilityDead}},
		}
		for _, c := range counts {
			if err := db.Model(&models.Cow{}).Where(c.where[0], c.where[1:]...).Count(c.dest).Error; err != nil {
				fmt.Fprintf(os.Stderr, "count failed: %v\n", err)
				os.Exit(1)
			}
		}
		fmt.Printf("would save: total=%d male=%d female=%d sold=%d dead=%d\n", alive, male, female, sold, dead)
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return models.RefreshCowInventory(tx)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "rebuild failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("inventory rebuilt")
}
