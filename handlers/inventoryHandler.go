package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkulima/dairyfarm_backend/models"
	"github.com/xuri/excelize/v2"
)

// GetCowInventory returns the herd aggregate. Before any cow has been
// written there is nothing to report, which is an empty 200, not a 404.
func GetCowInventory(c *gin.Context) {
	inventory, err := models.GetCowInventory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if inventory == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, inventory)
}

func ListCowInventoryHistory(c *gin.Context) {
	history, err := models.ListCowInventoryHistory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// ExportCowInventoryHistory streams the history log as a spreadsheet.
func ExportCowInventoryHistory(c *gin.Context) {
	history, err := models.ListCowInventoryHistory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventory History"
	index, err := f.NewSheet(sheet)
	if err != nil {
		respondError(c, err)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Number of Cows", "Date Updated"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for row, entry := range history {
		values := []interface{}{entry.ID, entry.NumberOfCows, entry.DateUpdated.Format(time.RFC3339)}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("inventory-history-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		respondError(c, err)
	}
}
