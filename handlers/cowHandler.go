package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkulima/dairyfarm_backend/models"
	"github.com/mkulima/dairyfarm_backend/utils"
	"gorm.io/gorm"
)

func CreateCow(c *gin.Context) {
	var input models.NewCow
	if !bindJSON(c, &input) {
		return
	}

	cow, err := models.CreateCow(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cow)
}

// ListCows supports filtering on the herd's main axes via query params.
func ListCows(c *gin.Context) {
	availability := c.Query("availability_status")
	breed := c.Query("breed")
	gender := c.Query("gender")

	cows, err := utils.ListModels[models.Cow](c.Request.Context(), func(tx *gorm.DB) *gorm.DB {
		if availability != "" {
			tx = tx.Where("availability_status = ?", availability)
		}
		if breed != "" {
			tx = tx.Where("breed = ?", breed)
		}
		if gender != "" {
			tx = tx.Where("gender = ?", gender)
		}
		return tx.Order("id")
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cows)
}

func GetCow(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	cow, err := models.GetCow(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cow)
}

func UpdateCow(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewCow
	if !bindJSON(c, &input) {
		return
	}

	cow, err := models.UpdateCow(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cow)
}

func DeleteCow(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := models.DeleteCow(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func ListCowLactations(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	lactations, err := models.ListCowLactations(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lactations)
}
