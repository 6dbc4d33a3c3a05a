package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkulima/dairyfarm_backend/models"
	"github.com/mkulima/dairyfarm_backend/utils"
)

// ------------------------------------------------------------ inseminators

func CreateInseminator(c *gin.Context) {
	var input models.NewInseminator
	if !bindJSON(c, &input) {
		return
	}
	inseminator, err := models.CreateInseminator(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inseminator)
}

func ListInseminators(c *gin.Context) {
	inseminators, err := utils.ListModels[models.Inseminator](c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inseminators)
}

func GetInseminator(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	inseminator, err := models.GetInseminator(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inseminator)
}

func UpdateInseminator(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewInseminator
	if !bindJSON(c, &input) {
		return
	}
	inseminator, err := models.UpdateInseminator(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inseminator)
}

func DeleteInseminator(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := models.DeleteInseminator(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------------------------------------------ heats

func CreateHeat(c *gin.Context) {
	var input models.NewHeat
	if !bindJSON(c, &input) {
		return
	}
	heat, err := models.CreateHeat(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, heat)
}

func ListHeats(c *gin.Context) {
	heats, err := utils.ListModels[models.Heat](c.Request.Context(), cowScoped(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, heats)
}

func GetHeat(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	heat, err := models.GetHeat(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, heat)
}

func DeleteHeat(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := models.DeleteHeat(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------------------------------------------ inseminations

func CreateInsemination(c *gin.Context) {
	var input models.NewInsemination
	if !bindJSON(c, &input) {
		return
	}
	insemination, err := models.CreateInsemination(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, insemination)
}

func ListInseminations(c *gin.Context) {
	inseminations, err := utils.ListModels[models.Insemination](c.Request.Context(), cowScoped(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inseminations)
}

func GetInsemination(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	insemination, err := models.GetInsemination(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, insemination)
}

func UpdateInsemination(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewInsemination
	if !bindJSON(c, &input) {
		return
	}
	insemination, err := models.UpdateInsemination(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, insemination)
}

func DeleteInsemination(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := models.DeleteInsemination(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------------------------------------------ pregnancies

func CreatePregnancy(c *gin.Context) {
	var input models.NewPregnancy
	if !bindJSON(c, &input) {
		return
	}
	pregnancy, err := models.CreatePregnancy(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pregnancy)
}

func ListPregnancies(c *gin.Context) {
	pregnancies, err := utils.ListModels[models.Pregnancy](c.Request.Context(), cowScoped(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pregnancies)
}

func GetPregnancy(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	pregnancy, err := models.GetPregnancy(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pregnancy)
}

func UpdatePregnancy(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewPregnancy
	if !bindJSON(c, &input) {
		return
	}
	pregnancy, err := models.UpdatePregnancy(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pregnancy)
}

func DeletePregnancy(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := models.DeletePregnancy(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------------------------------------------ lactations

// Lactations are reactor-owned; the API only reads them.

func GetLactation(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	lactation, err := models.GetLactation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lactation)
}
