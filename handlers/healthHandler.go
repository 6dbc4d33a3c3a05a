package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkulima/dairyfarm_backend/models"
	"github.com/mkulima/dairyfarm_backend/utils"
	"gorm.io/gorm"
)

// cowScoped filters a cow-owned collection by the optional cow_id query
// param.
func cowScoped(c *gin.Context) func(tx *gorm.DB) *gorm.DB {
	cowId := c.Query("cow_id")
	return func(tx *gorm.DB) *gorm.DB {
		if cowId != "" {
			tx = tx.Where("cow_id = ?", cowId)
		}
		return tx.Order("id")
	}
}

// ------------------------------------------------------------ weight records

func CreateWeightRecord(c *gin.Context) {
	var input models.NewWeightRecord
	if !bindJSON(c, &input) {
		return
	}
	record, err := models.CreateWeightRecord(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func ListWeightRecords(c *gin.Context) {
	records, err := utils.ListModels[models.WeightRecord](c.Request.Context(), cowScoped(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func GetWeightRecord(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	record, err := models.GetWeightRecord(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func UpdateWeightRecord(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewWeightRecord
	if !bindJSON(c, &input) {
		return
	}
	record, err := models.UpdateWeightRecord(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func DeleteWeightRecord(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := models.DeleteWeightRecord(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------------------------------------------ culling records

func CreateCullingRecord(c *gin.Context) {
	var input models.NewCullingRecord
	if !bindJSON(c, &input) {
		return
	}
	record, err := models.CreateCullingRecord(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func ListCullingRecords(c *gin.Context) {
	records, err := utils.ListModels[models.CullingRecord](c.Request.Context(), cowScoped(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func GetCullingRecord(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	record, err := models.GetCullingRecord(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func DeleteCullingRecord(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := models.DeleteCullingRecord(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------------------------------------------ quarantine

func CreateQuarantineRecord(c *gin.Context) {
	var input models.NewQuarantineRecord
	if !bindJSON(c, &input) {
		return
	}
	record, err := models.CreateQuarantineRecord(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func ListQuarantineRecords(c *gin.Context) {
	records, err := utils.ListModels[models.QuarantineRecord](c.Request.Context(), cowScoped(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func GetQuarantineRecord(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	record, err := models.GetQuarantineRecord(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func UpdateQuarantineRecord(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewQuarantineRecord
	if !bindJSON(c, &input) {
		return
	}
	record, err := models.UpdateQuarantineRecord(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func DeleteQuarantineRecord(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := models.DeleteQuarantineRecord(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------------------------------------------ pathogens

func CreatePathogen(c *gin.Context) {
	var input models.NewPathogen
	if !bindJSON(c, &input) {
		return
	}
	pathogen, err := models.CreatePathogen(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pathogen)
}

func ListPathogens(c *gin.Context) {
	pathogens, err := utils.ListModels[models.Pathogen](c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pathogens)
}

func GetPathogen(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	pathogen, err := models.GetPathogen(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pathogen)
}

func DeletePathogen(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := models.DeletePathogen(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------------------------------------------ disease categories

func CreateDiseaseCategory(c *gin.Context) {
	var input models.NewDiseaseCategory
	if !bindJSON(c, &input) {
		return
	}
	category, err := models.CreateDiseaseCategory(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func ListDiseaseCategories(c *gin.Context) {
	categories, err := utils.ListModels[models.DiseaseCategory](c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func GetDiseaseCategory(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	category, err := models.GetDiseaseCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func DeleteDiseaseCategory(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := models.DeleteDiseaseCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------------------------------------------ symptoms

func CreateSymptom(c *gin.Context) {
	var input models.NewSymptom
	if !bindJSON(c, &input) {
		return
	}
	symptom, err := models.CreateSymptom(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, symptom)
}

func ListSymptoms(c *gin.Context) {
	symptoms, err := utils.ListModels[models.Symptom](c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, symptoms)
}

func GetSymptom(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	symptom, err := models.GetSymptom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, symptom)
}

func UpdateSymptom(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewSymptom
	if !bindJSON(c, &input) {
		return
	}
	symptom, err := models.UpdateSymptom(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, symptom)
}

func DeleteSymptom(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := models.DeleteSymptom(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------------------------------------------ diseases

func CreateDisease(c *gin.Context) {
	var input models.NewDisease
	if !bindJSON(c, &input) {
		return
	}
	disease, err := models.CreateDisease(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, disease)
}

func ListDiseases(c *gin.Context) {
	diseases, err := utils.ListModels[models.Disease](c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, diseases)
}

func GetDisease(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	disease, err := models.GetDisease(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, disease)
}

func UpdateDisease(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewDisease
	if !bindJSON(c, &input) {
		return
	}
	disease, err := models.UpdateDisease(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, disease)
}

func DeleteDisease(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := models.DeleteDisease(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ------------------------------------------------------------ recoveries

// Recoveries are read-only over the API: reactors own the writes.

func ListRecoveries(c *gin.Context) {
	recoveries, err := utils.ListModels[models.Recovery](c.Request.Context(), cowScoped(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recoveries)
}

func GetRecovery(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	recovery, err := models.GetRecovery(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recovery)
}

// ------------------------------------------------------------ treatments

func CreateTreatment(c *gin.Context) {
	var input models.NewTreatment
	if !bindJSON(c, &input) {
		return
	}
	treatment, err := models.CreateTreatment(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, treatment)
}

func ListTreatments(c *gin.Context) {
	treatments, err := utils.ListModels[models.Treatment](c.Request.Context(), cowScoped(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, treatments)
}

func GetTreatment(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	treatment, err := models.GetTreatment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, treatment)
}

func UpdateTreatment(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewTreatment
	if !bindJSON(c, &input) {
		return
	}
	treatment, err := models.UpdateTreatment(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, treatment)
}

func DeleteTreatment(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	if err := models.DeleteTreatment(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
