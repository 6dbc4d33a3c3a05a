package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
	"gorm.io/gorm"
)

// respondError maps the model error taxonomy onto HTTP statuses:
// validation 400, missing 404, protected/duplicate 409, reactor 500.
func respondError(c *gin.Context, err error) {
	var validationErr *utils.ValidationError
	if errors.As(err, &validationErr) {
		status := http.StatusBadRequest
		if validationErr.IsDuplicate() {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"error": validationErr.Message,
			"code":  validationErr.Code,
		})
		return
	}

	if errors.Is(err, utils.ErrorRecordNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}

	if errors.Is(err, utils.ErrorProtectedRecord) {
		c.JSON(http.StatusConflict, gin.H{"error": "record is referenced by other records and cannot be deleted"})
		return
	}

	if _, ok := utils.IsReactorError(err); ok {
		config.LogError(config.GetLogger(), "handlers", "respondError",
			c.FullPath(), nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// bindJSON decodes the request body, translating field binding failures into
// a field->message map.
func bindJSON(c *gin.Context, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func pathId(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
