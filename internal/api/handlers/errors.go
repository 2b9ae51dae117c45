package handlers

import (
	"errors"
	"net/http"

	"pv-battery-sizing/internal/api/models"
	"pv-battery-sizing/internal/model"

	"github.com/gin-gonic/gin"
)

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

// respondError maps domain errors to 400 with a specific code. Anything else
// is an evaluation failure.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var de *model.DomainError
	if !errors.As(err, &de) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EVALUATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	code := "INVALID_PARAMETERS"
	switch {
	case errors.Is(err, model.ErrUnknownTechnology):
		code = "UNKNOWN_TECHNOLOGY"
	case errors.Is(err, model.ErrUnknownCity):
		code = "UNKNOWN_CITY"
	case errors.Is(err, model.ErrUnknownModule):
		code = "UNKNOWN_MODULE"
	case errors.Is(err, model.ErrUnknownProfile):
		code = "UNKNOWN_PROFILE"
	case errors.Is(err, model.ErrUnknownTariff):
		code = "UNKNOWN_TARIFF"
	case errors.Is(err, model.ErrUnknownInverter):
		code = "UNKNOWN_INVERTER"
	}

	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
			Details: map[string]interface{}{
				"operation": de.Op,
				"field":     de.Field,
			},
		},
	})
}
