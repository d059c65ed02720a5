package handlers

import (
	"net/http"

	"court_records_go/services"

	"github.com/labstack/echo/v4"
)

// CreateCase registers a new case keyed by its case number
func (h *Handler) CreateCase(c echo.Context) error {
	var payload services.CasePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: msgInvalidBody})
	}

	result, err := services.CreateCase(h.DB, payload)
	if err != nil {
		c.Logger().Errorf("case create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, response{Success: false, Message: msgInternalError})
	}

	switch result.Outcome {
	case services.OutcomeValidationFailed:
		return c.JSON(http.StatusForbidden, response{Success: false, Message: msgMissingFields, Data: result.Violations})
	case services.OutcomeAlreadyExists:
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: "Case already exists"})
	default:
		return c.JSON(http.StatusCreated, response{Success: true, Message: "Created case successfully", Data: result.Record})
	}
}

// UpdateCase applies a partial update to a case; only fir_no is mutable
func (h *Handler) UpdateCase(c echo.Context) error {
	var payload services.CasePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: msgInvalidBody})
	}

	result, err := services.UpdateCase(h.DB, payload)
	if err != nil {
		c.Logger().Errorf("case update failed: %v", err)
		return c.JSON(http.StatusInternalServerError, response{Success: false, Message: msgInternalError})
	}

	switch result.Outcome {
	case services.OutcomeValidationFailed:
		return c.JSON(http.StatusForbidden, response{Success: false, Message: msgMissingFields, Data: result.Violations})
	case services.OutcomeNoEffectiveChange:
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: msgNothingToUpdate})
	case services.OutcomeNotFound:
		return c.JSON(http.StatusForbidden, response{Success: false, Message: "Case does not exist"})
	default:
		return c.JSON(http.StatusOK, response{Success: true, Message: "Updated case successfully", Data: result.Record})
	}
}

// ShowCase fetches one case by number and returns it as an encoded blob
func (h *Handler) ShowCase(c echo.Context) error {
	caseNo := c.Param("case_no")

	result, err := services.ShowCase(h.DB, caseNo)
	if err != nil {
		c.Logger().Errorf("case show failed: %v", err)
		return c.JSON(http.StatusInternalServerError, response{Success: false, Message: msgInternalError})
	}

	switch result.Outcome {
	case services.OutcomeValidationFailed:
		return c.JSON(http.StatusForbidden, response{Success: false, Message: msgMissingFields, Data: result.Violations})
	case services.OutcomeNotFound:
		return c.JSON(http.StatusForbidden, response{Success: false, Message: "Case does not exist"})
	default:
		return c.JSON(http.StatusOK, response{Success: true, Message: "Case fetched successfully", Data: result.Record})
	}
}
