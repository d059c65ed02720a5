package handlers

import (
	"net/http"

	"court_records_go/services"

	"github.com/labstack/echo/v4"
)

// CreateProcedure schedules a procedure against an existing case. A
// case number with no matching case is a 404 before anything is written.
func (h *Handler) CreateProcedure(c echo.Context) error {
	var payload services.ProcedurePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: msgInvalidBody})
	}

	result, err := services.CreateProcedure(h.DB, payload)
	if err != nil {
		c.Logger().Errorf("procedure create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, response{Success: false, Message: msgInternalError})
	}

	switch result.Outcome {
	case services.OutcomeValidationFailed:
		return c.JSON(http.StatusForbidden, response{Success: false, Message: msgMissingFields, Data: result.Violations})
	case services.OutcomeNotFound:
		return c.JSON(http.StatusNotFound, response{Success: false, Message: "Case number not found"})
	default:
		return c.JSON(http.StatusCreated, response{Success: true, Message: "Procedure created successfully", Data: result.Record})
	}
}

// UpdateProcedure applies a partial update keyed by (case_no, id)
func (h *Handler) UpdateProcedure(c echo.Context) error {
	var payload services.ProcedurePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: msgInvalidBody})
	}

	result, err := services.UpdateProcedure(h.DB, payload)
	if err != nil {
		c.Logger().Errorf("procedure update failed: %v", err)
		return c.JSON(http.StatusInternalServerError, response{Success: false, Message: msgInternalError})
	}

	switch result.Outcome {
	case services.OutcomeValidationFailed:
		return c.JSON(http.StatusForbidden, response{Success: false, Message: msgMissingFields, Data: result.Violations})
	case services.OutcomeNoEffectiveChange:
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: msgNothingToUpdate})
	case services.OutcomeNotFound:
		return c.JSON(http.StatusNotFound, response{Success: false, Message: "Procedure not found"})
	default:
		return c.JSON(http.StatusOK, response{Success: true, Message: "Procedure updated", Data: result.Record})
	}
}

// ListProcedures returns every procedure of one case as an encoded blob.
// The case is addressed directly by case_no or resolved from a party's
// aadhar id (petitioner first, then respondent).
func (h *Handler) ListProcedures(c echo.Context) error {
	var query services.ProcedureListQuery
	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: msgInvalidBody})
	}

	result, err := services.ListProcedures(h.DB, query)
	if err != nil {
		c.Logger().Errorf("procedure listing failed: %v", err)
		return c.JSON(http.StatusInternalServerError, response{Success: false, Message: msgInternalError})
	}

	if result.Outcome == services.OutcomeNotFound {
		return c.JSON(http.StatusNotFound, response{Success: false, Message: "Could not find the case"})
	}

	return c.JSON(http.StatusOK, response{Success: true, Message: "Procedure list extracted", Data: result.Record})
}
