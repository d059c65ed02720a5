package handlers

import (
	"net/http"

	"court_records_go/services"

	"github.com/labstack/echo/v4"
)

// CreateAdvocate registers a new advocate; a duplicate aadhar id is a
// hard rejection, unlike user signup.
func (h *Handler) CreateAdvocate(c echo.Context) error {
	var payload services.AdvocatePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: msgInvalidBody})
	}

	result, err := services.CreateAdvocate(h.DB, payload)
	if err != nil {
		c.Logger().Errorf("advocate create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, response{Success: false, Message: msgInternalError})
	}

	switch result.Outcome {
	case services.OutcomeValidationFailed:
		return c.JSON(http.StatusForbidden, response{Success: false, Message: msgMissingFields, Data: result.Violations})
	case services.OutcomeAlreadyExists:
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: "Advocate already exists"})
	default:
		return c.JSON(http.StatusCreated, response{Success: true, Message: "Advocate created successfully", Data: result.Record})
	}
}

// UpdateAdvocate applies a partial update to an advocate keyed by aadhar id
func (h *Handler) UpdateAdvocate(c echo.Context) error {
	var payload services.AdvocatePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: msgInvalidBody})
	}

	result, err := services.UpdateAdvocate(h.DB, payload)
	if err != nil {
		c.Logger().Errorf("advocate update failed: %v", err)
		return c.JSON(http.StatusInternalServerError, response{Success: false, Message: msgInternalError})
	}

	switch result.Outcome {
	case services.OutcomeValidationFailed:
		return c.JSON(http.StatusForbidden, response{Success: false, Message: msgMissingFields, Data: result.Violations})
	case services.OutcomeNoEffectiveChange:
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: msgNothingToUpdate})
	case services.OutcomeNotFound:
		return c.JSON(http.StatusForbidden, response{Success: false, Message: "Advocate does not exist"})
	default:
		return c.JSON(http.StatusOK, response{Success: true, Message: "Updated advocate successfully", Data: result.Record})
	}
}

// PendingAdvocates returns every advocate awaiting approval as an
// encoded blob
func (h *Handler) PendingAdvocates(c echo.Context) error {
	encoded, err := services.ListPendingAdvocates(h.DB)
	if err != nil {
		c.Logger().Errorf("pending advocate listing failed: %v", err)
		return c.JSON(http.StatusInternalServerError, response{Success: false, Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, response{Success: true, Message: "Pending advocates fetched successfully", Data: encoded})
}
