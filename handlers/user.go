package handlers

import (
	"net/http"

	"court_records_go/services"

	"github.com/labstack/echo/v4"
)

// Signup registers a new user. An already-registered aadhar id is
// reported as a success ("returning user"), not a conflict.
func (h *Handler) Signup(c echo.Context) error {
	var payload services.UserPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: msgInvalidBody})
	}

	result, err := services.SignupUser(h.DB, payload)
	if err != nil {
		c.Logger().Errorf("user signup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, response{Success: false, Message: msgInternalError})
	}

	switch result.Outcome {
	case services.OutcomeValidationFailed:
		return c.JSON(http.StatusForbidden, response{Success: false, Message: msgMissingFields, Data: result.Violations})
	case services.OutcomeAlreadyExists:
		return c.JSON(http.StatusOK, response{Success: true, Message: "User already exists! Logging in", Data: result.Record})
	default:
		return c.JSON(http.StatusCreated, response{Success: true, Message: "User created successfully", Data: result.Record})
	}
}

// UpdateUser applies a partial update to a user keyed by aadhar id
func (h *Handler) UpdateUser(c echo.Context) error {
	var payload services.UserPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: msgInvalidBody})
	}

	result, err := services.UpdateUser(h.DB, payload)
	if err != nil {
		c.Logger().Errorf("user update failed: %v", err)
		return c.JSON(http.StatusInternalServerError, response{Success: false, Message: msgInternalError})
	}

	switch result.Outcome {
	case services.OutcomeValidationFailed:
		return c.JSON(http.StatusForbidden, response{Success: false, Message: msgMissingFields, Data: result.Violations})
	case services.OutcomeNoEffectiveChange:
		return c.JSON(http.StatusBadRequest, response{Success: false, Message: msgNothingToUpdate})
	case services.OutcomeNotFound:
		return c.JSON(http.StatusForbidden, response{Success: false, Message: "User does not exist"})
	default:
		return c.JSON(http.StatusOK, response{Success: true, Message: "Updated user successfully", Data: result.Record})
	}
}
