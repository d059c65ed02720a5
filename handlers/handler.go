package handlers

import "gorm.io/gorm"

// Handler carries the injected database handle for all routes. The
// connection is passed in at startup; there is no package-level state.
type Handler struct {
	DB *gorm.DB
}

// New builds a Handler around an open database connection
func New(database *gorm.DB) *Handler {
	return &Handler{DB: database}
}

// response is the wire envelope every endpoint returns
type response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

const (
	msgInvalidBody     = "Invalid request body"
	msgMissingFields   = "Missing fields in the data"
	msgNothingToUpdate = "At least one parameter to update has to be provided"
	msgInternalError   = "Something went wrong on our side"
)
