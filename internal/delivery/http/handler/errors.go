package handler

import (
	"errors"
	"net/http"

	"github.com/Pesokrava/grocery_catalog/internal/delivery/http/response"
	"github.com/Pesokrava/grocery_catalog/internal/domain"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
)

// handleError maps service layer errors to HTTP responses
func handleError(w http.ResponseWriter, log *logger.Logger, err error, entity string) {
	if verr, ok := domain.AsValidationError(err); ok {
		response.ValidationFailed(w, verr)
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, domain.ErrInvalidCoordinates):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrConflict):
		response.Error(w, http.StatusConflict, "Conflict - "+entity+" was modified by another request")
	default:
		log.Error("Internal error in "+entity+" handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
