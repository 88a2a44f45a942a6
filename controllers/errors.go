package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"planet-cred-api/services"
)

// respondServiceError translates a workflow error into the HTTP status the
// API contract promises and renders its kind-specific message.
func respondServiceError(c *gin.Context, err error) {
	kind := services.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case services.KindUnauthorized:
		status = http.StatusForbidden
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindInvalidState, services.KindLimitExceeded, services.KindAlreadyInitialized:
		status = http.StatusBadRequest
	case services.KindGenerationFailed:
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		log.Printf("request failed: %v", err)
	}

	message := "Internal server error"
	var se *services.Error
	if errors.As(err, &se) && se.Message != "" {
		message = se.Message
	}

	c.JSON(status, gin.H{"error": message, "kind": string(kind)})
}
