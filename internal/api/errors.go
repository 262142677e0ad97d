package api

import (
	"errors"                             // Error inspection
	"net/http"                           // HTTP status codes
	"payment_portal/internal/middleware" // Request scoped logging
	"payment_portal/internal/service"    // Account service

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

const internalErrorMessage = "Internal server error"

// statusFor maps a service error kind to its HTTP status code
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// respondError writes {"error": ...} for err. Store failures are logged and reported generically.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	var se *service.Error
	if status == http.StatusInternalServerError || !errors.As(err, &se) {
		middleware.Log(c).WithFields(logrus.Fields{
			"path":  c.FullPath(),
			"error": err.Error(),
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
		return
	}
	c.JSON(status, gin.H{"error": se.Message})
}
