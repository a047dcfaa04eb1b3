package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"schoolapp-backend/errs"
)

// statusFor maps the onboarding error taxonomy onto the status codes the
// mobile client expects: validation 400, duplicate account 409, anything
// that failed mid-sequence 500.
func statusFor(err error) int {
	var ce *errs.CreationError
	if errors.As(err, &ce) {
		return http.StatusInternalServerError
	}

	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidEmailOrPassword), errors.Is(err, errs.ErrTokenExpired),
		errors.Is(err, errs.ErrUnauthorized), errors.Is(err, errs.ErrJWT):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{
		"success": false,
		"message": err.Error(),
	})
}

func ok(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}
