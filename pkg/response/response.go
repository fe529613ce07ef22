package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/leondli/diary/pkg/errors"
)

// Success sends a 200 response with the payload as the body
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the payload as the body
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest sends a bad request response
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// NotFound sends a not found response
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

// InternalError sends an internal server error response.
// The underlying message is surfaced verbatim.
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

// HandleError maps an error to the appropriate HTTP response
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	if appErr := apperrors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case http.StatusNotFound:
			NotFound(c, appErr.Message)
		case http.StatusBadRequest:
			BadRequest(c, appErr.Message)
		default:
			InternalError(c, appErr.Error())
		}
		return
	}

	InternalError(c, err.Error())
}
