package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipe-be/internal/common"
	"recipe-be/internal/validation"
)

// respondError writes the HTTP response for a service error. Validation
// errors become a 400 with per-field messages.
func respondError(c *gin.Context, err error) {
	if verr, ok := validation.As(err); ok {
		c.JSON(http.StatusBadRequest, verr)
		return
	}

	switch {
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	case errors.Is(err, common.ErrorInvalidValue):
		c.JSON(http.StatusBadRequest, validation.Field(validation.NonFieldErrors,
			"Ensure all values are within the allowed range."))
	case errors.Is(err, common.ErrorInvalidCredentials):
		c.JSON(http.StatusBadRequest, validation.Field(validation.NonFieldErrors,
			"Unable to authenticate with provided credentials."))
	case errors.Is(err, common.ErrorInvalidToken), errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token."})
	case errors.Is(err, common.ErrorInactiveUser):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User inactive or deleted."})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// bindJSON decodes the request body into dst. A value of the wrong JSON type
// is reported under its field; any other decoding failure answers 400 with
// a generic body error.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = validation.NonFieldErrors
		}
		c.JSON(http.StatusBadRequest, validation.Field(field, typeMessage(typeErr.Type)))
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
	return false
}

func typeMessage(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "Invalid value."
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.Float32, reflect.Float64:
		return "A valid number is required."
	case reflect.String:
		return "Not a valid string."
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.Slice, reflect.Array:
		return "Expected a list of items."
	default:
		return "Invalid value."
	}
}

// pathID parses the :id parameter. Anything that is not a positive integer
// cannot name a row and is answered with 404.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
		return 0, false
	}
	return id, true
}
