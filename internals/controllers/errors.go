package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookstore-api/internals/apperrors"
	logger "bookstore-api/loggers"
)

// respondError maps the error taxonomy onto HTTP statuses and the
// `{error, message|messages}` body shape.
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Validation Failed",
			"messages": validationErr.Fields,
		})
		return
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": notFoundErr.Error(),
		})
		return
	}

	var constraintErr *apperrors.ConstraintError
	if errors.As(err, &constraintErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   constraintErr.Name(),
			"message": constraintErr.Message(),
		})
		return
	}

	var unavailableErr *apperrors.UnavailableError
	if errors.As(err, &unavailableErr) {
		logger.Logger.Error("database unavailable: ", unavailableErr.Cause)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Unexpected Database Error",
			"message": "could not connect to database",
		})
		return
	}

	logger.Logger.Error("unhandled database error: ", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Database Error",
		"message": err.Error(),
	})
}

// parseID reads the {id} path parameter, rejecting anything that is
// not a positive integer.
func parseID(c *gin.Context, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": fmt.Sprintf("%s ID must be a positive integer", label),
		})
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body into dest and also returns the
// set of top-level keys present, so partial updates can tell an
// absent field from an explicit null. Type mismatches are reported
// per field.
func bindJSON(c *gin.Context, dest any) (map[string]json.RawMessage, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		respondBadJSON(c)
		return nil, false
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &present); err != nil {
		respondBadJSON(c)
		return nil, false
	}

	if err := json.Unmarshal(body, dest); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			respondError(c, apperrors.NewValidation(
				typeErr.Field,
				fmt.Sprintf("%s must be type %s", typeErr.Field, jsonTypeName(typeErr.Type)),
			))
			return nil, false
		}
		respondBadJSON(c)
		return nil, false
	}
	return present, true
}

func respondBadJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Bad Request",
		"message": "json data is missing or invalid",
	})
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "integer"
	}
}
