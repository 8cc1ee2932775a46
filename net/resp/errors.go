package resp

import (
	"net/http"

	"github.com/ncobase/habits/ecode"
)

// BadRequest indicates a bad request.
func BadRequest(message string, data ...any) *Exception {
	return newResponse(http.StatusBadRequest, ecode.RequestErr, message, data...)
}

// InvalidParams indicates query or body parameters failed validation.
func InvalidParams(message string, data ...any) *Exception {
	return newResponse(http.StatusBadRequest, ecode.ParamErr, message, data...)
}

// InvalidFields indicates a sparse fieldset named unknown fields.
func InvalidFields(message string, data ...any) *Exception {
	return newResponse(http.StatusBadRequest, ecode.FieldErr, message, data...)
}

// NotFound indicates that the requested resource is not found.
func NotFound(message string, data ...any) *Exception {
	return newResponse(http.StatusNotFound, ecode.NothingFound, message, data...)
}

// Conflict indicates a conflict error.
func Conflict(message string, data ...any) *Exception {
	return newResponse(http.StatusConflict, ecode.Conflict, message, data...)
}

// InternalServer indicates a server error.
func InternalServer(message string, data ...any) *Exception {
	return newResponse(http.StatusInternalServerError, ecode.ServerErr, message, data...)
}
