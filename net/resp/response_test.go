package resp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ncobase/habits/ecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessWritesData(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, map[string]any{"id": "h_1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, jsonContentType, w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"h_1"}`, w.Body.String())
}

func TestWithContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WithContentType(w, "application/vnd.dev-habit.hateoas+json", http.StatusCreated, map[string]any{"id": "h_1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/vnd.dev-habit.hateoas+json", w.Header().Get("Content-Type"))
}

func TestSuccessMessageOnly(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, "done")
	assert.JSONEq(t, `{"message":"done"}`, w.Body.String())
}

func TestFail(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, InvalidFields("invalid fields", map[string]string{"fields": "foo"}))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body Exception
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ecode.FieldErr, body.Code)
	assert.Equal(t, "invalid fields", body.Message)
	assert.Equal(t, map[string]any{"fields": "foo"}, body.Errors)
}

func TestFailNil(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
