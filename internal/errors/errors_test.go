package errors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsure(t *testing.T) {
	appErr := NewInvalidInputError("bad input")
	require.Same(t, appErr, Ensure(appErr))

	wrapped := Ensure(errors.New("boom"))
	require.Equal(t, "INTERNAL_ERROR", wrapped.Code)
	require.ErrorContains(t, wrapped, "boom")

	require.Equal(t, "INTERNAL_ERROR", Ensure(nil).Code)
}

func TestHTTPStatusFromCode(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, HTTPStatusFromCode("INVALID_INPUT"))
	require.Equal(t, http.StatusNotFound, HTTPStatusFromCode("NOT_FOUND"))
	require.Equal(t, http.StatusMethodNotAllowed, HTTPStatusFromCode("METHOD_NOT_ALLOWED"))
	require.Equal(t, http.StatusServiceUnavailable, HTTPStatusFromCode("SERVICE_UNAVAILABLE"))
	require.Equal(t, http.StatusInternalServerError, HTTPStatusFromCode("SOMETHING_ELSE"))
}

func TestRespondWithErrorWritesEnvelope(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()

	RespondWithError(rec, req, NewNotFoundError("nope"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)
	require.Contains(t, rec.Body.String(), `"message":"nope"`)
	require.Contains(t, rec.Body.String(), `"request_id"`)
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapInternal(cause, "something failed")
	require.ErrorIs(t, err, cause)
}
