package test

import (
	"net/http/httptest"
	"testing"

	"github.com/cryptowall/go-wallet/internal/api/httperrors"
	"github.com/stretchr/testify/require"
)

// RequireHTTPError asserts that the recorded response carries the status, type and title of httpError.
func RequireHTTPError(t *testing.T, res *httptest.ResponseRecorder, httpError *httperrors.HTTPError) httperrors.HTTPError {
	t.Helper()

	var response httperrors.HTTPError
	ParseResponseAndValidate(t, res, &response)
	require.Equal(t, *httpError.Status, *response.Status)
	require.Equal(t, *httpError.Type, *response.Type)
	require.Equal(t, *httpError.Title, *response.Title)

	return response
}
