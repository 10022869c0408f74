package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pribylovaa/go-dating-service/internal/identity"
	"github.com/pribylovaa/go-dating-service/internal/service"
	"github.com/stretchr/testify/require"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("service/op: %w", err) }

	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"invalid_argument", wrap(service.ErrInvalidArgument), http.StatusBadRequest, "invalid_argument"},
		{"roles_add", wrap(service.ErrAddRolesFailed), http.StatusBadRequest, "roles_add_failed"},
		{"roles_remove", wrap(service.ErrRemoveRolesFailed), http.StatusBadRequest, "roles_remove_failed"},
		{"not_found", wrap(service.ErrNotFound), http.StatusNotFound, "not_found"},
		{"unauthorized", wrap(service.ErrUnauthorized), http.StatusUnauthorized, "unauthorized"},
		{"unauthenticated", wrap(identity.ErrUnauthenticated), http.StatusUnauthorized, "unauthenticated"},
		{"perm_denied", identity.ErrPermissionDenied, http.StatusForbidden, "permission_denied"},
		{"storage_failure", wrap(service.ErrStorageFailure), http.StatusBadGateway, "storage_failure"},
		{"canceled", wrap(context.Canceled), StatusClientClosedRequest, "canceled"},
		{"deadline", wrap(context.DeadlineExceeded), http.StatusGatewayTimeout, "deadline_exceeded"},
		{"internal", wrap(service.ErrInternal), http.StatusInternalServerError, "internal"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_DetailedValidationMessage(t *testing.T) {
	_, resp := ToHTTP(fmt.Errorf("service/photos/DeletePhoto: %w", service.ErrMainPhotoLocked))
	require.Equal(t, "invalid_argument", resp.Error.Code)
	require.Equal(t, "main photo cannot be deleted or rejected", resp.Error.Message)

	_, resp = ToHTTP(service.ErrEmptyFile)
	require.Equal(t, "file is empty", resp.Error.Message)
}

func TestToHTTP_BadRequest(t *testing.T) {
	err := BadRequest("photo id must be a positive integer")
	require.ErrorIs(t, err, service.ErrInvalidArgument)

	status, resp := ToHTTP(err)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "photo id must be a positive integer", resp.Error.Message)
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestToHTTP_DoesNotLeakDetails(t *testing.T) {
	_, resp := ToHTTP(fmt.Errorf("pgx: password authentication failed: %w", service.ErrInternal))
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError_WritesEnvelopeWithRequestID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set("X-Request-Id", "rid-1")
	w := httptest.NewRecorder()

	WriteError(w, r, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, ErrorResponse{Error: APIError{Code: "not_found", Message: "not found", RequestID: "rid-1"}}, got)
}
