package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/employer"
	"github.com/DeFacto365/Protip365-sub004/internal/domain/shift"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/jwt"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	assert.Equal(t, 3, NewMeta(1, 10, 25).TotalPages)
	assert.Equal(t, 2, NewMeta(1, 10, 20).TotalPages)
	assert.Equal(t, 0, NewMeta(1, 10, 0).TotalPages)
	assert.Equal(t, 0, NewMeta(1, 0, 5).TotalPages)
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validator.ValidationErrors{{Field: "date", Message: "date is required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"wrapped validation", fmt.Errorf("create: %w", validator.ValidationErrors{{Field: "date", Message: "x"}}), http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"unauthenticated", jwt.ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"shift not found", shift.ErrShiftNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"already worked", shift.ErrShiftAlreadyWorked, http.StatusConflict, "CONFLICT"},
		{"employer name", employer.ErrEmployerNameExists, http.StatusConflict, "CONFLICT"},
		{"inactive employer", employer.ErrEmployerInactive, http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestHandleError_DoesNotLeakInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: password authentication failed"))

	assert.NotContains(t, rec.Body.String(), "password")
}

func TestFile(t *testing.T) {
	rec := httptest.NewRecorder()
	File(rec, "earnings_2024-03-01_2024-03-31.xlsx", "application/octet-stream", []byte("abc"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", rec.Header().Get("Content-Length"))
	assert.Equal(t, `attachment; filename="earnings_2024-03-01_2024-03-31.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "abc", rec.Body.String())
}
