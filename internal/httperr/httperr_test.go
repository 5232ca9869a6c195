package httperr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func record(write func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)
	return w
}

func TestWriters(t *testing.T) {
	tests := []struct {
		name       string
		write      func(c *gin.Context)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "bad request",
			write:      func(c *gin.Context) { BadRequest(c, "invalid_date", "Invalid date.") },
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_date",
		},
		{
			name:       "not found",
			write:      func(c *gin.Context) { NotFound(c, "shop_not_found", "Shop not found.") },
			wantStatus: http.StatusNotFound,
			wantCode:   "shop_not_found",
		},
		{
			name:       "forbidden",
			write:      func(c *gin.Context) { Forbidden(c, "access_denied", "Access denied.") },
			wantStatus: http.StatusForbidden,
			wantCode:   "access_denied",
		},
		{
			name:       "unauthorized",
			write:      func(c *gin.Context) { Unauthorized(c, "invalid_credentials", "Invalid credentials.") },
			wantStatus: http.StatusUnauthorized,
			wantCode:   "invalid_credentials",
		},
		{
			// Duplicates stay 400; the error_code is what distinguishes
			// them, not the status.
			name:       "conflict",
			write:      func(c *gin.Context) { Conflict(c, "slot_already_booked", "Time slot is already booked.") },
			wantStatus: http.StatusBadRequest,
			wantCode:   "slot_already_booked",
		},
		{
			name:       "internal",
			write:      func(c *gin.Context) { Internal(c, "internal_error", "Something broke.") },
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := record(tt.write)
			require.Equal(t, tt.wantStatus, w.Code)

			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, tt.wantCode, body.Code)
		})
	}
}
