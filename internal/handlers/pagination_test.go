package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func paginationCtx(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit values", "page=3&limit=25", 3, 25},
		{"zero page falls back", "page=0", 1, 10},
		{"negative page falls back", "page=-2", 1, 10},
		{"zero limit falls back", "limit=0", 1, 10},
		{"limit above cap falls back", "limit=500", 1, 10},
		{"limit at cap is kept", "limit=100", 1, 100},
		{"garbage falls back", "page=abc&limit=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := paginationCtx(t, tt.query)

			page, limit := parsePagination(c)
			require.Equal(t, tt.wantPage, page)
			require.Equal(t, tt.wantLimit, limit)
		})
	}
}
