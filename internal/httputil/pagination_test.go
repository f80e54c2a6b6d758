package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/prabhanjangururaj/records-vault/internal/httputil"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		expectedOffset int
		expectedLimit  int
		expectError    bool
	}{
		{"default values", "/", 0, 50, false},
		{"valid custom values", "/?offset=10&limit=20", 10, 20, false},
		{"max limit", "/?limit=100", 0, 100, false},
		{"offset negative", "/?offset=-1", 0, 0, true},
		{"offset not an integer", "/?offset=abc", 0, 0, true},
		{"limit zero", "/?limit=0", 0, 0, true},
		{"limit exceeds max", "/?limit=101", 0, 0, true},
		{"limit not an integer", "/?limit=xyz", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			c.Request = req

			offset, limit, err := httputil.ParsePagination(c)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOffset, offset)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}
