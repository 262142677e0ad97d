package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		Log(c).Info("ping")
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})
	return r
}

func TestRequestID_Generated(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestID_Reused(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{"valid uuid", "5f0c6a4e-8d3b-4b8e-9c61-2f1d7c3e9a10", true},
		{"garbage", "not-an-id", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set(RequestIDHeader, tt.incoming)
			w := httptest.NewRecorder()
			newEngine().ServeHTTP(w, req)

			if tt.reused {
				assert.Equal(t, tt.incoming, w.Header().Get(RequestIDHeader))
			} else {
				assert.NotEqual(t, tt.incoming, w.Header().Get(RequestIDHeader))
			}
		})
	}
}
