package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil))

	handler := NewHandler(new(MockGitHubService), new(MockSummarizer), 7, logger)
	router := SetupRouter(handler)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "landing page", method: "GET", path: "/", wantStatus: http.StatusOK},
		{name: "health", method: "GET", path: "/healthz", wantStatus: http.StatusOK},
		{name: "analyze requires username", method: "POST", path: "/analyze", wantStatus: http.StatusBadRequest},
		{name: "unknown route", method: "GET", path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
