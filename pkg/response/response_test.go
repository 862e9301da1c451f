package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"weather-agent/pkg/response"
)

func TestResponses(t *testing.T) {
	// Setup Gin test mode
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"response": "hi"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if body["response"] != "hi" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("Message", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Message(c, "running")

		var body response.MessageResp
		json.Unmarshal(w.Body.Bytes(), &body)
		if body.Message != "running" {
			t.Errorf("unexpected message %q", body.Message)
		}
	})

	tests := []struct {
		name   string
		send   func(c *gin.Context)
		code   int
		detail string
	}{
		{"ValidationError", func(c *gin.Context) { response.ValidationError(c, errors.New("text is required")) }, http.StatusUnprocessableEntity, "text is required"},
		{"InternalError", func(c *gin.Context) { response.InternalError(c, errors.New("ollama down")) }, http.StatusInternalServerError, "ollama down"},
		{"Error", func(c *gin.Context) { response.Error(c, http.StatusBadGateway, errors.New("upstream")) }, http.StatusBadGateway, "upstream"},
		{"TooManyRequests", response.TooManyRequests, http.StatusTooManyRequests, response.MessageTooManyRequests},
		{"NotFound", response.NotFound, http.StatusNotFound, response.MessageNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tc.send(c)

			if w.Code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, w.Code)
			}
			var body response.ErrorResp
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			if body.Detail != tc.detail {
				t.Errorf("expected detail %q, got %q", tc.detail, body.Detail)
			}
		})
	}
}
