package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"reached": true, "id": GetRequestID(c)})
	})
	return r
}

func TestAPIKeyRequired(t *testing.T) {
	r := newEngine(APIKeyRequired("SecretAPIKey"))

	tests := []struct {
		query   string
		reached bool
	}{
		{"?api_key=SecretAPIKey", true},
		{"?api_key=secretapikey", false},
		{"?api_key=", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok"+tt.query, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}

			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if _, reached := body["reached"]; reached != tt.reached {
				t.Fatalf("reached = %v, want %v (body %s)", reached, tt.reached, w.Body)
			}
			if !tt.reached {
				resp, _ := body["response"].(map[string]any)
				if resp["Forbidden"] != "Invalid API KEy" {
					t.Errorf("body = %s", w.Body)
				}
			}
		})
	}
}

func TestAPIKeyRequiredEmptySecretRejectsAll(t *testing.T) {
	r := newEngine(APIKeyRequired(""))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok?api_key=", nil))
	if strings.Contains(w.Body.String(), "reached") {
		t.Errorf("empty secret let request through: %s", w.Body)
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	generated := w.Header().Get(RequestIDHeader)
	if generated == "" {
		t.Fatal("no request id generated")
	}
	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["id"] != generated {
		t.Errorf("context id = %v, header id = %s", body["id"], generated)
	}

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("echoed id = %q, want abc-123", got)
	}
}

func TestCORS(t *testing.T) {
	r := newEngine(CORS([]string{"https://cafes.example"}))

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Origin", "https://cafes.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://cafes.example" {
		t.Errorf("Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign origin status = %d, want 403", w.Code)
	}
}
