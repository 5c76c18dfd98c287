package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MagicPie0/TopForm-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func generatorTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	gc := NewGeneratorController(services.NewGeneratorService())

	r := gin.New()
	r.POST("/api/generate/generate", gc.Generate)
	return r
}

func TestGenerateRequiresInputText(t *testing.T) {
	r := generatorTestRouter()

	for _, body := range []string{`{}`, `{"inputText":""}`, `{not json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/generate/generate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestGeneratePassesThroughUpstreamJSON(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"plan":"3x5 Squat"}`))
	}))
	defer upstream.Close()
	t.Setenv("AI_API_URL", upstream.URL)

	r := generatorTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate/generate",
		strings.NewReader(`{"inputText":"leg day please"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"plan":"3x5 Squat"}`, w.Body.String())
}

func TestGenerateWrapsPlainTextResponses(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`just do some squats`))
	}))
	defer upstream.Close()
	t.Setenv("AI_API_URL", upstream.URL)

	r := generatorTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate/generate",
		strings.NewReader(`{"inputText":"leg day please"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"generatedText":"just do some squats"}`, w.Body.String())
}

func TestGenerateReportsUnreachableUpstream(t *testing.T) {
	// a server that is already closed
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()
	t.Setenv("AI_API_URL", upstream.URL)

	r := generatorTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate/generate",
		strings.NewReader(`{"inputText":"leg day please"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
