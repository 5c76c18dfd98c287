package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPostDietRejectsEmptySubmission(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/diet", func(c *gin.Context) {
		c.Set("userID", uint(1))
		PostDiet(c)
	})

	for _, body := range []string{
		`{}`,
		`{"breakfast":[],"lunch":[],"diner":[],"dessert":[]}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/diet", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestGetDietRejectsBadDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/diet", func(c *gin.Context) {
		c.Set("userID", uint(1))
		GetDietByDate(c)
	})

	for _, date := range []string{"", "garbage", "2026-13-01"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/diet?date="+date, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "date: %q", date)
	}
}
