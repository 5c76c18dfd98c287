package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/MagicPie0/TopForm-sub000/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type GeneratorController struct {
	svc *services.GeneratorService
}

func NewGeneratorController(svc *services.GeneratorService) *GeneratorController {
	return &GeneratorController{svc: svc}
}

type GenerateInput struct {
	InputText string `json:"inputText"`
}

func (gc *GeneratorController) Generate(c *gin.Context) {
	var input GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil || input.InputText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "InputText is required"})
		return
	}

	result, err := gc.svc.Generate(input.InputText)
	if err != nil {
		if errors.Is(err, services.ErrGeneratorUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		log.Errorf("Workout generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", result)
}

func (gc *GeneratorController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "TopForm workout generator API",
	})
}

func (gc *GeneratorController) PythonStatus(c *gin.Context) {
	status, code := gc.svc.Status()
	c.JSON(http.StatusOK, gin.H{
		"status":      status,
		"statusCode":  code,
		"lastChecked": time.Now().UTC(),
	})
}
