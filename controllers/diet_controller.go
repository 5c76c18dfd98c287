package controllers

import (
	"errors"
	"net/http"

	"github.com/MagicPie0/TopForm-sub000/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// PostDiet stores one diet submission. At least one meal slot has to
// carry food items.
func PostDiet(c *gin.Context) {
	var req services.DietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "status": 400})
		return
	}
	if req.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Request cannot be null", "status": 400})
		return
	}

	userID := c.GetUint("userID")

	dietSvc := services.NewDietService()
	if err := dietSvc.SubmitDiet(userID, req); err != nil {
		log.Errorf("Saving diet failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while saving the meal.", "status": 500})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal and user_activity saved successfully.", "status": 200})
}

// GetDietByDate returns the user's stored diets for one day.
func GetDietByDate(c *gin.Context) {
	userID := c.GetUint("userID")

	dietSvc := services.NewDietService()
	views, err := dietSvc.GetDietsByDate(userID, c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format.", "status": 400})
		case errors.Is(err, services.ErrNoDiets):
			c.JSON(http.StatusNotFound, gin.H{"message": "No diets recorded for this user.", "status": 404})
		case errors.Is(err, services.ErrNoDietForDate):
			c.JSON(http.StatusNotFound, gin.H{"message": "No diet for this day.", "status": 404})
		default:
			log.Errorf("Loading diets failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred.", "status": 500})
		}
		return
	}

	c.JSON(http.StatusOK, views)
}
