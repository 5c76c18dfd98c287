package controllers

import (
	"errors"
	"net/http"

	"github.com/MagicPie0/TopForm-sub000/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type UpdateMusclesInput struct {
	Men          uint8                       `json:"men"`
	MuscleGroups []services.MuscleGroupInput `json:"muscleGroups"`
}

// UpdateUserMuscles is the second registration step: the starting
// muscle-group lifts chosen right after account creation.
func UpdateUserMuscles(c *gin.Context) {
	var input UpdateMusclesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "status": 400})
		return
	}
	if len(input.MuscleGroups) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: MuscleGroups is required.", "status": 400})
		return
	}

	userID := c.GetUint("userID")

	if err := services.SaveMuscleGroups(userID, input.Men, input.MuscleGroups); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found.", "status": 404})
			return
		}
		log.Errorf("Saving muscle groups failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred.", "status": 500})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User and muscle groups updated successfully."})
}
