package controllers

import (
	"net/http"
	"strconv"

	"github.com/MagicPie0/TopForm-sub000/config"
	"github.com/MagicPie0/TopForm-sub000/models"
	"github.com/MagicPie0/TopForm-sub000/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Raw table dumps for the admin dashboard.

func AdminUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": 500})
		return
	}
	c.JSON(http.StatusOK, users)
}

func AdminWorkouts(c *gin.Context) {
	var workouts []models.Workout
	if err := config.DB.Find(&workouts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": 500})
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func AdminDiets(c *gin.Context) {
	var diets []models.Diet
	if err := config.DB.Find(&diets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": 500})
		return
	}
	c.JSON(http.StatusOK, diets)
}

func AdminMuscleGroups(c *gin.Context) {
	var muscleGroups []models.MuscleGroup
	if err := config.DB.Find(&muscleGroups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": 500})
		return
	}
	c.JSON(http.StatusOK, muscleGroups)
}

func AdminRanks(c *gin.Context) {
	var ranks []models.Rank
	if err := config.DB.Find(&ranks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": 500})
		return
	}
	c.JSON(http.StatusOK, ranks)
}

func AdminUserActivity(c *gin.Context) {
	var activities []models.UserActivity
	if err := config.DB.Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": 500})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// AdminDeleteUser removes a user and everything their activity history
// references.
func AdminDeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id.", "status": 400})
		return
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": 500})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found", "status": 404})
		return
	}

	if err := services.DeleteUserCascade(uint(id)); err != nil {
		log.Errorf("Deleting user %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred.", "status": 500})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User and related data deleted successfully", "status": 200})
}
