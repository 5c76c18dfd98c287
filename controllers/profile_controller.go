package controllers

import (
	"errors"
	"net/http"

	"github.com/MagicPie0/TopForm-sub000/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// GetProfile returns the profile page view: user basics, muscle-group
// snapshot, rank and the per-workout max-weight breakdown.
func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	profileSvc := services.NewProfileService()
	profile, err := profileSvc.GetProfile(userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found", "status": 404})
		case errors.Is(err, services.ErrNoActivity):
			c.JSON(http.StatusNotFound, gin.H{"message": "UserActivity IDs is not found", "status": 404})
		default:
			log.Errorf("Loading profile failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred.", "status": 500})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}
