package controllers

import (
	"net/http"

	"github.com/MagicPie0/TopForm-sub000/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// GetLeaderboardDetails is public: the leaderboard page is visible
// without logging in.
func GetLeaderboardDetails(c *gin.Context) {
	lbSvc := services.NewLeaderboardService()
	leaderboard, err := lbSvc.GetLeaderboardDetails()
	if err != nil {
		log.Errorf("Loading leaderboard failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred.", "status": 500})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": leaderboard})
}
