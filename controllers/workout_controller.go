package controllers

import (
	"errors"
	"net/http"

	"github.com/MagicPie0/TopForm-sub000/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type WorkoutController struct {
	svc *services.WorkoutService
}

func NewWorkoutController(svc *services.WorkoutService) *WorkoutController {
	return &WorkoutController{svc: svc}
}

// PostWorkout ingests one workout submission: validates the flat lists,
// slices them into exercises and hands the rest to the service, which
// persists, scores and links in a single transaction.
func (wc *WorkoutController) PostWorkout(c *gin.Context) {
	var req services.WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "status": 400})
		return
	}
	if len(req.WorkoutNames) == 0 || len(req.WeightsKg) == 0 || len(req.Reps) == 0 || len(req.Sets) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: All fields are required.", "status": 400})
		return
	}

	exercises, err := services.SliceExercises(req.WorkoutNames, req.WeightsKg, req.Reps, req.Sets)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "status": 400})
		return
	}

	userID := c.GetUint("userID")

	if _, err := wc.svc.SubmitWorkout(userID, exercises); err != nil {
		log.Errorf("Saving workout failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while saving the workout.", "status": 500})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout and user_activity saved successfully.", "status": 200})
}

// GetWorkoutsByDate returns the user's stored workouts for one day,
// reshaped for the workout page.
func (wc *WorkoutController) GetWorkoutsByDate(c *gin.Context) {
	userID := c.GetUint("userID")

	views, err := wc.svc.GetWorkoutsByDate(userID, c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format.", "status": 400})
		case errors.Is(err, services.ErrNoWorkouts):
			c.JSON(http.StatusNotFound, gin.H{"message": "No workouts recorded for this user.", "status": 404})
		case errors.Is(err, services.ErrNoWorkoutForDate):
			c.JSON(http.StatusNotFound, gin.H{"message": "No workout for this day.", "status": 404})
		default:
			log.Errorf("Loading workouts failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred.", "status": 500})
		}
		return
	}

	c.JSON(http.StatusOK, views)
}
