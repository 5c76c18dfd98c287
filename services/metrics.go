package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	workoutSubmissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "topform_workout_submissions_total",
		Help: "Number of successfully scored workout submissions.",
	})
	dietSubmissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "topform_diet_submissions_total",
		Help: "Number of successfully stored diet submissions.",
	})
	workoutPointsAwarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "topform_workout_points_awarded_total",
		Help: "Total rank points awarded across all submissions.",
	})
)
