package services

import "errors"

// Expected outcomes the controllers translate into 400/404 responses.
// Anything else coming out of a service is a server error.
var (
	ErrInvalidDate      = errors.New("invalid date format")
	ErrUserNotFound     = errors.New("user not found")
	ErrNoActivity       = errors.New("no activity recorded for this user")
	ErrNoWorkouts       = errors.New("no workouts recorded for this user")
	ErrNoWorkoutForDate = errors.New("no workout for this day")
	ErrNoDiets          = errors.New("no diets recorded for this user")
	ErrNoDietForDate    = errors.New("no diet for this day")
)
