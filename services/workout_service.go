package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/MagicPie0/TopForm-sub000/config"
	"github.com/MagicPie0/TopForm-sub000/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type WorkoutService struct {
	catalog *ExerciseCatalog
	hub     *RealtimeHub
}

func NewWorkoutService(catalog *ExerciseCatalog, hub *RealtimeHub) *WorkoutService {
	return &WorkoutService{catalog: catalog, hub: hub}
}

// WorkoutRequest is the submission wire shape: flat weight/rep lists
// positionally coupled to the exercises via the set counts.
type WorkoutRequest struct {
	WorkoutNames []string `json:"workoutNames"`
	WeightsKg    []string `json:"weightsKg"`
	Reps         []string `json:"reps"`
	Sets         []string `json:"sets"`
}

// WorkoutDetails is the stored per-exercise record. Sets holds the
// declared set count as a one-element list.
type WorkoutDetails struct {
	ExerciseName string `json:"exerciseName"`
	Weights      []int  `json:"weights"`
	Reps         []int  `json:"reps"`
	Sets         []int  `json:"sets"`
}

type workoutItem struct {
	WorkoutDetails *WorkoutDetails `json:"workoutDetails"`
}

// ParsedWorkout is a stored record plus the muscle groups derived from
// the exercise catalog.
type ParsedWorkout struct {
	ExerciseName string   `json:"exerciseName"`
	Weights      []int    `json:"weights"`
	Reps         []int    `json:"reps"`
	Sets         []int    `json:"sets"`
	MuscleGroups []string `json:"muscleGroups"`
}

type WorkoutView struct {
	ID             uint            `json:"id"`
	WorkoutDate    time.Time       `json:"workoutDate"`
	WorkoutDetails []ParsedWorkout `json:"workoutDetails"`
}

// SubmitWorkout runs the whole ingestion unit: serialize the sliced
// exercises into a workout row, add the submission's points to the
// user's rank (creating it on first workout) and fill or spawn the
// activity link. All three writes commit or roll back together.
// The returned rank reflects the new cumulative total.
func (s *WorkoutService) SubmitWorkout(userID uint, exercises []Exercise) (*models.Rank, error) {
	blob, err := EncodeWorkoutData(exercises)
	if err != nil {
		return nil, err
	}

	points := WorkoutPoints(exercises)

	var resultRank *models.Rank
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		workout := &models.Workout{
			WorkoutData: blob,
			WorkoutDate: utcToday(),
		}
		if err := tx.Create(workout).Error; err != nil {
			return err
		}

		newRank, err := s.applyPoints(tx, userID, points)
		if err != nil {
			return err
		}
		resultRank = newRank

		return s.linkWorkout(tx, userID, workout.ID, newRank)
	})
	if err != nil {
		return nil, err
	}

	workoutSubmissionsTotal.Inc()
	workoutPointsAwarded.Add(float64(points))
	if s.hub != nil && resultRank != nil {
		s.hub.BroadcastRankUpdate(RankUpdate{
			UserID:   userID,
			RankName: resultRank.RankName,
			Points:   resultRank.Points,
		})
	}
	return resultRank, nil
}

// applyPoints adds the submission's points to the user's existing rank,
// or creates a fresh rank row and attaches it to the open activity slot.
func (s *WorkoutService) applyPoints(tx *gorm.DB, userID uint, points int) (*models.Rank, error) {
	var ranked models.UserActivity
	err := tx.Where("user_id = ? AND rank_id IS NOT NULL", userID).First(&ranked).Error
	if err == nil {
		var rank models.Rank
		if err := tx.First(&rank, *ranked.RankID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// dangling rank reference; nothing to update
				return nil, nil
			}
			return nil, err
		}
		rank.Points += points
		rank.RankName = RankNameForPoints(rank.Points)
		if err := tx.Save(&rank).Error; err != nil {
			return nil, err
		}
		return &rank, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rank := &models.Rank{
		Points:   points,
		RankName: RankNameForPoints(points),
	}
	if err := tx.Create(rank).Error; err != nil {
		return nil, err
	}

	var open models.UserActivity
	err = tx.Where("user_id = ? AND rank_id IS NULL", userID).First(&open).Error
	if err == nil {
		open.RankID = &rank.ID
		if err := tx.Save(&open).Error; err != nil {
			return nil, err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return rank, nil
}

// linkWorkout fills the user's open workout slot, or spawns a new
// activity row carrying forward the last known muscle-group id.
func (s *WorkoutService) linkWorkout(tx *gorm.DB, userID, workoutID uint, newRank *models.Rank) error {
	var open models.UserActivity
	err := tx.Where("user_id = ? AND workout_id IS NULL", userID).First(&open).Error
	if err == nil {
		open.WorkoutID = &workoutID
		return tx.Save(&open).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var muscleGroupID *uint
	var prev models.UserActivity
	err = tx.Where("user_id = ? AND muscle_group_id IS NOT NULL AND workout_id IS NOT NULL", userID).
		First(&prev).Error
	if err == nil {
		muscleGroupID = prev.MuscleGroupID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var rankID *uint
	if newRank != nil {
		rankID = &newRank.ID
	} else {
		var first models.UserActivity
		err = tx.Where("user_id = ?", userID).First(&first).Error
		if err == nil {
			rankID = first.RankID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	return tx.Create(&models.UserActivity{
		UserID:        userID,
		MuscleGroupID: muscleGroupID,
		WorkoutID:     &workoutID,
		RankID:        rankID,
	}).Error
}

// GetWorkoutsByDate loads and reshapes every stored workout of the user
// for one calendar day.
func (s *WorkoutService) GetWorkoutsByDate(userID uint, dateStr string) ([]WorkoutView, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var workoutIDs []uint
	err = config.DB.Model(&models.UserActivity{}).
		Where("user_id = ? AND workout_id IS NOT NULL", userID).
		Pluck("workout_id", &workoutIDs).Error
	if err != nil {
		return nil, err
	}
	if len(workoutIDs) == 0 {
		return nil, ErrNoWorkouts
	}

	var workouts []models.Workout
	err = config.DB.
		Where("workout_date = ? AND id IN ?", date, workoutIDs).
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, ErrNoWorkoutForDate
	}

	views := make([]WorkoutView, 0, len(workouts))
	for _, w := range workouts {
		views = append(views, WorkoutView{
			ID:             w.ID,
			WorkoutDate:    w.WorkoutDate,
			WorkoutDetails: s.ParseWorkoutData(w.WorkoutData),
		})
	}
	return views, nil
}

// EncodeWorkoutData serializes sliced exercises into the stored blob:
// a JSON array of workoutDetails records, with the declared set count
// kept as a one-element list.
func EncodeWorkoutData(exercises []Exercise) (string, error) {
	items := make([]workoutItem, 0, len(exercises))
	for _, ex := range exercises {
		items = append(items, workoutItem{WorkoutDetails: &WorkoutDetails{
			ExerciseName: ex.Name,
			Weights:      ex.Weights,
			Reps:         ex.Reps,
			Sets:         []int{ex.Sets},
		}})
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(blob), nil
}

// ParseWorkoutData decodes a stored workout blob and labels every
// exercise with its muscle groups from the catalog.
func (s *WorkoutService) ParseWorkoutData(workoutData string) []ParsedWorkout {
	details := DecodeWorkoutData(workoutData)
	parsed := make([]ParsedWorkout, 0, len(details))
	for _, d := range details {
		parsed = append(parsed, ParsedWorkout{
			ExerciseName: d.ExerciseName,
			Weights:      d.Weights,
			Reps:         d.Reps,
			Sets:         d.Sets,
			MuscleGroups: s.catalog.GroupsFor(d.ExerciseName),
		})
	}
	return parsed
}

// DecodeWorkoutData decodes a stored workout blob. Entries without the
// expected workoutDetails shape are skipped; a blob that is not valid
// JSON at all degrades to an empty list. Neither case fails the request.
func DecodeWorkoutData(workoutData string) []WorkoutDetails {
	parsed := []WorkoutDetails{}
	if workoutData == "" || workoutData == "[]" {
		return parsed
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(workoutData), &items); err != nil {
		log.Warnf("Skipping malformed workout blob: %v", err)
		return parsed
	}

	for _, raw := range items {
		var item workoutItem
		if err := json.Unmarshal(raw, &item); err != nil || item.WorkoutDetails == nil || item.WorkoutDetails.ExerciseName == "" {
			log.Warn("Skipping workout entry without workoutDetails shape")
			continue
		}
		parsed = append(parsed, *item.WorkoutDetails)
	}
	return parsed
}

// utcToday truncates the current time to a UTC calendar date.
func utcToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
