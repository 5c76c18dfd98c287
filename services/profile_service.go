package services

import (
	"errors"
	"sort"

	"github.com/MagicPie0/TopForm-sub000/config"
	"github.com/MagicPie0/TopForm-sub000/models"

	"gorm.io/gorm"
)

type ProfileService struct{}

func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// ExerciseSummary is one exercise reduced to its heaviest set.
type ExerciseSummary struct {
	Name      string `json:"name"`
	MaxWeight int    `json:"maxWeight"`
}

type ProfileWorkout struct {
	ID        uint              `json:"id"`
	Date      string            `json:"date"`
	Exercises []ExerciseSummary `json:"exercises"`
}

type MuscleGroupEntry struct {
	Name string `json:"name"`
	Kg   int    `json:"kg"`
}

type ProfileMuscles struct {
	Groups []MuscleGroupEntry `json:"groups"`
	Date   string             `json:"date"`
}

type ProfileRank struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

type ProfileView struct {
	User struct {
		Name           string `json:"name"`
		Username       string `json:"username"`
		Email          string `json:"email"`
		ProfilePicture []byte `json:"profilePicture"`
	} `json:"user"`
	Muscles  *ProfileMuscles  `json:"muscles"`
	Workouts []ProfileWorkout `json:"workouts"`
	Rank     *ProfileRank     `json:"rank"`
}

// GetProfile assembles the profile page view: user basics, the
// muscle-group snapshot and rank from the user's first activity row,
// and every stored workout reduced to per-exercise max weights.
func (s *ProfileService) GetProfile(userID uint) (*ProfileView, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var firstActivity models.UserActivity
	if err := config.DB.Where("user_id = ?", userID).First(&firstActivity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActivity
		}
		return nil, err
	}

	view := &ProfileView{}
	view.User.Name = user.Name
	view.User.Username = user.Username
	view.User.Email = user.Email
	view.User.ProfilePicture = user.ProfilePicture

	if firstActivity.MuscleGroupID != nil {
		var mg models.MuscleGroup
		if err := config.DB.First(&mg, *firstActivity.MuscleGroupID).Error; err == nil {
			muscles := &ProfileMuscles{
				Groups: []MuscleGroupEntry{
					{Name: mg.Name1, Kg: mg.Kg1},
					{Name: mg.Name2, Kg: mg.Kg2},
					{Name: mg.Name3, Kg: mg.Kg3},
					{Name: mg.Name4, Kg: mg.Kg4},
				},
				Date: "N/A",
			}
			if mg.Date != nil {
				muscles.Date = mg.Date.Format("2006-01-02")
			}
			view.Muscles = muscles
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if firstActivity.RankID != nil {
		var rank models.Rank
		if err := config.DB.First(&rank, *firstActivity.RankID).Error; err == nil {
			view.Rank = &ProfileRank{Name: rank.RankName, Points: rank.Points}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var workoutIDs []uint
	err := config.DB.Model(&models.UserActivity{}).
		Where("user_id = ? AND workout_id IS NOT NULL", userID).
		Distinct().
		Pluck("workout_id", &workoutIDs).Error
	if err != nil {
		return nil, err
	}

	view.Workouts = []ProfileWorkout{}
	if len(workoutIDs) > 0 {
		var workouts []models.Workout
		err = config.DB.
			Where("id IN ?", workoutIDs).
			Order("workout_date DESC").
			Find(&workouts).Error
		if err != nil {
			return nil, err
		}

		for _, w := range workouts {
			view.Workouts = append(view.Workouts, ProfileWorkout{
				ID:        w.ID,
				Date:      w.WorkoutDate.Format("2006-01-02"),
				Exercises: SummarizeExercises(w.WorkoutData),
			})
		}
	}

	return view, nil
}

// SummarizeExercises reduces a stored workout blob to one entry per
// exercise with its maximum weight, heaviest first. An empty weights
// list counts as 0.
func SummarizeExercises(workoutData string) []ExerciseSummary {
	parsed := DecodeWorkoutData(workoutData)

	summaries := make([]ExerciseSummary, 0, len(parsed))
	for _, p := range parsed {
		maxWeight := 0
		for _, w := range p.Weights {
			if w > maxWeight {
				maxWeight = w
			}
		}
		summaries = append(summaries, ExerciseSummary{Name: p.ExerciseName, MaxWeight: maxWeight})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].MaxWeight > summaries[j].MaxWeight
	})
	return summaries
}
