package services

import (
	"encoding/base64"

	"github.com/MagicPie0/TopForm-sub000/config"
	"github.com/MagicPie0/TopForm-sub000/models"
)

type LeaderboardService struct{}

func NewLeaderboardService() *LeaderboardService {
	return &LeaderboardService{}
}

type LeaderboardEntry struct {
	ID          uint                `json:"id"`
	Username    string              `json:"username"`
	ProfilePic  *string             `json:"profilPic"`
	Workouts    []models.Workout    `json:"workouts"`
	Rank        *models.Rank        `json:"rank"`
	MuscleGroup *models.MuscleGroup `json:"muscleGroup"`
}

// GetLeaderboardDetails assembles the public leaderboard: every user
// with their workouts, rank and muscle-group snapshot. Rank and muscle
// group come from the user's first activity row; workouts are gathered
// across all of them.
func (s *LeaderboardService) GetLeaderboardDetails() ([]LeaderboardEntry, error) {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		return nil, err
	}

	var activities []models.UserActivity
	if err := config.DB.Find(&activities).Error; err != nil {
		return nil, err
	}

	byUser := make(map[uint][]models.UserActivity, len(users))
	for _, ua := range activities {
		byUser[ua.UserID] = append(byUser[ua.UserID], ua)
	}

	leaderboard := make([]LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entry := LeaderboardEntry{
			ID:       user.ID,
			Username: user.Username,
			Workouts: []models.Workout{},
		}
		if len(user.ProfilePicture) > 0 {
			pic := base64.StdEncoding.EncodeToString(user.ProfilePicture)
			entry.ProfilePic = &pic
		}

		userActivities := byUser[user.ID]

		workoutIDs := make([]uint, 0, len(userActivities))
		seen := make(map[uint]struct{})
		for _, ua := range userActivities {
			if ua.WorkoutID == nil {
				continue
			}
			if _, ok := seen[*ua.WorkoutID]; ok {
				continue
			}
			seen[*ua.WorkoutID] = struct{}{}
			workoutIDs = append(workoutIDs, *ua.WorkoutID)
		}
		if len(workoutIDs) > 0 {
			if err := config.DB.Where("id IN ?", workoutIDs).Find(&entry.Workouts).Error; err != nil {
				return nil, err
			}
		}

		if len(userActivities) > 0 {
			first := userActivities[0]
			if first.RankID != nil {
				var rank models.Rank
				if err := config.DB.First(&rank, *first.RankID).Error; err == nil {
					entry.Rank = &rank
				}
			}
			if first.MuscleGroupID != nil {
				var mg models.MuscleGroup
				if err := config.DB.First(&mg, *first.MuscleGroupID).Error; err == nil {
					entry.MuscleGroup = &mg
				}
			}
		}

		leaderboard = append(leaderboard, entry)
	}

	return leaderboard, nil
}
