package services

import (
	"errors"
	"time"

	"github.com/MagicPie0/TopForm-sub000/config"
	"github.com/MagicPie0/TopForm-sub000/models"
	"github.com/MagicPie0/TopForm-sub000/utils"

	"gorm.io/gorm"
)

var ErrWrongOldPassword = errors.New("old password is incorrect")

type MuscleGroupInput struct {
	Name string `json:"name"`
	Kg   int    `json:"kg"`
}

// SaveMuscleGroups is the second registration step: store the starting
// lifts as a muscle_groups row, flip the Men flag on the user and
// attach the snapshot to the user's activity row. Transactional.
func SaveMuscleGroups(userID uint, men uint8, groups []MuscleGroupInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		user.Men = men
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		now := time.Now()
		mg := models.MuscleGroup{Date: &now}
		if len(groups) > 0 {
			mg.Name1, mg.Kg1 = groups[0].Name, groups[0].Kg
		}
		if len(groups) > 1 {
			mg.Name2, mg.Kg2 = groups[1].Name, groups[1].Kg
		}
		if len(groups) > 2 {
			mg.Name3, mg.Kg3 = groups[2].Name, groups[2].Kg
		}
		if len(groups) > 3 {
			mg.Name4, mg.Kg4 = groups[3].Name, groups[3].Kg
		}
		if err := tx.Create(&mg).Error; err != nil {
			return err
		}

		var activity models.UserActivity
		err := tx.Where("user_id = ?", userID).First(&activity).Error
		if err == nil {
			activity.MuscleGroupID = &mg.ID
			return tx.Save(&activity).Error
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	})
}

// UpdateUser changes username and/or password. Changing the password
// requires the old one.
func UpdateUser(userID uint, newUsername, oldPassword, newPassword string) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if oldPassword != "" {
		if !utils.CheckPasswordHash(oldPassword, user.Password) {
			return ErrWrongOldPassword
		}
	} else if newPassword != "" {
		return errors.New("old password is required to change the password")
	}

	if newUsername != "" {
		user.Username = newUsername
	}
	if newPassword != "" {
		hashed, err := utils.HashPassword(newPassword)
		if err != nil {
			return err
		}
		user.Password = hashed
	}

	return config.DB.Save(&user).Error
}

func SaveProfilePicture(userID uint, picture []byte) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	user.ProfilePicture = picture
	return config.DB.Save(&user).Error
}

func GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// DeleteUserCascade removes the user together with every workout, diet,
// rank and muscle-group row their activity history references.
func DeleteUserCascade(userID uint) error {
	var activities []models.UserActivity
	if err := config.DB.Where("user_id = ?", userID).Find(&activities).Error; err != nil {
		return err
	}

	workoutIDs, dietIDs, rankIDs, muscleGroupIDs := []uint{}, []uint{}, []uint{}, []uint{}
	for _, ua := range activities {
		if ua.WorkoutID != nil {
			workoutIDs = append(workoutIDs, *ua.WorkoutID)
		}
		if ua.DietID != nil {
			dietIDs = append(dietIDs, *ua.DietID)
		}
		if ua.RankID != nil {
			rankIDs = append(rankIDs, *ua.RankID)
		}
		if ua.MuscleGroupID != nil {
			muscleGroupIDs = append(muscleGroupIDs, *ua.MuscleGroupID)
		}
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if len(workoutIDs) > 0 {
			if err := tx.Delete(&models.Workout{}, workoutIDs).Error; err != nil {
				return err
			}
		}
		if len(dietIDs) > 0 {
			if err := tx.Delete(&models.Diet{}, dietIDs).Error; err != nil {
				return err
			}
		}
		if len(rankIDs) > 0 {
			if err := tx.Delete(&models.Rank{}, rankIDs).Error; err != nil {
				return err
			}
		}
		if len(muscleGroupIDs) > 0 {
			if err := tx.Delete(&models.MuscleGroup{}, muscleGroupIDs).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserActivity{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
