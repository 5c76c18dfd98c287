package services

import (
	"errors"
	"time"

	"github.com/MagicPie0/TopForm-sub000/config"
	"github.com/MagicPie0/TopForm-sub000/models"
	"github.com/MagicPie0/TopForm-sub000/utils"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrUnknownUser   = errors.New("user not found")
	ErrWrongPassword = errors.New("invalid password")
)

// RegisterUser creates the user and their initial empty activity row in
// one transaction and returns the stored user.
func RegisterUser(username, password, email, name string, birthDate *time.Time) (*models.User, error) {
	var count int64
	if err := config.DB.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  username,
		Password:  hashed,
		Email:     email,
		Name:      name,
		BirthDate: birthDate,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserActivity{UserID: user.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// AuthenticateUser checks the credentials and returns the user.
// ErrUnknownUser and ErrWrongPassword let the controller tell the
// client which field was wrong.
func AuthenticateUser(username, password string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrWrongPassword
	}
	return &user, nil
}
