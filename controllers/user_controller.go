package controllers

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/MagicPie0/TopForm-sub000/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type ImageInput struct {
	Base64Image string `json:"base64Image"`
}

func UploadProfilePicture(c *gin.Context) {
	var input ImageInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Base64Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No image data provided.", "status": 400})
		return
	}

	imageBytes, err := base64.StdEncoding.DecodeString(input.Base64Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid base64 string format.", "status": 400})
		return
	}

	userID := c.GetUint("userID")

	if err := services.SaveProfilePicture(userID, imageBytes); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found", "status": 404})
			return
		}
		log.Errorf("Saving profile picture failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred.", "status": 500})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile picture uploaded successfully"})
}

func GetProfilePicture(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := services.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found", "status": 404})
			return
		}
		log.Errorf("Loading profile picture failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred.", "status": 500})
		return
	}
	if len(user.ProfilePicture) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile picture not found", "status": 404})
		return
	}

	c.Data(http.StatusOK, "image/jpeg", user.ProfilePicture)
}

type UpdateUserInput struct {
	NewUsername string `json:"newUsername"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func UpdateUser(c *gin.Context) {
	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data.", "status": 400})
		return
	}

	userID := c.GetUint("userID")

	err := services.UpdateUser(userID, input.NewUsername, input.OldPassword, input.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found.", "status": 404})
		case errors.Is(err, services.ErrWrongOldPassword):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Old password is incorrect.", "status": 400})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "status": 400})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully."})
}

func GetUserDetails(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := services.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found", "status": 404})
			return
		}
		log.Errorf("Loading user details failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred.", "status": 500})
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": user.Name, "username": user.Username, "email": user.Email})
}
