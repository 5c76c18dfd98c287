package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/MagicPie0/TopForm-sub000/services"
	"github.com/MagicPie0/TopForm-sub000/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type RegisterInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "status": 400})
		return
	}
	if input.Username == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required.", "status": 400})
		return
	}
	if input.BirthDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Birth date is required.", "field": "birthDate", "status": 400})
		return
	}
	birthDate, err := time.Parse("2006-01-02", input.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid birth date format.", "field": "birthDate", "status": 400})
		return
	}

	user, err := services.RegisterUser(input.Username, input.Password, input.Email, input.Name, &birthDate)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists.", "field": "username", "status": 400})
			return
		}
		log.Errorf("Registration failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred.", "status": 500})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not generate token.", "status": 500})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully.", "jwt": token, "status": 200})
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "status": 400})
		return
	}
	if input.Username == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required.", "status": 400})
		return
	}

	user, err := services.AuthenticateUser(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownUser):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found.", "field": "username", "status": 404})
		case errors.Is(err, services.ErrWrongPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password.", "field": "password", "status": 401})
		default:
			log.Errorf("Login failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred.", "status": 500})
		}
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not generate token.", "status": 500})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token, "status": 200})
}
