package routes

import (
	"github.com/MagicPie0/TopForm-sub000/controllers"
	"github.com/MagicPie0/TopForm-sub000/middlewares"
	"github.com/MagicPie0/TopForm-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestMetrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	hub := services.NewRealtimeHub()
	catalog := services.ExerciseCatalogFromEnv()
	workoutCtrl := controllers.NewWorkoutController(services.NewWorkoutService(catalog, hub))
	generatorCtrl := controllers.NewGeneratorController(services.NewGeneratorService())
	realtimeCtrl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Second registration step (starting muscle groups)
	registration := r.Group("/api/registration")
	registration.Use(middlewares.AuthMiddleware())
	{
		registration.POST("/update-user-muscles", controllers.UpdateUserMuscles)
	}

	workouts := r.Group("/api/workouts")
	workouts.Use(middlewares.AuthMiddleware())
	{
		workouts.POST("", workoutCtrl.PostWorkout)
		workouts.GET("", workoutCtrl.GetWorkoutsByDate)
	}

	diet := r.Group("/api/diet")
	diet.Use(middlewares.AuthMiddleware())
	{
		diet.POST("", controllers.PostDiet)
		diet.GET("", controllers.GetDietByDate)
	}

	profile := r.Group("/api/profile")
	profile.Use(middlewares.AuthMiddleware())
	{
		profile.GET("/get-profile", controllers.GetProfile)
	}

	user := r.Group("/api/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.POST("/upload-profile-picture", controllers.UploadProfilePicture)
		user.GET("/get-profile-picture", controllers.GetProfilePicture)
		user.POST("/update", controllers.UpdateUser)
		user.GET("/details", controllers.GetUserDetails)
	}

	// Leaderboard is public, matching the original page
	leaderboard := r.Group("/api/leaderboard")
	{
		leaderboard.GET("/get-leaderboard-details", controllers.GetLeaderboardDetails)
		leaderboard.GET("/live", realtimeCtrl.LeaderboardWS)
	}

	generate := r.Group("/api/generate")
	{
		generate.POST("/generate", generatorCtrl.Generate)
		generate.GET("/health", generatorCtrl.Health)
		generate.GET("/python-status", generatorCtrl.PythonStatus)
	}

	admin := r.Group("/api/admin")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.GET("/User", controllers.AdminUsers)
		admin.GET("/Workout", controllers.AdminWorkouts)
		admin.GET("/Diet", controllers.AdminDiets)
		admin.GET("/MuscleGroups", controllers.AdminMuscleGroups)
		admin.GET("/Ranks", controllers.AdminRanks)
		admin.GET("/UserActivity", controllers.AdminUserActivity)
		admin.DELETE("/users/:id", controllers.AdminDeleteUser)
	}

	return r
}
