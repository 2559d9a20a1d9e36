package api

import (
	"net/http"

	"coachdata/internal/service"
	"coachdata/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all HTTP routes onto the given engine. Everything
// except /ping and /api/v1/auth requires a valid bearer token.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	dataStore *store.Store,
	authService service.AuthService,
	workoutService *service.WorkoutService,
	videoService *service.VideoService,
) {

	authHandler := NewAuthHandler(authService, dataStore)
	clientHandler := NewClientHandler(dataStore)
	exerciseHandler := NewExerciseHandler(dataStore)
	workoutHandler := NewWorkoutHandler(dataStore, workoutService)
	recordHandler := NewRecordHandler(dataStore)
	templateHandler := NewTemplateHandler(dataStore)
	videoHandler := NewVideoHandler(videoService, dataStore)
	settingsHandler := NewSettingsHandler(dataStore)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware, ActiveSessionMiddleware(dataStore))
	{
		protected.POST("/auth/logout", authHandler.Logout)

		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID})
		})

		clientGroup := protected.Group("/clients")
		{
			clientGroup.GET("", clientHandler.ListClients)
			clientGroup.POST("", clientHandler.CreateClient)
			clientGroup.GET("/:id", clientHandler.GetClient)
			clientGroup.PUT("/:id", clientHandler.UpdateClient)
			clientGroup.DELETE("/:id", clientHandler.DeleteClient)

			clientGroup.POST("/:id/photos", clientHandler.AddPhoto)
			clientGroup.DELETE("/:id/photos/:photoId", clientHandler.DeletePhoto)
			clientGroup.POST("/:id/body-weights", clientHandler.AddBodyWeight)
			clientGroup.DELETE("/:id/body-weights/:bodyWeightId", clientHandler.DeleteBodyWeight)
		}

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
		}

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.POST("", workoutHandler.LogWorkout)
			workoutGroup.POST("/sessions", workoutHandler.LogSession)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
		}

		recordGroup := protected.Group("/records")
		{
			recordGroup.GET("", recordHandler.ListRecords)
			recordGroup.PUT("/:id", recordHandler.UpdateRecord)
			recordGroup.DELETE("/:id", recordHandler.DeleteRecord)
		}

		templateGroup := protected.Group("/templates")
		{
			templateGroup.GET("", templateHandler.ListTemplates)
			templateGroup.POST("", templateHandler.CreateTemplate)
			templateGroup.GET("/:id", templateHandler.GetTemplate)
			templateGroup.PUT("/:id", templateHandler.UpdateTemplate)
			templateGroup.DELETE("/:id", templateHandler.DeleteTemplate)
		}

		videoGroup := protected.Group("/videos")
		{
			videoGroup.GET("", videoHandler.ListVideos)
			videoGroup.POST("", videoHandler.ConfirmUpload)
			videoGroup.POST("/upload-url", videoHandler.RequestUploadURL)
			videoGroup.GET("/:id/download-url", videoHandler.DownloadURL)
			videoGroup.PUT("/:id", videoHandler.UpdateVideoNotes)
			videoGroup.DELETE("/:id", videoHandler.DeleteVideo)
		}

		settingsGroup := protected.Group("/settings")
		{
			settingsGroup.GET("/measurements", settingsHandler.GetSettings)
			settingsGroup.PUT("/measurements", settingsHandler.UpdateSettings)
		}
	}
}
