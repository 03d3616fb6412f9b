package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Fatalf("Error loading .env file: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"USERS_COLLECTION",
		"HABITS_COLLECTION",
		"NOTIFICATIONS_COLLECTION",
		"ACHIEVEMENTS_COLLECTION",
		"POSTS_COLLECTION",
		"REWARDS_COLLECTION",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	// Initialize JWT
	utils.InitJWT()
	// Initialize MongoDB connection
	utils.InitMongoClient()
}

func setupRouter(scheduler *services.ReminderScheduler, notificationsService *usecase.NotificationsService) *gin.Engine {
	router := gin.Default()

	// Repositories
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	habitsRepo := repository.GetHabitsRepo(utils.MongoClient)
	achievementsRepo := repository.GetAchievementsRepo(utils.MongoClient)
	postsRepo := repository.GetPostsRepo(utils.MongoClient)
	rewardsRepo := repository.GetRewardsRepo(utils.MongoClient)

	// The leaderboard cache is optional; without Redis the ranking query
	// just runs on every request.
	var leaderboardCache usecase.LeaderboardCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err := services.NewLeaderboardCache(redisURL)
		if err != nil {
			log.Printf("Leaderboard cache disabled: %v", err)
		} else {
			leaderboardCache = cache
		}
	}

	// Services
	usersService := usecase.NewUsersService(usersRepo, leaderboardCache)
	habitsService := usecase.NewHabitsService(habitsRepo, usersRepo, achievementsRepo, notificationsService)
	achievementsService := usecase.NewAchievementsService(achievementsRepo)
	postsService := usecase.NewPostsService(postsRepo, notificationsService)
	rewardsService := usecase.NewRewardsService(rewardsRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(usersService)
	habitsHandler := handler.NewHabitsHandler(habitsService, usersService, scheduler)
	notificationsHandler := handler.NewNotificationsHandler(notificationsService)
	achievementsHandler := handler.NewAchievementsHandler(achievementsService, usersService)
	postsHandler := handler.NewPostsHandler(postsService)
	rewardsHandler := handler.NewRewardsHandler(rewardsService)

	// Global middleware
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(int64(utils.GetEnvAsInt("MAX_REQUEST_BYTES", 1<<20))))

	// Operational endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/users")
		{
			user.GET("/profile", authHandler.Profile)
			user.PUT("/password", authHandler.UpdatePassword)
			user.PUT("/settings", authHandler.UpdateSettings)
			user.GET("/leaderboard", authHandler.Leaderboard)
		}

		habits := protected.Group("/habits")
		{
			habits.GET("", habitsHandler.GetHabits)
			habits.POST("", habitsHandler.CreateHabit)
			habits.GET("/stats", habitsHandler.GetStats)
			habits.GET("/:id", habitsHandler.GetHabit)
			habits.PUT("/:id", habitsHandler.UpdateHabit)
			habits.DELETE("/:id", habitsHandler.DeleteHabit)
			habits.POST("/:id/complete", habitsHandler.CompleteHabit)
		}

		notifications := protected.Group("/notifications")
		{
			notifications.GET("", notificationsHandler.GetNotifications)
			notifications.POST("", notificationsHandler.CreateNotification)
			notifications.PUT("/read-all", notificationsHandler.MarkAllRead)
			notifications.PUT("/:id/read", notificationsHandler.MarkRead)
			notifications.DELETE("/read", notificationsHandler.DeleteReadNotifications)
			notifications.DELETE("/:id", notificationsHandler.DeleteNotification)
		}

		achievements := protected.Group("/achievements")
		{
			achievements.GET("", achievementsHandler.GetAchievements)
		}

		community := protected.Group("/community")
		{
			community.GET("/posts", postsHandler.GetPosts)
			community.GET("/posts/:id", postsHandler.GetPost)
			community.POST("/posts", postsHandler.CreatePost)
			community.DELETE("/posts/:id", postsHandler.DeletePost)
			community.POST("/posts/:id/like", postsHandler.ToggleLike)
			community.POST("/posts/:id/comments", postsHandler.AddComment)
		}

		rewards := protected.Group("/rewards")
		{
			rewards.GET("", rewardsHandler.GetRewards)
			rewards.POST("", rewardsHandler.CollectReward)
		}
	}

	return router
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repository.SetupIndexes(ctx, utils.MongoClient); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	achievementsRepo := repository.GetAchievementsRepo(utils.MongoClient)
	if err := achievementsRepo.EnsureSeed(ctx); err != nil {
		log.Fatalf("Failed to seed achievements: %v", err)
	}

	habitsRepo := repository.GetHabitsRepo(utils.MongoClient)
	notificationsService := usecase.NewNotificationsService(
		repository.GetNotificationsRepo(utils.MongoClient))
	scheduler := services.NewReminderScheduler(habitsRepo, notificationsService)

	router := setupRouter(scheduler, notificationsService)

	if err := scheduler.RescheduleAll(ctx); err != nil {
		log.Printf("Initial reminder scheduling failed: %v", err)
	}

	// Rebuild reminder timers hourly so edits made through other paths
	// and tomorrow's slots get picked up.
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		rctx, rcancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer rcancel()
		if err := scheduler.RescheduleAll(rctx); err != nil {
			log.Printf("Reminder rescheduling failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to register reminder cron: %v", err)
	}
	c.Start()
	defer c.Stop()
	defer scheduler.Stop()

	// Sample host CPU and memory for the /metrics endpoint.
	utils.StartSystemMetrics(utils.GetEnvAsDuration("SYSTEM_METRICS_INTERVAL", 15*time.Second))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
