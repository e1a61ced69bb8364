package main

import (
	"log"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/api"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/config"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/database"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/handler"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/repository"
	"github.com/sumityadav0955/travel-guide-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()

	userRepo := repository.NewUserRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	followRepo := repository.NewFollowRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, locationRepo, followRepo)
	locationService := service.NewLocationService(locationRepo)
	reviewService := service.NewReviewService(reviewRepo, locationRepo, notificationRepo)
	messageService := service.NewMessageService(messageRepo, userRepo, notificationRepo)
	followService := service.NewFollowService(followRepo, userRepo, notificationRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	mapService := service.NewMapService(locationRepo, cfg.ClusterThresholdPx)

	handlers := api.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(userService),
		Location:     handler.NewLocationHandler(locationService),
		Review:       handler.NewReviewHandler(reviewService),
		Message:      handler.NewMessageHandler(messageService),
		Follow:       handler.NewFollowHandler(followService),
		Notification: handler.NewNotificationHandler(notificationService),
		Map:          handler.NewMapHandler(mapService),
	}

	router := api.SetupRouter(cfg, handlers)

	log.Printf("Server starting on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
