package main

import (
	bookinghandler "dreamshoots/internal/bookings/handler"
	bookingrepository "dreamshoots/internal/bookings/repository"
	bookingservice "dreamshoots/internal/bookings/service"
	"dreamshoots/internal/bookings/validator"
	"dreamshoots/internal/events"
	reelhandler "dreamshoots/internal/reels/handler"
	reelrepository "dreamshoots/internal/reels/repository"
	reelservice "dreamshoots/internal/reels/service"
	systemhandler "dreamshoots/internal/system/handler"
	"dreamshoots/pkg/app"
	"dreamshoots/pkg/config"
	"dreamshoots/pkg/kafka"
	"dreamshoots/pkg/middleware"
)

const ServiceName = "dreamshoots-api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	serverApp := app.NewApplication(cfg)
	publisher := initPublisher(cfg, serverApp)
	guard := middleware.NewAdminGuard(cfg.IsProduction(), cfg.AdminToken, cfg.Log)

	bookingHandler := bookinghandler.NewBookingHandler(initBookingService(cfg, publisher), guard, cfg.Log)
	reelHandler := reelhandler.NewReelHandler(initReelService(cfg, publisher), guard, cfg.Log)
	rootHandler := systemhandler.NewRootHandler(cfg.Log)
	healthHandler := systemhandler.NewHealthHandler(cfg.Environment, config.Version, cfg.Client.Mongo, cfg.Log)

	serverApp.SetApp(healthHandler, rootHandler, bookingHandler, reelHandler)
	serverApp.Run()
}

func initBookingService(cfg *config.Config, publisher *events.Publisher) bookingservice.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := bookingrepository.NewMongoBookingRepository(cfg)
	service := bookingservice.NewBookingService(bookingRepo, bookingValidator, publisher, cfg)

	cfg.Log.Info("Booking service initialized", "database", cfg.DatabaseName)
	return service
}

func initReelService(cfg *config.Config, publisher *events.Publisher) reelservice.ReelService {
	reelRepo := reelrepository.NewMongoReelRepository(cfg)
	service := reelservice.NewReelService(reelRepo, publisher, cfg)

	cfg.Log.Info("Reel service initialized", "database", cfg.DatabaseName)
	return service
}

// initPublisher wires the lifecycle-event producer when brokers are
// configured; without them the publisher is a no-op.
func initPublisher(cfg *config.Config, serverApp *app.Application) *events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Event publishing disabled (no Kafka brokers configured)")
		return events.NewPublisher(nil, cfg.Log)
	}

	producer, err := kafka.NewProducer(kafka.ProducerConfig{
		Brokers:      cfg.KafkaBrokers,
		Topic:        cfg.KafkaEventsTopic,
		BatchTimeout: cfg.KafkaBatchTimeout,
	})
	if err != nil {
		cfg.Log.Fatal("Failed to create event producer", "error", err)
	}

	serverApp.SetProducer(producer)
	cfg.Log.Info("Event publishing enabled", "topic", cfg.KafkaEventsTopic, "brokers", cfg.KafkaBrokers)
	return events.NewPublisher(producer, cfg.Log)
}
