package main

import (
	"net/http"

	"github.com/joho/godotenv"

	"hoteladmin/internal/auth"
	bookinghandler "hoteladmin/internal/bookings/handler"
	"hoteladmin/internal/bookings/repository"
	"hoteladmin/internal/bookings/service"
	"hoteladmin/internal/bookings/validator"
	"hoteladmin/internal/notifier"
	roomhandler "hoteladmin/internal/rooms/handler"
	"hoteladmin/pkg/app"
	"hoteladmin/pkg/client"
	"hoteladmin/pkg/config"
)

const ServiceName = "admin"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Admin service")

	serverApp := app.NewApplication(cfg)

	hub := notifier.NewHub(cfg.Log)
	go hub.Run()
	serverApp.OnShutdown(hub.Stop)

	events := notifier.Multi{hub}
	if len(cfg.KafkaBrokers) > 0 {
		producer := notifier.NewEventProducer(cfg.KafkaBrokers, cfg.KafkaEventsTopic, cfg.Log)
		events = append(events, producer)
		serverApp.OnShutdown(func() { producer.Close() })
		cfg.Log.Info("Kafka event mirroring enabled", "topic", cfg.KafkaEventsTopic)
	}

	authService := auth.NewService(cfg)
	bookingService := initBookingService(cfg, events)
	roomClient := client.NewRoomServiceClient(cfg.RoomServiceURL, cfg.RoomServiceTimeout)

	serverApp.SetApp(
		http.HandlerFunc(hub.ServeWS),
		auth.NewHandler(authService),
		bookinghandler.NewBookingHandler(bookingService, authService.RequireAdmin, cfg.Log),
		roomhandler.NewRoomHandler(roomClient, authService.RequireAdmin, cfg.Log),
	)
	serverApp.Run()
}

func initBookingService(cfg *config.Config, events notifier.Broadcaster) service.BookingService {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	roomMirror := repository.NewMongoRoomMirrorRepository(cfg)
	bookingService := service.NewBookingService(
		bookingRepo,
		roomMirror,
		bookingValidator,
		events,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService
}
