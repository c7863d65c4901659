package main

import (
	"log"
	"net/http"
	"os"

	"samarlodge/internal/api"
	"samarlodge/internal/config"
	"samarlodge/internal/mailer"
	"samarlodge/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	provider := mailer.FromConfig(cfg.Mail)
	log.Printf("Mail provider: %s", provider.Name())

	var notify *service.NotifyService
	if cfg.SMS.Enabled() {
		notify = service.NewNotifyService(cfg.SMS)
		log.Println("Staff SMS notifications enabled")
	}

	svc := service.NewReservationService(cfg.Mail, provider, notify)
	reservationHandler := api.NewReservationHandler(svc)
	siteHandler := api.NewSiteHandler()

	jobSvc := service.NewJobService(cfg.Mail)
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if err := jobSvc.CheckMailTransport(); err != nil {
			log.Printf("%v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule mail transport check: %v", err)
	}
	c.Start()

	r := mux.NewRouter()

	// The reserve handler does its own method dispatch so OPTIONS and 405
	// responses share the CORS headers and JSON envelope.
	r.HandleFunc("/api/reserve", reservationHandler.CreateReservation)
	r.HandleFunc("/api/rooms", siteHandler.ListRooms).Methods("GET")
	r.HandleFunc("/api/health", siteHandler.Health).Methods("GET")

	// Static single-page site.
	r.PathPrefix("/").Handler(http.FileServer(http.Dir("web")))

	handler := handlers.CombinedLoggingHandler(os.Stdout, handlers.RecoveryHandler()(r))

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
