package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"reservas/internal/api"
	"reservas/internal/auth"
	"reservas/internal/repository"
	"reservas/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	repo := repository.NewReservationRepository(db)
	sender := service.NewSenderService()
	svc := service.NewReservationService(repo, sender)

	adminAuthRepo := repository.NewAdminAuthRepository(db)
	adminAuthSvc := service.NewAdminAuthService(adminAuthRepo)

	jobRepo := repository.NewJobRepository(db)
	jobSvc := service.NewJobService(jobRepo)

	reservationHandler := api.NewReservationHandler(svc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)
	adminJobHandler := api.NewAdminJobHandler(jobSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/reservations", reservationHandler.ListReservations).Methods("GET")
	r.HandleFunc("/api/reservations", reservationHandler.CreateReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", reservationHandler.GetReservation).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", reservationHandler.UpdateReservation).Methods("PUT")
	r.HandleFunc("/api/reservations/{id}", reservationHandler.DeleteReservation).Methods("DELETE")
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/users", adminAuthHandler.CreateUserAdmin).Methods("POST")
	admin.HandleFunc("/jobs/cancel-stale", adminJobHandler.CancelStaleReservations).Methods("POST")

	// Nightly cleanup of pending reservations whose end date already passed
	c := cron.New()
	c.AddFunc("@daily", func() {
		if _, err := jobSvc.CancelStalePendingReservations(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.Start()

	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "*"
	}
	corsHandler := handlers.CORS(
		handlers.AllowedOrigins(strings.Split(corsOrigins, ",")),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler(r)))
}
