package main

import (
	"log"
	"time"

	"github.com/agenda-ufu/agenda/db"
	"github.com/agenda-ufu/agenda/internal/auth"
	"github.com/agenda-ufu/agenda/internal/config"
	"github.com/agenda-ufu/agenda/internal/handlers"
	"github.com/agenda-ufu/agenda/internal/models"
	"github.com/agenda-ufu/agenda/internal/router"
	"github.com/agenda-ufu/agenda/internal/session"
	"github.com/agenda-ufu/agenda/internal/store"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	users := store.NewUsers(conn)
	sessions := session.NewStore(cfg.SessionTTL)

	go func() {
		for range time.Tick(time.Minute) {
			sessions.PurgeExpired()
		}
	}()

	authService := auth.NewService(users, cfg.EmailDomain)

	cookies := handlers.CookieConfig{
		Domain: cfg.CookieDomain,
		Secure: cfg.CookieSecure,
		MaxAge: int(cfg.SessionTTL.Seconds()),
	}

	deps := router.Deps{
		Auth:        handlers.NewAuthHandler(authService, sessions, users, cookies),
		Disciplines: handlers.NewDisciplineHandler(store.NewDisciplines(conn)),
		Events:      handlers.NewEventHandler(store.NewRepository[models.Event](conn)),
		Tasks:       handlers.NewTaskHandler(store.NewRepository[models.Task](conn)),
		Goals:       handlers.NewStudyGoalHandler(store.NewRepository[models.StudyGoal](conn)),
		Reminders:   handlers.NewReminderHandler(store.NewRepository[models.Reminder](conn)),
		Meetings:    handlers.NewMeetingHandler(store.NewRepository[models.Meeting](conn)),
		Sessions:    sessions,
		Users:       users,
	}

	r := router.New(deps, cfg.AllowedOrigins)

	log.Printf("Listening on :%s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
