package router

import (
	"time"

	"github.com/agenda-ufu/agenda/internal/handlers"
	"github.com/agenda-ufu/agenda/internal/middleware"
	"github.com/agenda-ufu/agenda/internal/session"
	"github.com/agenda-ufu/agenda/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Auth        *handlers.AuthHandler
	Disciplines *handlers.DisciplineHandler
	Events      *handlers.EventHandler
	Tasks       *handlers.TaskHandler
	Goals       *handlers.StudyGoalHandler
	Reminders   *handlers.ReminderHandler
	Meetings    *handlers.MeetingHandler

	Sessions *session.Store
	Users    *store.Users
}

func New(deps Deps, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authRequired := middleware.Auth(deps.Sessions, deps.Users)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/signup", deps.Auth.Signup)
			auth.POST("/login", deps.Auth.Login)
			auth.POST("/logout", deps.Auth.Logout)
			auth.GET("/user", authRequired, deps.Auth.Me)
			auth.DELETE("/user", authRequired, deps.Auth.DeleteAccount)
		}

		disciplines := api.Group("/disciplines", authRequired)
		{
			disciplines.GET("", deps.Disciplines.List)
			disciplines.POST("", deps.Disciplines.Create)
			disciplines.PATCH("/:id", deps.Disciplines.Update)
			disciplines.DELETE("/:id", deps.Disciplines.Delete)
		}

		events := api.Group("/events", authRequired)
		{
			events.GET("", deps.Events.List)
			events.POST("", deps.Events.Create)
			events.PATCH("/:id", deps.Events.Update)
			events.DELETE("/:id", deps.Events.Delete)
		}

		tasks := api.Group("/tasks", authRequired)
		{
			tasks.GET("", deps.Tasks.List)
			tasks.POST("", deps.Tasks.Create)
			tasks.PATCH("/:id", deps.Tasks.Update)
			tasks.DELETE("/:id", deps.Tasks.Delete)
		}

		goals := api.Group("/goals", authRequired)
		{
			goals.GET("", deps.Goals.List)
			goals.POST("", deps.Goals.Create)
			goals.PATCH("/:id", deps.Goals.Update)
			goals.DELETE("/:id", deps.Goals.Delete)
		}

		reminders := api.Group("/reminders", authRequired)
		{
			reminders.GET("", deps.Reminders.List)
			reminders.POST("", deps.Reminders.Create)
			reminders.PATCH("/:id", deps.Reminders.Update)
			reminders.DELETE("/:id", deps.Reminders.Delete)
		}

		meetings := api.Group("/meetings", authRequired)
		{
			meetings.GET("", deps.Meetings.List)
			meetings.POST("", deps.Meetings.Create)
			meetings.PATCH("/:id", deps.Meetings.Update)
			meetings.DELETE("/:id", deps.Meetings.Delete)
		}
	}

	return r
}
