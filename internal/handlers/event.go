package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/agenda-ufu/agenda/internal/models"
	"github.com/agenda-ufu/agenda/internal/store"
	"github.com/agenda-ufu/agenda/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type EventRequest struct {
	Title             string   `json:"title" binding:"required"`
	EventType         string   `json:"event_type" binding:"required"`
	StartDate         string   `json:"start_date" binding:"required"`
	Description       string   `json:"description"`
	DisciplineID      *uint    `json:"discipline_id"`
	StartTime         *string  `json:"start_time"`
	EndTime           *string  `json:"end_time"`
	Location          string   `json:"location"`
	IsRecurring       bool     `json:"is_recurring"`
	RecurrencePattern string   `json:"recurrence_pattern"`
	RecurrenceDays    []string `json:"recurrence_days"`
	RecurrenceEndDate *string  `json:"recurrence_end_date"`
}

// apply overwrites every mutable field of event with the request values.
// Omitted optional fields reset to their zero values on update.
func (r *EventRequest) apply(event *models.Event) error {
	startDate, err := parseDate(r.StartDate)

	if err != nil {
		return err
	}

	recurrenceEnd, err := parseDatePtr(r.RecurrenceEndDate)

	if err != nil {
		return err
	}

	startTime, err := parseClockPtr(r.StartTime)

	if err != nil {
		return err
	}

	endTime, err := parseClockPtr(r.EndTime)

	if err != nil {
		return err
	}

	var recurrenceDays datatypes.JSON

	if r.RecurrenceDays != nil {
		recurrenceDays, err = json.Marshal(r.RecurrenceDays)

		if err != nil {
			return err
		}
	}

	event.DisciplineID = r.DisciplineID
	event.Title = r.Title
	event.Description = r.Description
	event.EventType = r.EventType
	event.StartDate = startDate
	event.StartTime = startTime
	event.EndTime = endTime
	event.Location = r.Location
	event.IsRecurring = r.IsRecurring
	event.RecurrencePattern = r.RecurrencePattern
	event.RecurrenceDays = recurrenceDays
	event.RecurrenceEndDate = recurrenceEnd

	return nil
}

type EventHandler struct {
	events *store.Repository[models.Event]
}

func NewEventHandler(events *store.Repository[models.Event]) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	events, err := h.events.List(ctx.Request.Context(), userID)

	if err != nil {
		log.Printf("Failed to list events: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body EventRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	event := models.Event{UserID: userID}

	if err := body.apply(&event); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.events.Create(ctx.Request.Context(), &event); err != nil {
		log.Printf("Failed to create event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Update(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, ok := resourceID(ctx)

	if !ok {
		return
	}

	var body EventRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	event, err := h.events.Get(ctx.Request.Context(), id, userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		log.Printf("Failed to fetch event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := body.apply(event); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.events.Save(ctx.Request.Context(), event); err != nil {
		log.Printf("Failed to update event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, ok := resourceID(ctx)

	if !ok {
		return
	}

	if err := h.events.Delete(ctx.Request.Context(), id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		log.Printf("Failed to delete event: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
