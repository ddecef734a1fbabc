package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/agenda-ufu/agenda/internal/models"
	"github.com/agenda-ufu/agenda/internal/store"
	"github.com/agenda-ufu/agenda/internal/utils"
	"github.com/gin-gonic/gin"
)

type ReminderRequest struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	DisciplineID *uint     `json:"discipline_id"`
	RemindAt     time.Time `json:"remind_at" binding:"required"`
}

func (r *ReminderRequest) apply(reminder *models.Reminder) {
	reminder.DisciplineID = r.DisciplineID
	reminder.Title = r.Title
	reminder.Description = r.Description
	reminder.RemindAt = r.RemindAt
}

type ReminderHandler struct {
	reminders *store.Repository[models.Reminder]
}

func NewReminderHandler(reminders *store.Repository[models.Reminder]) *ReminderHandler {
	return &ReminderHandler{reminders: reminders}
}

func (h *ReminderHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reminders, err := h.reminders.List(ctx.Request.Context(), userID)

	if err != nil {
		log.Printf("Failed to list reminders: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, reminders)
}

func (h *ReminderHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body ReminderRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	reminder := models.Reminder{UserID: userID}
	body.apply(&reminder)

	if err := h.reminders.Create(ctx.Request.Context(), &reminder); err != nil {
		log.Printf("Failed to create reminder: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, reminder)
}

func (h *ReminderHandler) Update(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, ok := resourceID(ctx)

	if !ok {
		return
	}

	var body ReminderRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	reminder, err := h.reminders.Get(ctx.Request.Context(), id, userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
			return
		}
		log.Printf("Failed to fetch reminder: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	body.apply(reminder)

	if err := h.reminders.Save(ctx.Request.Context(), reminder); err != nil {
		log.Printf("Failed to update reminder: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, reminder)
}

func (h *ReminderHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, ok := resourceID(ctx)

	if !ok {
		return
	}

	if err := h.reminders.Delete(ctx.Request.Context(), id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
			return
		}
		log.Printf("Failed to delete reminder: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
