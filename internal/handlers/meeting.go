package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/agenda-ufu/agenda/internal/models"
	"github.com/agenda-ufu/agenda/internal/store"
	"github.com/agenda-ufu/agenda/internal/utils"
	"github.com/gin-gonic/gin"
)

type MeetingRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	DisciplineID *uint   `json:"discipline_id"`
	MeetingDate  string  `json:"meeting_date" binding:"required"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Location     string  `json:"location"`
	MeetingURL   string  `json:"meeting_url"`
}

func (r *MeetingRequest) apply(meeting *models.Meeting) error {
	meetingDate, err := parseDate(r.MeetingDate)

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

	meeting.DisciplineID = r.DisciplineID
	meeting.Title = r.Title
	meeting.Description = r.Description
	meeting.MeetingDate = meetingDate
	meeting.StartTime = startTime
	meeting.EndTime = endTime
	meeting.Location = r.Location
	meeting.MeetingURL = r.MeetingURL

	return nil
}

type MeetingHandler struct {
	meetings *store.Repository[models.Meeting]
}

func NewMeetingHandler(meetings *store.Repository[models.Meeting]) *MeetingHandler {
	return &MeetingHandler{meetings: meetings}
}

func (h *MeetingHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	meetings, err := h.meetings.List(ctx.Request.Context(), userID)

	if err != nil {
		log.Printf("Failed to list meetings: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, meetings)
}

func (h *MeetingHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body MeetingRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	meeting := models.Meeting{UserID: userID}

	if err := body.apply(&meeting); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.meetings.Create(ctx.Request.Context(), &meeting); err != nil {
		log.Printf("Failed to create meeting: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, meeting)
}

func (h *MeetingHandler) Update(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, ok := resourceID(ctx)

	if !ok {
		return
	}

	var body MeetingRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	meeting, err := h.meetings.Get(ctx.Request.Context(), id, userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
			return
		}
		log.Printf("Failed to fetch meeting: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := body.apply(meeting); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.meetings.Save(ctx.Request.Context(), meeting); err != nil {
		log.Printf("Failed to update meeting: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, meeting)
}

func (h *MeetingHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, ok := resourceID(ctx)

	if !ok {
		return
	}

	if err := h.meetings.Delete(ctx.Request.Context(), id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Meeting not found"})
			return
		}
		log.Printf("Failed to delete meeting: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
