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

type StudyGoalRequest struct {
	Title string `json:"title" binding:"required"`
	// Pointer so an explicit 0 still satisfies required.
	TargetHours  *int   `json:"target_hours" binding:"required"`
	PeriodType   string `json:"period_type" binding:"required"`
	CurrentHours int    `json:"current_hours"`
}

func (r *StudyGoalRequest) apply(goal *models.StudyGoal) {
	goal.Title = r.Title
	goal.TargetHours = *r.TargetHours
	goal.PeriodType = r.PeriodType
	goal.CurrentHours = r.CurrentHours
}

type StudyGoalHandler struct {
	goals *store.Repository[models.StudyGoal]
}

func NewStudyGoalHandler(goals *store.Repository[models.StudyGoal]) *StudyGoalHandler {
	return &StudyGoalHandler{goals: goals}
}

func (h *StudyGoalHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	goals, err := h.goals.List(ctx.Request.Context(), userID)

	if err != nil {
		log.Printf("Failed to list study goals: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, goals)
}

func (h *StudyGoalHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body StudyGoalRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	goal := models.StudyGoal{UserID: userID}
	body.apply(&goal)

	if err := h.goals.Create(ctx.Request.Context(), &goal); err != nil {
		log.Printf("Failed to create study goal: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, goal)
}

func (h *StudyGoalHandler) Update(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, ok := resourceID(ctx)

	if !ok {
		return
	}

	var body StudyGoalRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	goal, err := h.goals.Get(ctx.Request.Context(), id, userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Study goal not found"})
			return
		}
		log.Printf("Failed to fetch study goal: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	body.apply(goal)

	if err := h.goals.Save(ctx.Request.Context(), goal); err != nil {
		log.Printf("Failed to update study goal: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, goal)
}

func (h *StudyGoalHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, ok := resourceID(ctx)

	if !ok {
		return
	}

	if err := h.goals.Delete(ctx.Request.Context(), id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Study goal not found"})
			return
		}
		log.Printf("Failed to delete study goal: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
