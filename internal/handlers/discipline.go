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

const defaultDisciplineColor = "#3B82F6"

type DisciplineRequest struct {
	Name      string `json:"name" binding:"required"`
	Code      string `json:"code"`
	Professor string `json:"professor"`
	Semester  string `json:"semester"`
	Color     string `json:"color"`
}

func (r *DisciplineRequest) apply(discipline *models.Discipline) {
	color := r.Color

	if color == "" {
		color = defaultDisciplineColor
	}

	discipline.Name = r.Name
	discipline.Code = r.Code
	discipline.Professor = r.Professor
	discipline.Semester = r.Semester
	discipline.Color = color
}

type DisciplineHandler struct {
	disciplines *store.Disciplines
}

func NewDisciplineHandler(disciplines *store.Disciplines) *DisciplineHandler {
	return &DisciplineHandler{disciplines: disciplines}
}

func (h *DisciplineHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	disciplines, err := h.disciplines.List(ctx.Request.Context(), userID)

	if err != nil {
		log.Printf("Failed to list disciplines: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, disciplines)
}

func (h *DisciplineHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body DisciplineRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	discipline := models.Discipline{UserID: userID}
	body.apply(&discipline)

	if err := h.disciplines.Create(ctx.Request.Context(), &discipline); err != nil {
		log.Printf("Failed to create discipline: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, discipline)
}

func (h *DisciplineHandler) Update(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, ok := resourceID(ctx)

	if !ok {
		return
	}

	var body DisciplineRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	discipline, err := h.disciplines.Get(ctx.Request.Context(), id, userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Discipline not found"})
			return
		}
		log.Printf("Failed to fetch discipline: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	body.apply(discipline)

	if err := h.disciplines.Save(ctx.Request.Context(), discipline); err != nil {
		log.Printf("Failed to update discipline: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, discipline)
}

func (h *DisciplineHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, ok := resourceID(ctx)

	if !ok {
		return
	}

	if err := h.disciplines.Delete(ctx.Request.Context(), id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Discipline not found"})
			return
		}
		log.Printf("Failed to delete discipline: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
