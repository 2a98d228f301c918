package api

import (
	"context"
	"net/http"
	"time"

	"questnotifier/internal/model"
	"questnotifier/internal/service"
	"questnotifier/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreationHandlerI is the reactor invoked once per created document.
type CreationHandlerI interface {
	OnQuestCreated(ctx context.Context, quest *model.Quest)
	OnTemplateCreated(ctx context.Context, template *model.QuestTemplate)
}

type eventRoutes struct {
	quests    service.QuestRepository
	templates service.TemplateRepository
	handler   CreationHandlerI
}

// NewEventRoutes mounts the document-creation webhooks the client calls after
// creating a quest or template.
func NewEventRoutes(handler *gin.RouterGroup, quests service.QuestRepository, templates service.TemplateRepository, creation CreationHandlerI) {
	r := &eventRoutes{quests: quests, templates: templates, handler: creation}
	h := handler.Group("/events")
	{
		h.POST("/quests", r.QuestCreated)
		h.POST("/templates", r.TemplateCreated)
	}
}

type QuestCreatedRequest struct {
	ID         string     `json:"id"`
	Title      string     `json:"title" binding:"required"`
	Category   string     `json:"category"`
	CreatedBy  string     `json:"created_by" binding:"required"`
	AssignedTo *string    `json:"assigned_to"`
	Status     string     `json:"status"`
	DueDate    *time.Time `json:"due_date"`
	TemplateID *string    `json:"template_id"`
}

func (r *eventRoutes) QuestCreated(c *gin.Context) {
	log := logger.Logger()

	var req QuestCreatedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind quest event", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Status == "" {
		req.Status = string(model.StatusPending)
	}

	quest := &model.Quest{
		ID:         req.ID,
		Title:      req.Title,
		Category:   model.Category(req.Category),
		CreatedBy:  req.CreatedBy,
		AssignedTo: req.AssignedTo,
		Status:     model.QuestStatus(req.Status),
		DueDate:    req.DueDate,
		TemplateID: req.TemplateID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := r.quests.CreateQuest(c.Request.Context(), quest); err != nil {
		log.Error("failed to persist quest", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create quest"})
		return
	}

	// The notification path never fails the event response: the document is
	// stored, delivery of its push is best-effort.
	r.handler.OnQuestCreated(c.Request.Context(), quest)

	c.JSON(http.StatusCreated, gin.H{"id": quest.ID})
}

type TemplateCreatedRequest struct {
	ID               string      `json:"id"`
	Title            string      `json:"title" binding:"required"`
	Category         string      `json:"category"`
	CreatedBy        string      `json:"created_by" binding:"required"`
	AssignedTo       *string     `json:"assigned_to"`
	StartDate        time.Time   `json:"start_date" binding:"required"`
	RecurringEndDate *time.Time  `json:"recurring_end_date"`
	ExcludedDates    []time.Time `json:"excluded_dates"`
	RepeatDays       []int       `json:"repeat_days"`
	RecurringDueTime *time.Time  `json:"recurring_due_time"`
}

func (r *eventRoutes) TemplateCreated(c *gin.Context) {
	log := logger.Logger()

	var req TemplateCreatedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind template event", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	for _, day := range req.RepeatDays {
		if day < 0 || day > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "repeat days must be 0 (Sunday) through 6 (Saturday)"})
			return
		}
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	template := &model.QuestTemplate{
		ID:               req.ID,
		Title:            req.Title,
		Category:         model.Category(req.Category),
		CreatedBy:        req.CreatedBy,
		AssignedTo:       req.AssignedTo,
		StartDate:        req.StartDate,
		RecurringEndDate: req.RecurringEndDate,
		ExcludedDates:    req.ExcludedDates,
		RepeatDays:       req.RepeatDays,
		RecurringDueTime: req.RecurringDueTime,
		CreatedAt:        time.Now().UTC(),
	}

	if err := r.templates.CreateTemplate(c.Request.Context(), template); err != nil {
		log.Error("failed to persist template", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create template"})
		return
	}

	r.handler.OnTemplateCreated(c.Request.Context(), template)

	c.JSON(http.StatusCreated, gin.H{"id": template.ID})
}
