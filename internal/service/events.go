package service

import (
	"context"
	"fmt"
	"time"

	"questnotifier/internal/model"
)

const (
	titleAssigned = "New quest assigned ✨"
	titleUrgent   = "Due within the hour! 🔥"
	titleOverdue  = "Deadline already passed ⚠️"
)

// CreationHandler reacts to freshly created quest and template documents.
type CreationHandler struct {
	notifier NotifierI
}

func NewCreationHandler(notifier NotifierI) *CreationHandler {
	return &CreationHandler{notifier: notifier}
}

// OnQuestCreated notifies the assignee of a new quest. Self-assigned quests
// are skipped: the creator already knows.
func (h *CreationHandler) OnQuestCreated(ctx context.Context, quest *model.Quest) {
	if quest.AssignedTo == nil || *quest.AssignedTo == quest.CreatedBy {
		return
	}

	title := titleAssigned
	if quest.DueDate != nil {
		diff := time.Until(*quest.DueDate)
		switch {
		case diff <= 0:
			title = titleOverdue
		case diff <= time.Hour:
			title = titleUrgent
		}
	}

	body := fmt.Sprintf("%s %s", quest.Category.Emoji(), quest.Title)
	h.notifier.Notify(ctx, *quest.AssignedTo, model.NotificationQuestAssigned, title, body)
}

// OnTemplateCreated notifies the assignee of a new recurring quest. A fresh
// template has no concrete due instant yet, so the copy is always generic.
func (h *CreationHandler) OnTemplateCreated(ctx context.Context, template *model.QuestTemplate) {
	if template.AssignedTo == nil || *template.AssignedTo == template.CreatedBy {
		return
	}

	body := fmt.Sprintf("%s %s", template.Category.Emoji(), template.Title)
	h.notifier.Notify(ctx, *template.AssignedTo, model.NotificationQuestAssigned, titleAssigned, body)
}
