package service

import (
	"time"

	"questnotifier/internal/model"
)

// dueItem is one notifiable unit of work: either a materialized quest or a
// virtual occurrence a template produces for a specific day. The sweeper and
// the digest treat both uniformly when counting and composing copy.
type dueItem interface {
	assignee() string
	title() string
	category() model.Category
}

type materializedItem struct {
	quest *model.Quest
}

func (m materializedItem) assignee() string         { return *m.quest.AssignedTo }
func (m materializedItem) title() string            { return m.quest.Title }
func (m materializedItem) category() model.Category { return m.quest.Category }

type virtualItem struct {
	template *model.QuestTemplate
	dueAt    time.Time
}

func (v virtualItem) assignee() string         { return *v.template.AssignedTo }
func (v virtualItem) title() string            { return v.template.Title }
func (v virtualItem) category() model.Category { return v.template.Category }

// materializedTemplateIDs indexes which templates already have a concrete
// quest in the given set, keyed by template id.
func materializedTemplateIDs(quests []*model.Quest) map[string]bool {
	ids := make(map[string]bool, len(quests))
	for _, q := range quests {
		if q.TemplateID != nil {
			ids[*q.TemplateID] = true
		}
	}
	return ids
}
