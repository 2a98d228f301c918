package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"questnotifier/internal/model"
	"questnotifier/pkg/logger"

	"go.uber.org/zap"
)

// deadlineLookahead is the sweep window: one hour of warning plus one minute
// of slack so an instance due at exactly +60m cannot slip between ticks.
const deadlineLookahead = 61 * time.Minute

const titleDeadline = "Quest deadline soon ⏰"

// DeadlineSweeper scans for quests and template occurrences due within the
// next hour and sends one warning per concrete due event.
type DeadlineSweeper struct {
	quests    QuestRepository
	templates TemplateRepository
	notifier  NotifierI
}

func NewDeadlineSweeper(quests QuestRepository, templates TemplateRepository, notifier NotifierI) *DeadlineSweeper {
	return &DeadlineSweeper{
		quests:    quests,
		templates: templates,
		notifier:  notifier,
	}
}

func (s *DeadlineSweeper) Sweep(ctx context.Context) {
	s.sweepAt(ctx, time.Now().UTC())
}

func (s *DeadlineSweeper) sweepAt(ctx context.Context, now time.Time) {
	log := logger.Logger()

	due, err := s.quests.ListDueBetween(ctx, now, now.Add(deadlineLookahead))
	if err != nil {
		log.Error("failed to list due quests", zap.Error(err))
		return
	}

	items := make([]dueItem, 0, len(due))
	for _, quest := range due {
		if quest.AssignedTo == nil || quest.LastNotifiedAt != nil {
			continue
		}
		items = append(items, materializedItem{quest: quest})
	}

	items = append(items, s.dueTemplateItems(ctx, due, now)...)

	// Dispatches fan out concurrently; the tick waits for all of them, and a
	// failing dispatch never cancels its siblings.
	var wg sync.WaitGroup
	for _, item := range items {
		item := item
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.notify(ctx, item, now)
		}()
	}
	wg.Wait()
}

// dueTemplateItems resolves virtual occurrences: templates firing today that
// have not materialized into any quest in the due set and whose concrete due
// instant falls inside the warning hour.
func (s *DeadlineSweeper) dueTemplateItems(ctx context.Context, due []*model.Quest, now time.Time) []dueItem {
	log := logger.Logger()

	templates, err := s.templates.ListAssigned(ctx)
	if err != nil {
		log.Error("failed to list templates", zap.Error(err))
		return nil
	}

	materialized := materializedTemplateIDs(due)

	var items []dueItem
	for _, template := range templates {
		if template.AssignedTo == nil || !FiresOn(template, now) {
			continue
		}
		if materialized[template.ID] {
			continue
		}

		dueAt := dueInstantOn(template, now)
		if dueAt == nil {
			continue
		}

		diff := dueAt.Sub(now)
		if diff <= 0 || diff > time.Hour {
			continue
		}

		items = append(items, virtualItem{template: template, dueAt: *dueAt})
	}
	return items
}

func (s *DeadlineSweeper) notify(ctx context.Context, item dueItem, now time.Time) {
	body := fmt.Sprintf("%s %s", item.category().Emoji(), item.title())
	s.notifier.Notify(ctx, item.assignee(), model.NotificationDeadline, titleDeadline, body)

	// Materialized quests get a lifetime one-shot marker. Virtual occurrences
	// carry no persisted marker, so one that stays unmaterialized through
	// several ticks inside its due hour can be pinged again.
	if m, ok := item.(materializedItem); ok {
		if err := s.quests.MarkNotified(ctx, m.quest.ID, now); err != nil {
			logger.Logger().Error("failed to mark quest notified",
				zap.String("quest_id", m.quest.ID), zap.Error(err))
		}
	}
}
