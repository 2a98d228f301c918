package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"questnotifier/internal/model"
	"questnotifier/pkg/logger"
	"questnotifier/pkg/timezone"

	"go.uber.org/zap"
)

const titleDailySummary = "Today's quests 📋"

// DailyDigest sends each opted-in user one "quests due today" push at their
// local morning hour, even though the job itself runs on a fixed UTC cadence.
type DailyDigest struct {
	users     UserRepository
	quests    QuestRepository
	templates TemplateRepository
	notifier  NotifierI
	localHour int
}

func NewDailyDigest(users UserRepository, quests QuestRepository, templates TemplateRepository, notifier NotifierI, localHour int) *DailyDigest {
	return &DailyDigest{
		users:     users,
		quests:    quests,
		templates: templates,
		notifier:  notifier,
		localHour: localHour,
	}
}

func (d *DailyDigest) Run(ctx context.Context) {
	d.runAt(ctx, time.Now().UTC())
}

func (d *DailyDigest) runAt(ctx context.Context, now time.Time) {
	log := logger.Logger()

	// Wall-clock hour equality is DST-naive: a fall-back transition can match
	// a zone twice in one day and a spring-forward can skip it.
	zones := timezone.ZonesAtHour(now, d.localHour)
	if len(zones) == 0 {
		return
	}

	users, err := d.users.ListDailySummaryUsers(ctx, zones)
	if err != nil {
		log.Error("failed to list daily summary users", zap.Error(err))
		return
	}

	// One user's failure never aborts the rest of the same-local-hour batch.
	var wg sync.WaitGroup
	for _, user := range users {
		user := user
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := d.summarize(ctx, user, now); err != nil {
				log.Error("failed to build daily summary",
					zap.String("user_id", user.ID), zap.Error(err))
			}
		}()
	}
	wg.Wait()
}

func (d *DailyDigest) summarize(ctx context.Context, user *model.User, now time.Time) error {
	dayStart, dayEnd, err := timezone.LocalDayRange(now, user.TimeZone)
	if err != nil {
		return fmt.Errorf("failed to resolve local day in %q: %w", user.TimeZone, err)
	}

	quests, err := d.quests.ListAssignedDueBetween(ctx, user.ID, dayStart, dayEnd)
	if err != nil {
		return err
	}

	items := make([]dueItem, 0, len(quests))
	for _, quest := range quests {
		items = append(items, materializedItem{quest: quest})
	}

	templates, err := d.templates.ListAssignedTo(ctx, user.ID)
	if err != nil {
		return err
	}

	materialized := materializedTemplateIDs(quests)
	today := now.In(dayStart.Location())
	for _, template := range templates {
		if !FiresOn(template, today) || materialized[template.ID] {
			continue
		}
		items = append(items, virtualItem{template: template, dueAt: dayStart})
	}

	if len(items) == 0 {
		return nil
	}

	body := fmt.Sprintf("You have %d quests to finish today 💪", len(items))
	d.notifier.Notify(ctx, user.ID, model.NotificationDailySummary, titleDailySummary, body)
	return nil
}
