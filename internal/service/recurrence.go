package service

import (
	"time"

	"questnotifier/internal/model"
)

// FiresOn reports whether a recurring template produces an occurrence on the
// given calendar day. All comparisons are date-only and timezone-naive: each
// instant is reduced to its own calendar date, so a template whose start date
// carries a mid-day timestamp still fires on that same calendar day.
func FiresOn(template *model.QuestTemplate, day time.Time) bool {
	for _, excluded := range template.ExcludedDates {
		if sameDay(excluded, day) {
			return false
		}
	}

	if dateOnly(day).Before(dateOnly(template.StartDate)) {
		return false
	}

	if template.RecurringEndDate != nil && dateOnly(day).After(dateOnly(*template.RecurringEndDate)) {
		return false
	}

	return template.RepeatsOn(day.Weekday())
}

// dueInstantOn combines the day's date with the time-of-day component of the
// template's recurring due time, in the day's location.
func dueInstantOn(template *model.QuestTemplate, day time.Time) *time.Time {
	if template.RecurringDueTime == nil {
		return nil
	}
	due := *template.RecurringDueTime
	instant := time.Date(day.Year(), day.Month(), day.Day(),
		due.Hour(), due.Minute(), due.Second(), 0, day.Location())
	return &instant
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
