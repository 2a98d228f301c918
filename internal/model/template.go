package model

import "time"

// QuestTemplate is a recurring-task definition. A template is never notifiable
// by itself; it has to be evaluated against a concrete calendar date first.
type QuestTemplate struct {
	ID               string
	Title            string
	Category         Category
	CreatedBy        string
	AssignedTo       *string
	StartDate        time.Time
	RecurringEndDate *time.Time
	ExcludedDates    []time.Time
	// RepeatDays holds weekday indices, 0=Sunday through 6=Saturday.
	RepeatDays []int
	// RecurringDueTime carries a relevant time-of-day only; its date part is
	// whatever the client happened to store.
	RecurringDueTime *time.Time
	CreatedAt        time.Time
}

// RepeatsOn reports membership of a weekday index in RepeatDays.
func (t *QuestTemplate) RepeatsOn(weekday time.Weekday) bool {
	for _, d := range t.RepeatDays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}
