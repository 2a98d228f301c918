package model

import "time"

type QuestStatus string

const (
	StatusPending    QuestStatus = "pending"
	StatusInProgress QuestStatus = "inProgress"
	StatusCompleted  QuestStatus = "completed"
	StatusApproved   QuestStatus = "approved"
	StatusRejected   QuestStatus = "rejected"
)

// Done reports whether the quest no longer needs any reminder.
func (s QuestStatus) Done() bool {
	return s == StatusCompleted || s == StatusApproved
}

type Category string

const (
	CategoryCleaning Category = "cleaning"
	CategoryLaundry  Category = "laundry"
	CategoryDishes   Category = "dishes"
	CategoryCooking  Category = "cooking"
	CategoryShopping Category = "shopping"
	CategoryTrash    Category = "trash"
	CategoryPet      Category = "pet"
	CategoryStudy    Category = "study"
	CategoryErrand   Category = "errand"
)

var categoryEmojis = map[Category]string{
	CategoryCleaning: "🧹",
	CategoryLaundry:  "🧺",
	CategoryDishes:   "🍽️",
	CategoryCooking:  "🍳",
	CategoryShopping: "🛒",
	CategoryTrash:    "🗑️",
	CategoryPet:      "🐶",
	CategoryStudy:    "📚",
	CategoryErrand:   "📦",
}

const defaultCategoryEmoji = "📌"

func (c Category) Emoji() string {
	if e, ok := categoryEmojis[c]; ok {
		return e
	}
	return defaultCategoryEmoji
}

// Quest is a materialized task instance. Created by the client; this service
// only ever mutates LastNotifiedAt.
type Quest struct {
	ID             string
	Title          string
	Category       Category
	CreatedBy      string
	AssignedTo     *string
	Status         QuestStatus
	DueDate        *time.Time
	TemplateID     *string
	LastNotifiedAt *time.Time
	CreatedAt      time.Time
}
