package service

import (
	"context"
	"testing"
	"time"

	"questnotifier/internal/model"
	"questnotifier/internal/service/mocks"

	"github.com/stretchr/testify/mock"
)

func TestCreationHandler_OnQuestCreated(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		quest         *model.Quest
		expectNotify  bool
		expectedTitle string
	}{
		{
			name: "Unassigned quest is ignored",
			quest: &model.Quest{
				ID:        "q1",
				Title:     "Vacuum the living room",
				CreatedBy: "u1",
			},
		},
		{
			name: "Self-assigned quest is ignored",
			quest: &model.Quest{
				ID:         "q1",
				Title:      "Vacuum the living room",
				CreatedBy:  "u1",
				AssignedTo: strPtr("u1"),
			},
		},
		{
			name: "No due date uses generic copy",
			quest: &model.Quest{
				ID:         "q1",
				Title:      "Vacuum the living room",
				Category:   model.CategoryCleaning,
				CreatedBy:  "u1",
				AssignedTo: strPtr("u2"),
			},
			expectNotify:  true,
			expectedTitle: titleAssigned,
		},
		{
			name: "Due within the hour uses urgent copy",
			quest: &model.Quest{
				ID:         "q1",
				Title:      "Feed the dog",
				Category:   model.CategoryPet,
				CreatedBy:  "u1",
				AssignedTo: strPtr("u2"),
				DueDate:    timePtr(now.Add(30 * time.Minute)),
			},
			expectNotify:  true,
			expectedTitle: titleUrgent,
		},
		{
			name: "Past due date uses overdue copy",
			quest: &model.Quest{
				ID:         "q1",
				Title:      "Feed the dog",
				Category:   model.CategoryPet,
				CreatedBy:  "u1",
				AssignedTo: strPtr("u2"),
				DueDate:    timePtr(now.Add(-10 * time.Minute)),
			},
			expectNotify:  true,
			expectedTitle: titleOverdue,
		},
		{
			name: "Due later today uses generic copy",
			quest: &model.Quest{
				ID:         "q1",
				Title:      "Feed the dog",
				Category:   model.CategoryPet,
				CreatedBy:  "u1",
				AssignedTo: strPtr("u2"),
				DueDate:    timePtr(now.Add(3 * time.Hour)),
			},
			expectNotify:  true,
			expectedTitle: titleAssigned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &mocks.MockNotifier{}
			if tt.expectNotify {
				notifier.On("Notify", mock.Anything, "u2", model.NotificationQuestAssigned,
					tt.expectedTitle, tt.quest.Category.Emoji()+" "+tt.quest.Title).Return()
			}

			handler := NewCreationHandler(notifier)
			handler.OnQuestCreated(context.Background(), tt.quest)

			if !tt.expectNotify {
				notifier.AssertNotCalled(t, "Notify",
					mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
			notifier.AssertExpectations(t)
		})
	}
}

func TestCreationHandler_OnTemplateCreated(t *testing.T) {
	t.Run("Assigned template always uses generic copy", func(t *testing.T) {
		notifier := &mocks.MockNotifier{}
		notifier.On("Notify", mock.Anything, "u2", model.NotificationQuestAssigned,
			titleAssigned, "🧺 Do the laundry").Return()

		handler := NewCreationHandler(notifier)
		handler.OnTemplateCreated(context.Background(), &model.QuestTemplate{
			ID:         "t1",
			Title:      "Do the laundry",
			Category:   model.CategoryLaundry,
			CreatedBy:  "u1",
			AssignedTo: strPtr("u2"),
			StartDate:  monday,
			RepeatDays: []int{6},
		})

		notifier.AssertExpectations(t)
	})

	t.Run("Self-assigned template is ignored", func(t *testing.T) {
		notifier := &mocks.MockNotifier{}

		handler := NewCreationHandler(notifier)
		handler.OnTemplateCreated(context.Background(), &model.QuestTemplate{
			ID:         "t1",
			Title:      "Do the laundry",
			CreatedBy:  "u1",
			AssignedTo: strPtr("u1"),
		})

		notifier.AssertNotCalled(t, "Notify",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func timePtr(t time.Time) *time.Time { return &t }
