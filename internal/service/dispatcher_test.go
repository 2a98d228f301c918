package service

import (
	"context"
	"testing"

	"questnotifier/internal/model"
	"questnotifier/internal/repository"
	"questnotifier/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func TestDispatcher_Notify(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(users *mocks.MockUserRepository, pusher *MockPusher)
		checkCalls func(t *testing.T, users *mocks.MockUserRepository, pusher *MockPusher)
	}{
		{
			name: "User not found is a no-op",
			setupMocks: func(users *mocks.MockUserRepository, pusher *MockPusher) {
				users.On("GetUserByID", mock.Anything, "u1").
					Return(nil, repository.ErrNotFound)
			},
			checkCalls: func(t *testing.T, users *mocks.MockUserRepository, pusher *MockPusher) {
				pusher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "Explicit opt-out suppresses the send",
			setupMocks: func(users *mocks.MockUserRepository, pusher *MockPusher) {
				users.On("GetUserByID", mock.Anything, "u1").
					Return(&model.User{
						ID:                  "u1",
						FCMTokens:           []string{"tok1"},
						NotificationSetting: map[string]bool{"deadline": false},
					}, nil)
			},
			checkCalls: func(t *testing.T, users *mocks.MockUserRepository, pusher *MockPusher) {
				pusher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "Missing setting key defaults to enabled",
			setupMocks: func(users *mocks.MockUserRepository, pusher *MockPusher) {
				users.On("GetUserByID", mock.Anything, "u1").
					Return(&model.User{
						ID:                  "u1",
						FCMTokens:           []string{"tok1"},
						NotificationSetting: map[string]bool{"dailySummary": false},
						BadgeCount:          4,
					}, nil)
				pusher.On("Send", mock.Anything, []string{"tok1"}, mock.MatchedBy(func(msg *PushMessage) bool {
					return msg.Badge == 5
				})).Return(nil)
				users.On("UpdateBadgeCount", mock.Anything, "u1", 5).Return(nil)
			},
			checkCalls: func(t *testing.T, users *mocks.MockUserRepository, pusher *MockPusher) {
				pusher.AssertNumberOfCalls(t, "Send", 1)
			},
		},
		{
			name: "Empty token set never sends nor touches the badge",
			setupMocks: func(users *mocks.MockUserRepository, pusher *MockPusher) {
				users.On("GetUserByID", mock.Anything, "u1").
					Return(&model.User{ID: "u1", BadgeCount: 3}, nil)
			},
			checkCalls: func(t *testing.T, users *mocks.MockUserRepository, pusher *MockPusher) {
				pusher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
				users.AssertNotCalled(t, "UpdateBadgeCount", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "Legacy single token is wrapped into a set",
			setupMocks: func(users *mocks.MockUserRepository, pusher *MockPusher) {
				users.On("GetUserByID", mock.Anything, "u1").
					Return(&model.User{ID: "u1", FCMToken: strPtr("legacy")}, nil)
				pusher.On("Send", mock.Anything, []string{"legacy"}, mock.Anything).Return(nil)
				users.On("UpdateBadgeCount", mock.Anything, "u1", 1).Return(nil)
			},
			checkCalls: func(t *testing.T, users *mocks.MockUserRepository, pusher *MockPusher) {
				pusher.AssertNumberOfCalls(t, "Send", 1)
			},
		},
		{
			name: "Failed send leaves the stored badge untouched",
			setupMocks: func(users *mocks.MockUserRepository, pusher *MockPusher) {
				users.On("GetUserByID", mock.Anything, "u1").
					Return(&model.User{ID: "u1", FCMTokens: []string{"tok1"}, BadgeCount: 7}, nil)
				pusher.On("Send", mock.Anything, []string{"tok1"}, mock.Anything).
					Return(assert.AnError)
			},
			checkCalls: func(t *testing.T, users *mocks.MockUserRepository, pusher *MockPusher) {
				users.AssertNotCalled(t, "UpdateBadgeCount", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "Successful send persists the incremented badge",
			setupMocks: func(users *mocks.MockUserRepository, pusher *MockPusher) {
				users.On("GetUserByID", mock.Anything, "u1").
					Return(&model.User{ID: "u1", FCMTokens: []string{"a", "b"}, BadgeCount: 2}, nil)
				pusher.On("Send", mock.Anything, []string{"a", "b"}, mock.MatchedBy(func(msg *PushMessage) bool {
					return msg.Title == "title" && msg.Body == "body" && msg.Badge == 3
				})).Return(nil)
				users.On("UpdateBadgeCount", mock.Anything, "u1", 3).Return(nil)
			},
			checkCalls: func(t *testing.T, users *mocks.MockUserRepository, pusher *MockPusher) {
				users.AssertCalled(t, "UpdateBadgeCount", mock.Anything, "u1", 3)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mocks.MockUserRepository{}
			pusher := &MockPusher{}
			tt.setupMocks(users, pusher)

			dispatcher := NewDispatcher(users, pusher)
			dispatcher.Notify(context.Background(), "u1", model.NotificationDeadline, "title", "body")

			tt.checkCalls(t, users, pusher)
			users.AssertExpectations(t)
			pusher.AssertExpectations(t)
		})
	}
}
