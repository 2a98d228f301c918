package mocks

import (
	"context"
	"time"

	"questnotifier/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateBadgeCount(ctx context.Context, id string, badge int) error {
	args := m.Called(ctx, id, badge)
	return args.Error(0)
}

func (m *MockUserRepository) ListDailySummaryUsers(ctx context.Context, zones []string) ([]*model.User, error) {
	args := m.Called(ctx, zones)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

type MockQuestRepository struct {
	mock.Mock
}

func (m *MockQuestRepository) CreateQuest(ctx context.Context, quest *model.Quest) error {
	args := m.Called(ctx, quest)
	return args.Error(0)
}

func (m *MockQuestRepository) ListDueBetween(ctx context.Context, from, to time.Time) ([]*model.Quest, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Quest), args.Error(1)
}

func (m *MockQuestRepository) ListAssignedDueBetween(ctx context.Context, userID string, from, to time.Time) ([]*model.Quest, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Quest), args.Error(1)
}

func (m *MockQuestRepository) MarkNotified(ctx context.Context, questID string, at time.Time) error {
	args := m.Called(ctx, questID, at)
	return args.Error(0)
}

type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) CreateTemplate(ctx context.Context, template *model.QuestTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockTemplateRepository) ListAssigned(ctx context.Context) ([]*model.QuestTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.QuestTemplate), args.Error(1)
}

func (m *MockTemplateRepository) ListAssignedTo(ctx context.Context, userID string) ([]*model.QuestTemplate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.QuestTemplate), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userID string, t model.NotificationType, title, body string) {
	m.Called(ctx, userID, t, title, body)
}

type MockCreationHandler struct {
	mock.Mock
}

func (m *MockCreationHandler) OnQuestCreated(ctx context.Context, quest *model.Quest) {
	m.Called(ctx, quest)
}

func (m *MockCreationHandler) OnTemplateCreated(ctx context.Context, template *model.QuestTemplate) {
	m.Called(ctx, template)
}
