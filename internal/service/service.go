package service

import (
	"context"
	"time"

	"questnotifier/internal/model"
)

// Service aggregates the notification engine's components behind one value.
type Service struct {
	*Dispatcher
	*CreationHandler
	*DeadlineSweeper
	*DailyDigest
}

func NewService(dispatcher *Dispatcher, creation *CreationHandler, sweeper *DeadlineSweeper, digest *DailyDigest) *Service {
	return &Service{
		Dispatcher:      dispatcher,
		CreationHandler: creation,
		DeadlineSweeper: sweeper,
		DailyDigest:     digest,
	}
}

type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	UpdateBadgeCount(ctx context.Context, id string, badge int) error
	ListDailySummaryUsers(ctx context.Context, zones []string) ([]*model.User, error)
}

type QuestRepository interface {
	CreateQuest(ctx context.Context, quest *model.Quest) error
	ListDueBetween(ctx context.Context, from, to time.Time) ([]*model.Quest, error)
	ListAssignedDueBetween(ctx context.Context, userID string, from, to time.Time) ([]*model.Quest, error)
	MarkNotified(ctx context.Context, questID string, at time.Time) error
}

type TemplateRepository interface {
	CreateTemplate(ctx context.Context, template *model.QuestTemplate) error
	ListAssigned(ctx context.Context) ([]*model.QuestTemplate, error)
	ListAssignedTo(ctx context.Context, userID string) ([]*model.QuestTemplate, error)
}

// PushMessage is one notification payload destined for a user's device set.
type PushMessage struct {
	Title string
	Body  string
	Badge int
}

// Pusher performs a multicast push send to a token list.
type Pusher interface {
	Send(ctx context.Context, tokens []string, msg *PushMessage) error
}

type NotifierI interface {
	Notify(ctx context.Context, userID string, t model.NotificationType, title, body string)
}
