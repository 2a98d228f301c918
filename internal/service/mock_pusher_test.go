package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPusher struct {
	mock.Mock
}

func (m *MockPusher) Send(ctx context.Context, tokens []string, msg *PushMessage) error {
	args := m.Called(ctx, tokens, msg)
	return args.Error(0)
}
