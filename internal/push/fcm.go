// Package push sends multicast FCM messages through the Firebase Admin SDK.
package push

import (
	"context"
	"fmt"

	"questnotifier/internal/service"
	"questnotifier/pkg/logger"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type Config struct {
	CredentialsFile string `json:"credentialsFile"`
}

type Client struct {
	messaging *messaging.Client
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize messaging client: %w", err)
	}

	return &Client{messaging: client}, nil
}

// Send delivers one message to every token of a single user. Per-token
// failures (stale or unregistered devices) are logged and tolerated; the send
// counts as failed only when no token was reached.
func (c *Client) Send(ctx context.Context, tokens []string, msg *service.PushMessage) error {
	badge := msg.Badge
	multicast := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Badge: &badge,
					Sound: "default",
				},
			},
		},
		Android: &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
	}

	response, err := c.messaging.SendEachForMulticast(ctx, multicast)
	if err != nil {
		return fmt.Errorf("failed to send multicast: %w", err)
	}

	if response.FailureCount > 0 {
		log := logger.Logger()
		for i, result := range response.Responses {
			if result.Error != nil {
				log.Warn("push delivery failed for token",
					zap.Int("token_index", i), zap.Error(result.Error))
			}
		}
	}

	if response.SuccessCount == 0 {
		return fmt.Errorf("all %d tokens failed", len(tokens))
	}

	return nil
}
