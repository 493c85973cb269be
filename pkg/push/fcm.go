package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type FCMProvider struct {
	client *messaging.Client
}

func NewFCMProvider(credentialsFile string) (*FCMProvider, error) {
	ctx := context.Background()

	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &FCMProvider{
		client: client,
	}, nil
}

func (f *FCMProvider) Send(ctx context.Context, token string, message *Message) error {
	_, err := f.client.Send(ctx, &messaging.Message{
		Token:        token,
		Data:         message.Data,
		Notification: buildNotification(message),
	})
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

func (f *FCMProvider) SendMulticast(ctx context.Context, tokens []string, message *Message) (*MulticastResult, error) {
	if len(tokens) == 0 {
		return &MulticastResult{}, nil
	}

	batch, err := f.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Data:         message.Data,
		Notification: buildNotification(message),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast: %w", err)
	}

	result := &MulticastResult{
		SuccessCount: batch.SuccessCount,
		FailureCount: batch.FailureCount,
	}
	for i, resp := range batch.Responses {
		if !resp.Success {
			result.FailedTokens = append(result.FailedTokens, tokens[i])
		}
	}
	return result, nil
}

func buildNotification(message *Message) *messaging.Notification {
	if message.Title == "" && message.Body == "" {
		return nil
	}
	return &messaging.Notification{
		Title:    message.Title,
		Body:     message.Body,
		ImageURL: message.ImageURL,
	}
}
