package push

import "context"

// NoopProvider drops every message. Used when push delivery is disabled
// so the notification service can still persist inbox entries.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(ctx context.Context, token string, message *Message) error {
	return nil
}

func (p *NoopProvider) SendMulticast(ctx context.Context, tokens []string, message *Message) (*MulticastResult, error) {
	return &MulticastResult{}, nil
}
