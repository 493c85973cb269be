package push

import "context"

// PushProvider delivers app notifications to device tokens. Callers are
// responsible for keeping a multicast batch within the provider's limit.
type PushProvider interface {
	Send(ctx context.Context, token string, message *Message) error
	SendMulticast(ctx context.Context, tokens []string, message *Message) (*MulticastResult, error)
}

type Message struct {
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
	ImageURL string            `json:"image_url,omitempty"`
}

type MulticastResult struct {
	SuccessCount int      `json:"success_count"`
	FailureCount int      `json:"failure_count"`
	FailedTokens []string `json:"failed_tokens,omitempty"`
}
