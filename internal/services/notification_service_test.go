package services

import (
	"context"
	"fmt"
	"testing"

	"nearmarket/internal/models"
	"nearmarket/pkg/push"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type notificationRepoFake struct {
	created []*models.Notification
	fail    bool
}

func (f *notificationRepoFake) Create(ctx context.Context, n *models.Notification) error {
	if f.fail {
		return fmt.Errorf("write failed")
	}
	f.created = append(f.created, n)
	return nil
}
func (f *notificationRepoFake) ListByUser(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]*models.Notification, int64, error) {
	return f.created, int64(len(f.created)), nil
}
func (f *notificationRepoFake) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

type userRepoFake struct {
	tokens map[primitive.ObjectID][]string
}

func (f *userRepoFake) Create(ctx context.Context, u *models.User) error { return nil }
func (f *userRepoFake) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return nil, fmt.Errorf("user not found")
}
func (f *userRepoFake) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}
func (f *userRepoFake) AddDeviceToken(ctx context.Context, id primitive.ObjectID, token string) error {
	return nil
}
func (f *userRepoFake) GetDeviceTokens(ctx context.Context, ids []primitive.ObjectID) ([]string, error) {
	var out []string
	for _, id := range ids {
		out = append(out, f.tokens[id]...)
	}
	return out, nil
}

type pushProviderFake struct {
	batches [][]string
}

func (f *pushProviderFake) Send(ctx context.Context, token string, msg *push.Message) error {
	return nil
}
func (f *pushProviderFake) SendMulticast(ctx context.Context, tokens []string, msg *push.Message) (*push.MulticastResult, error) {
	f.batches = append(f.batches, tokens)
	return &push.MulticastResult{SuccessCount: len(tokens)}, nil
}

func TestNotifyPersistsAndPushes(t *testing.T) {
	userID := primitive.NewObjectID()
	repo := &notificationRepoFake{}
	users := &userRepoFake{tokens: map[primitive.ObjectID][]string{userID: {"tok-1", "tok-2"}}}
	provider := &pushProviderFake{}

	svc := NewNotificationService(repo, users, provider, newTestLogger(t))
	svc.Notify(context.Background(), userID, models.NotificationAdApproved, "Approved", "Your ad is live", map[string]string{"ad_id": "abc"})

	require.Len(t, repo.created, 1)
	assert.Equal(t, models.NotificationAdApproved, repo.created[0].Type)
	require.Len(t, provider.batches, 1)
	assert.Equal(t, []string{"tok-1", "tok-2"}, provider.batches[0])
}

func TestNotifyWithoutTokensSkipsPush(t *testing.T) {
	userID := primitive.NewObjectID()
	repo := &notificationRepoFake{}
	users := &userRepoFake{tokens: map[primitive.ObjectID][]string{}}
	provider := &pushProviderFake{}

	svc := NewNotificationService(repo, users, provider, newTestLogger(t))
	svc.Notify(context.Background(), userID, models.NotificationGeneral, "Hello", "", nil)

	require.Len(t, repo.created, 1)
	assert.Empty(t, provider.batches)
}

func TestNotifySurvivesPersistFailure(t *testing.T) {
	userID := primitive.NewObjectID()
	repo := &notificationRepoFake{fail: true}
	users := &userRepoFake{tokens: map[primitive.ObjectID][]string{userID: {"tok-1"}}}
	provider := &pushProviderFake{}

	svc := NewNotificationService(repo, users, provider, newTestLogger(t))
	// Must not panic or error; push still goes out.
	svc.Notify(context.Background(), userID, models.NotificationGeneral, "Hello", "", nil)

	assert.Len(t, provider.batches, 1)
}

func TestChunkTokens(t *testing.T) {
	tokens := make([]string, 1201)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("tok-%d", i)
	}

	chunks := chunkTokens(tokens, 500)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 500)
	assert.Len(t, chunks[2], 201)

	single := chunkTokens([]string{"a"}, 500)
	require.Len(t, single, 1)
	assert.Equal(t, []string{"a"}, single[0])
}
