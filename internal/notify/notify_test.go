package notify

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subtrack/internal/services"
	"subtrack/internal/types"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(_ context.Context, text string) error {
	r.messages = append(r.messages, text)
	return nil
}

func TestTelegramNotifier(t *testing.T) {
	api := &fakeSender{}
	n := &TelegramNotifier{api: api, chatID: 42}

	require.NoError(t, n.Notify(context.Background(), "hello"))
	require.Len(t, api.sent, 1)
	assert.Equal(t, int64(42), api.sent[0].ChatID)
	assert.Equal(t, "hello", api.sent[0].Text)

	api.err = errors.New("bad gateway")
	assert.ErrorContains(t, n.Notify(context.Background(), "again"), "bad gateway")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.Notify(ctx, "late"), context.Canceled)
}

func TestGenerationReporter(t *testing.T) {
	asOf := types.NewDate(2024, 1, 15)

	tests := []struct {
		name   string
		result *services.GenerateResult
		want   []string
	}{
		{
			name:   "quiet run",
			result: &services.GenerateResult{AsOf: asOf, Skipped: 3},
		},
		{
			name:   "nil result",
			result: nil,
		},
		{
			name:   "created",
			result: &services.GenerateResult{AsOf: asOf, Created: 2, Skipped: 1},
			want:   []string{"Subscription charges for 2024-01-15\nCreated: 2\nSkipped: 1"},
		},
		{
			name: "errors",
			result: &services.GenerateResult{AsOf: asOf, Errors: []services.GenerateError{
				{SubscriptionID: "sub-1", Message: "disk full"},
			}},
			want: []string{"Subscription charges for 2024-01-15\nCreated: 0\nSkipped: 0\nErrors: 1\n- sub-1: disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &recordingNotifier{}
			NewGenerationReporter(n).ObserveGeneration(context.Background(), tt.result)
			assert.Equal(t, tt.want, n.messages)
		})
	}
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Notify(context.Background(), "ignored"))
}
