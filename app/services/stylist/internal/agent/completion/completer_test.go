package completion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatModel struct {
	reply string
	err   error
	delay time.Duration
	seen  []*schema.Message
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.seen = input
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := f.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

func TestChainCompleterPlainText(t *testing.T) {
	fake := &fakeChatModel{reply: "Try pairing the tee with dark denim."}
	c, err := NewChainCompleter(context.Background(), fake, time.Second)
	require.NoError(t, err)

	res, err := c.Complete(context.Background(), "what goes with a white tee?", "intent: product_search; found 2 products")
	require.NoError(t, err)
	assert.Equal(t, "Try pairing the tee with dark denim.", res.Text)
	assert.Empty(t, res.Suggestions)

	require.Len(t, fake.seen, 2)
	assert.Equal(t, schema.System, fake.seen[0].Role)
	assert.Contains(t, fake.seen[0].Content, "found 2 products")
	assert.Equal(t, schema.User, fake.seen[1].Role)
	assert.Equal(t, "what goes with a white tee?", fake.seen[1].Content)
}

func TestChainCompleterEmbeddedJSON(t *testing.T) {
	fake := &fakeChatModel{reply: "Sure!\n```json\n{\"response\": \"Here are two picks.\", \"suggestions\": [\"Show jeans\", \"Show jeans\", \" \"]}\n```"}
	c, err := NewChainCompleter(context.Background(), fake, time.Second)
	require.NoError(t, err)

	res, err := c.Complete(context.Background(), "jeans", "")
	require.NoError(t, err)
	assert.Equal(t, "Here are two picks.", res.Text)
	assert.Equal(t, []string{"Show jeans"}, res.Suggestions)
}

func TestChainCompleterFailure(t *testing.T) {
	c, err := NewChainCompleter(context.Background(), &fakeChatModel{err: errors.New("boom")}, time.Second)
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "hello", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCompletion)
}

func TestChainCompleterTimeout(t *testing.T) {
	c, err := NewChainCompleter(context.Background(), &fakeChatModel{reply: "late", delay: time.Second}, 20*time.Millisecond)
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "hello", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCompletion)
}

func TestChainCompleterNil(t *testing.T) {
	var c *ChainCompleter
	_, err := c.Complete(context.Background(), "hello", "")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewChainCompleter(context.Background(), nil, time.Second)
	assert.Error(t, err)
}

func TestParseReply(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantText    string
		suggestions []string
	}{
		{name: "plain", in: "  Looks great.  ", wantText: "Looks great."},
		{name: "text field", in: `{"text": "Go bold.", "suggestions": ["Red tops"]}`, wantText: "Go bold.", suggestions: []string{"Red tops"}},
		{name: "json without text", in: `Layer a denim jacket. {"suggestions": ["Jackets"]}`, wantText: "Layer a denim jacket.", suggestions: []string{"Jackets"}},
		{name: "broken json", in: `Nice pick {not json}`, wantText: `Nice pick {not json}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseReply(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, res.Text)
			assert.Equal(t, tt.suggestions, res.Suggestions)
		})
	}

	_, err := ParseReply("   ")
	assert.Error(t, err)
}
