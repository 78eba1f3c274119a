package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

const defaultTimeout = 8 * time.Second

var (
	ErrCompletion  = errors.New("text completion failed")
	ErrUnavailable = errors.New("text completion unavailable")
)

type Result struct {
	Text        string   `json:"text"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Completer produces free text for a prompt. Implementations may be slow or
// fail; callers own the fallback.
type Completer interface {
	Complete(ctx context.Context, prompt, contextHint string) (*Result, error)
}

type request struct {
	Prompt string
	Hint   string
}

const systemPrompt = `You are a friendly fashion stylist for an online clothing store.
Keep answers short (at most 4 sentences), warm and practical, and never invent products that were not mentioned in the context.
When useful, end your answer with a JSON object of the form {"response": "<your answer>", "suggestions": ["<short follow-up chip>", ...]}.`

// ChainCompleter runs prompt assembly, the chat model and reply parsing as one
// eino chain.
type ChainCompleter struct {
	runnable compose.Runnable[request, *Result]
	timeout  time.Duration
}

func NewChainCompleter(ctx context.Context, chatModel model.BaseChatModel, timeout time.Duration) (*ChainCompleter, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	chain := compose.NewChain[request, *Result]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, in request) ([]*schema.Message, error) {
		var system strings.Builder
		system.WriteString(systemPrompt)
		if hint := strings.TrimSpace(in.Hint); hint != "" {
			system.WriteString("\nContext: ")
			system.WriteString(hint)
		}
		return []*schema.Message{
			schema.SystemMessage(system.String()),
			schema.UserMessage(in.Prompt),
		}, nil
	}))

	chain.AppendChatModel(chatModel)

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (*Result, error) {
		if msg == nil {
			return nil, fmt.Errorf("empty message")
		}
		return ParseReply(msg.Content)
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}

	return &ChainCompleter{
		runnable: runnable,
		timeout:  timeout,
	}, nil
}

// Complete bounds the call by the configured timeout; expiry is reported like
// any other failure.
func (c *ChainCompleter) Complete(ctx context.Context, prompt, contextHint string) (*Result, error) {
	if c == nil || c.runnable == nil {
		return nil, ErrUnavailable
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.runnable.Invoke(callCtx, request{Prompt: prompt, Hint: contextHint})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompletion, err)
	}
	if res == nil {
		return nil, fmt.Errorf("%w: empty result", ErrCompletion)
	}
	return res, nil
}

type replyPayload struct {
	Response    string   `json:"response"`
	Text        string   `json:"text"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// ParseReply pulls an optional JSON object out of free text. A reply without
// usable JSON is returned as plain text.
func ParseReply(content string) (*Result, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("empty response")
	}

	start, end, ok := jsonBlock(content)
	if !ok {
		return &Result{Text: content}, nil
	}

	var payload replyPayload
	if err := json.Unmarshal([]byte(content[start:end+1]), &payload); err != nil {
		return &Result{Text: content}, nil
	}

	text := firstNonEmpty(payload.Response, payload.Text, payload.Message)
	if text == "" {
		text = strings.TrimSpace(content[:start] + content[end+1:])
		text = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(text, "```json"), "```"))
	}
	if text == "" {
		text = content
	}

	return &Result{
		Text:        text,
		Suggestions: cleanSuggestions(payload.Suggestions),
	}, nil
}

func jsonBlock(content string) (int, int, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start > end {
		return 0, 0, false
	}
	return start, end, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func cleanSuggestions(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
