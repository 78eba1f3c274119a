package chat

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"StylistAI/app/common/snowflake"
	"StylistAI/app/dal/product"
	"StylistAI/app/dal/session"
	"StylistAI/app/services/stylist/internal/agent/completion"
	"StylistAI/app/services/stylist/internal/agent/extract"
	"StylistAI/app/services/stylist/internal/agent/intent"
	"StylistAI/app/services/stylist/internal/agent/search"

	"github.com/zeromicro/go-zero/core/logx"
)

const (
	maxReplyProducts = search.MaxResults
	maxSuggestions   = 4
	maxFollowUps     = 3
)

// Agent routes one shopper message at a time. It keeps no conversation state
// of its own; everything lives on the session passed to Chat.
type Agent struct {
	ranker    *search.Ranker
	completer completion.Completer
	now       func() time.Time
	newRand   func() *rand.Rand
}

type Option func(*Agent)

func WithClock(now func() time.Time) Option {
	return func(a *Agent) {
		if now != nil {
			a.now = now
		}
	}
}

// WithRand injects the source used for greeting variants and suggestion order.
func WithRand(newRand func() *rand.Rand) Option {
	return func(a *Agent) {
		if newRand != nil {
			a.newRand = newRand
		}
	}
}

func NewAgent(ranker *search.Ranker, completer completion.Completer, opts ...Option) *Agent {
	a := &Agent{
		ranker:    ranker,
		completer: completer,
		now:       time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Chat records text on sess, produces the reply and records that too. It
// always returns a reply; collaborator failures become a fixed apology.
func (a *Agent) Chat(ctx context.Context, sess *session.Session, text string) *session.Message {
	now := a.now()
	if sess == nil {
		sess = session.New("", now)
	}

	userMsg := &session.Message{
		Id:        snowflake.NextString(),
		Text:      text,
		Author:    session.AuthorUser,
		Timestamp: now,
	}

	signals, update := extract.Extract(text)
	sess.Preferences = sess.Preferences.Merge(update)

	reply := a.respond(ctx, sess, text, signals)
	reply.Id = snowflake.NextString()
	reply.Author = session.AuthorSystem
	reply.Timestamp = a.now()

	sess.Append(userMsg, reply)
	return reply
}

func (a *Agent) respond(ctx context.Context, sess *session.Session, text string, signals extract.Signals) *session.Message {
	log := logx.WithContext(ctx)
	rng := a.newRand()
	kind := intent.Classify(text)
	lower := strings.ToLower(text)

	if kind == intent.IntentGreeting {
		return a.greeting(rng)
	}

	productQuery := intent.IsProductQuery(lower)

	if productQuery && isOffTopic(lower) {
		return &session.Message{
			Text:        refusalText,
			Suggestions: defaultSuggestions(),
		}
	}

	if productQuery {
		products, err := a.ranker.Rank(ctx, signals)
		if err != nil {
			log.Errorw("rank products failed",
				logx.Field("term", signals.SearchTerm),
				logx.Field("err", err.Error()))
			return fallbackReply()
		}

		res, err := a.complete(ctx, text, productHint(kind, signals, products))
		if err != nil {
			log.Errorw("product reply completion failed",
				logx.Field("intent", kind.String()),
				logx.Field("err", err.Error()))
			return fallbackReply()
		}

		return &session.Message{
			Text:        res.Text,
			Products:    capProducts(products),
			Suggestions: dynamicSuggestions(products, a.now(), rng),
			FollowUps:   followUpsFor(kind),
		}
	}

	res, err := a.complete(ctx, text, conversationHint(kind, sess.Preferences))
	if err != nil {
		log.Errorw("conversation completion failed",
			logx.Field("intent", kind.String()),
			logx.Field("err", err.Error()))
		return fallbackReply()
	}

	reply := &session.Message{
		Text:      res.Text,
		FollowUps: followUpsFor(kind),
	}
	if mentionsFashion(lower) {
		reply.Suggestions = defaultSuggestions()
	}
	return reply
}

func (a *Agent) complete(ctx context.Context, prompt, hint string) (*completion.Result, error) {
	if a.completer == nil {
		return nil, completion.ErrUnavailable
	}
	return a.completer.Complete(ctx, prompt, hint)
}

func (a *Agent) greeting(rng *rand.Rand) *session.Message {
	variant := greetingVariants[rng.IntN(len(greetingVariants))]
	return &session.Message{
		Text:        fmt.Sprintf(variant, timeOfDay(a.now())),
		Suggestions: defaultSuggestions(),
		FollowUps:   append([]string(nil), greetingFollowUps...),
	}
}

func productHint(kind intent.Intent, signals extract.Signals, products []*product.Products) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("intent: %s; found %d products", kind, len(products)))
	if signals.SearchTerm != "" {
		sb.WriteString(fmt.Sprintf(" for %q", signals.SearchTerm))
	}
	if signals.MaxPrice != nil {
		sb.WriteString(fmt.Sprintf(" under ₹%.0f", *signals.MaxPrice))
	}
	if len(products) == 0 {
		sb.WriteString(". Apologise briefly and suggest how to broaden the search.")
		return sb.String()
	}
	sb.WriteString(". Top picks: ")
	for i, p := range capProducts(products) {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(fmt.Sprintf("%s (₹%.0f)", p.Title, p.Price))
	}
	return sb.String()
}

func conversationHint(kind intent.Intent, prefs session.Preferences) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful fashion consultant chatting with a shopper. intent: ")
	sb.WriteString(kind.String())
	if prefs.Size != "" {
		sb.WriteString("; size: " + prefs.Size)
	}
	if prefs.Style != "" {
		sb.WriteString("; style: " + prefs.Style)
	}
	if prefs.Budget != nil {
		sb.WriteString(fmt.Sprintf("; budget: ₹%.0f", *prefs.Budget))
	}
	if len(prefs.Colors) > 0 {
		sb.WriteString("; colours: " + strings.Join(prefs.Colors, ", "))
	}
	if len(prefs.Occasions) > 0 {
		sb.WriteString("; occasions: " + strings.Join(prefs.Occasions, ", "))
	}
	return sb.String()
}

func timeOfDay(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func capProducts(items []*product.Products) []*product.Products {
	if len(items) > maxReplyProducts {
		return items[:maxReplyProducts]
	}
	return items
}

func fallbackReply() *session.Message {
	return &session.Message{Text: fallbackText}
}
