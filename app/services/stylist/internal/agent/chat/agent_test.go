package chat

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"StylistAI/app/dal/product"
	"StylistAI/app/dal/session"
	"StylistAI/app/services/stylist/internal/agent/completion"
	"StylistAI/app/services/stylist/internal/agent/intent"
	"StylistAI/app/services/stylist/internal/agent/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	text  string
	err   error
	calls []string
	hints []string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt, hint string) (*completion.Result, error) {
	f.calls = append(f.calls, prompt)
	f.hints = append(f.hints, hint)
	if f.err != nil {
		return nil, f.err
	}
	return &completion.Result{Text: f.text}, nil
}

type countingCatalog struct {
	*product.MemoryCatalogModel
	calls int
	err   error
}

func (c *countingCatalog) SearchCtx(ctx context.Context, term string) ([]*product.Products, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.MemoryCatalogModel.SearchCtx(ctx, term)
}

func (c *countingCatalog) FetchBatchCtx(ctx context.Context, limit, offset int) ([]*product.Products, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.MemoryCatalogModel.FetchBatchCtx(ctx, limit, offset)
}

func fixedClock(hour int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(2024, month, 10, hour, 30, 0, 0, time.UTC)
	}
}

func seeded() func() *rand.Rand {
	return func() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }
}

func tshirtCatalog() *countingCatalog {
	items := make([]*product.Products, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, &product.Products{
			Id:       fmt.Sprintf("p%02d", i),
			Title:    fmt.Sprintf("Casual Cotton T-Shirt %d", i),
			Category: "t-shirts",
			Price:    float64(400 + i*150),
			Rating:   4,
		})
	}
	return &countingCatalog{MemoryCatalogModel: product.NewMemoryCatalogModel(items...)}
}

func newTestAgent(catalog product.CatalogModel, completer completion.Completer, hour int) *Agent {
	return NewAgent(search.NewRanker(catalog), completer,
		WithClock(fixedClock(hour, time.July)),
		WithRand(seeded()))
}

func TestChatGreeting(t *testing.T) {
	catalog := tshirtCatalog()
	completer := &fakeCompleter{text: "unused"}
	a := newTestAgent(catalog, completer, 9)
	sess := session.New("s1", time.Now())

	reply := a.Chat(context.Background(), sess, "hi")

	assert.True(t, strings.HasPrefix(reply.Text, "Good morning!"))
	matched := false
	for _, v := range greetingVariants {
		if reply.Text == fmt.Sprintf(v, "Good morning") {
			matched = true
		}
	}
	assert.True(t, matched, reply.Text)
	assert.Equal(t, baseSuggestions, reply.Suggestions)
	assert.Equal(t, greetingFollowUps, reply.FollowUps)
	assert.Empty(t, reply.Products)
	assert.Empty(t, completer.calls)
	assert.Zero(t, catalog.calls)

	require.Len(t, sess.Messages, 2)
	assert.True(t, sess.Messages[0].IsUser())
	assert.Equal(t, "hi", sess.Messages[0].Text)
	assert.Equal(t, session.AuthorSystem, sess.Messages[1].Author)
	assert.NotEmpty(t, sess.Messages[1].Id)
	assert.NotEqual(t, sess.Messages[0].Id, sess.Messages[1].Id)
}

func TestChatProductSearch(t *testing.T) {
	completer := &fakeCompleter{text: "Here are some easy tees."}
	a := newTestAgent(tshirtCatalog(), completer, 15)
	sess := session.New("s1", time.Now())

	reply := a.Chat(context.Background(), sess, "Show me casual t-shirts under ₹1000")

	assert.Equal(t, "Here are some easy tees.", reply.Text)
	require.NotEmpty(t, reply.Products)
	assert.LessOrEqual(t, len(reply.Products), 6)
	for _, p := range reply.Products {
		assert.LessOrEqual(t, p.Price, 1000.0)
	}
	assert.NotEmpty(t, reply.Suggestions)
	assert.LessOrEqual(t, len(reply.Suggestions), maxSuggestions)
	assert.Equal(t, intentFollowUps[intent.IntentProductSearch], reply.FollowUps)

	require.Len(t, completer.hints, 1)
	assert.Contains(t, completer.hints[0], "intent: product_search")
	assert.Contains(t, completer.hints[0], fmt.Sprintf("found %d products", len(reply.Products)))

	require.NotNil(t, sess.Preferences.Budget)
	assert.Equal(t, 1000.0, *sess.Preferences.Budget)
	assert.Equal(t, "t-shirt", sess.Preferences.LastSearch)
}

func TestChatOffTopicRefusal(t *testing.T) {
	catalog := tshirtCatalog()
	completer := &fakeCompleter{text: "unused"}
	a := newTestAgent(catalog, completer, 10)

	reply := a.Chat(context.Background(), session.New("s1", time.Now()), "show me a laptop")

	assert.Equal(t, refusalText, reply.Text)
	assert.Equal(t, baseSuggestions, reply.Suggestions)
	assert.Empty(t, reply.Products)
	assert.Zero(t, catalog.calls)
	assert.Empty(t, completer.calls)
}

func TestChatClothingWithOtherTermsIsNotRefused(t *testing.T) {
	completer := &fakeCompleter{text: "ok"}
	a := newTestAgent(tshirtCatalog(), completer, 10)

	reply := a.Chat(context.Background(), session.New("s1", time.Now()), "show me t-shirts with a phone pocket")
	assert.NotEqual(t, refusalText, reply.Text)
	assert.Len(t, completer.calls, 1)
}

func TestChatCompletionFailure(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("model down")}
	a := newTestAgent(tshirtCatalog(), completer, 10)

	reply := a.Chat(context.Background(), session.New("s1", time.Now()), "show me t-shirts")

	assert.Equal(t, fallbackText, reply.Text)
	assert.Empty(t, reply.Products)
	assert.Empty(t, reply.Suggestions)
}

func TestChatCatalogFailure(t *testing.T) {
	catalog := tshirtCatalog()
	catalog.err = errors.New("search down")
	completer := &fakeCompleter{text: "unused"}
	a := newTestAgent(catalog, completer, 10)
	sess := session.New("s1", time.Now())

	reply := a.Chat(context.Background(), sess, "show me t-shirts")

	assert.Equal(t, fallbackText, reply.Text)
	assert.Empty(t, reply.Products)
	assert.Empty(t, completer.calls)
	assert.Len(t, sess.Messages, 2)
}

func TestChatWithoutCompleter(t *testing.T) {
	a := newTestAgent(tshirtCatalog(), nil, 10)
	reply := a.Chat(context.Background(), session.New("s1", time.Now()), "show me t-shirts")
	assert.Equal(t, fallbackText, reply.Text)
}

func TestChatGeneralConversation(t *testing.T) {
	completer := &fakeCompleter{text: "Doing great, thanks for asking!"}
	a := newTestAgent(tshirtCatalog(), completer, 10)

	reply := a.Chat(context.Background(), session.New("s1", time.Now()), "how are you doing today")
	assert.Equal(t, "Doing great, thanks for asking!", reply.Text)
	assert.Empty(t, reply.Suggestions)
	assert.Empty(t, reply.Products)
	assert.Equal(t, intentFollowUps[intent.IntentGeneralConversation], reply.FollowUps)
	require.Len(t, completer.hints, 1)
	assert.Contains(t, completer.hints[0], "fashion consultant")

	reply = a.Chat(context.Background(), session.New("s2", time.Now()), "what should I wear to brunch")
	assert.Equal(t, baseSuggestions, reply.Suggestions)
	assert.LessOrEqual(t, len(reply.FollowUps), maxFollowUps)
}

func TestChatMergesPreferences(t *testing.T) {
	completer := &fakeCompleter{text: "noted"}
	a := newTestAgent(tshirtCatalog(), completer, 10)
	sess := session.New("s1", time.Now())

	a.Chat(context.Background(), sess, "I wear size M")
	a.Chat(context.Background(), sess, "I like olive")
	a.Chat(context.Background(), sess, "thanks")

	assert.Equal(t, "M", sess.Preferences.Size)
	assert.Equal(t, []string{"olive"}, sess.Preferences.Colors)
	assert.Len(t, sess.Messages, 6)
}

func TestTimeOfDay(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2024, 1, 1, h, m, 0, 0, time.UTC) }
	assert.Equal(t, "Good morning", timeOfDay(at(0, 0)))
	assert.Equal(t, "Good morning", timeOfDay(at(11, 59)))
	assert.Equal(t, "Good afternoon", timeOfDay(at(12, 0)))
	assert.Equal(t, "Good afternoon", timeOfDay(at(16, 59)))
	assert.Equal(t, "Good evening", timeOfDay(at(17, 0)))
}

func TestDynamicSuggestions(t *testing.T) {
	products := []*product.Products{
		{Id: "1", Title: "Slim Jeans", Category: "Jeans", Price: 1000},
		{Id: "2", Title: "Straight Jeans", Category: "jeans", Price: 2000},
	}
	rng := rand.New(rand.NewPCG(7, 7))

	got := dynamicSuggestions(products, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), rng)
	assert.ElementsMatch(t, []string{
		"More jeans",
		"Similar picks under ₹1500",
		"Premium picks above ₹1500",
		"Show me summer essentials",
	}, got)

	got = dynamicSuggestions(nil, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), rng)
	assert.Equal(t, []string{"Show me winter essentials"}, got)
}

func TestDynamicSuggestionsCapped(t *testing.T) {
	products := []*product.Products{
		{Title: "Casual Party Top", Category: "tops", Price: 500},
		{Title: "Formal Vintage Shirt", Category: "shirts", Price: 900},
		{Title: "Boho Skirt", Category: "skirts", Price: 700},
	}
	got := dynamicSuggestions(products, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), rand.New(rand.NewPCG(3, 4)))
	assert.Len(t, got, maxSuggestions)
}

func TestSeasonBoundaries(t *testing.T) {
	on := func(m time.Month) time.Time { return time.Date(2024, m, 15, 0, 0, 0, 0, time.UTC) }
	assert.Equal(t, "winter", season(on(time.March)))
	assert.Equal(t, "summer", season(on(time.April)))
	assert.Equal(t, "summer", season(on(time.September)))
	assert.Equal(t, "winter", season(on(time.October)))
}
