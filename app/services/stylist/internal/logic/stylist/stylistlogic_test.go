package stylist

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"StylistAI/app/common/consts/errno"
	"StylistAI/app/dal/product"
	"StylistAI/app/dal/session"
	"StylistAI/app/services/stylist/internal/agent/chat"
	"StylistAI/app/services/stylist/internal/agent/outfit"
	"StylistAI/app/services/stylist/internal/agent/search"
	"StylistAI/app/services/stylist/internal/config"
	"StylistAI/app/services/stylist/internal/svc"
	"StylistAI/app/services/stylist/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/x/errors"
)

func newTestServiceContext(items ...*product.Products) *svc.ServiceContext {
	var c config.Config
	c.Catalog.SnapshotSize = 200

	catalog := product.NewMemoryCatalogModel(items...)
	ranker := search.NewRanker(catalog)
	return &svc.ServiceContext{
		Config:     c,
		Catalog:    catalog,
		Sessions:   session.NewMemorySessionModel(),
		Ranker:     ranker,
		Agent:      chat.NewAgent(ranker, nil),
		Outfit:     outfit.NewEngine(nil),
		SessionTTL: 30 * time.Minute,
	}
}

func codeOf(t *testing.T, err error) int {
	t.Helper()
	var cm *errors.CodeMsg
	require.True(t, stderrors.As(err, &cm), "expected code error, got %v", err)
	return cm.Code
}

func TestChatSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	sc := newTestServiceContext()

	resp, err := NewChatLogic(ctx, sc).Chat(&types.ChatRequest{Message: "hello there"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Session_id)
	assert.Equal(t, session.AuthorSystem, resp.Reply.Author)
	assert.NotEmpty(t, resp.Reply.Text)

	_, err = NewChatLogic(ctx, sc).Chat(&types.ChatRequest{Session_id: resp.Session_id, Message: "I wear size M"})
	require.NoError(t, err)

	got, err := NewGetSessionLogic(ctx, sc).GetSession(&types.GetSessionRequest{Session_id: resp.Session_id})
	require.NoError(t, err)
	assert.Len(t, got.Messages, 4)
	assert.Equal(t, session.AuthorUser, got.Messages[0].Author)
	assert.Equal(t, "M", got.Preferences.Size)

	ended, err := NewEndSessionLogic(ctx, sc).EndSession(&types.EndSessionRequest{Session_id: resp.Session_id})
	require.NoError(t, err)
	assert.Equal(t, resp.Session_id, ended.Session_id)

	_, err = NewGetSessionLogic(ctx, sc).GetSession(&types.GetSessionRequest{Session_id: resp.Session_id})
	assert.Equal(t, errno.SessionNotFound, codeOf(t, err))

	_, err = NewEndSessionLogic(ctx, sc).EndSession(&types.EndSessionRequest{Session_id: resp.Session_id})
	assert.Equal(t, errno.SessionNotFound, codeOf(t, err))
}

func TestChatKeepsClientSessionId(t *testing.T) {
	sc := newTestServiceContext()
	resp, err := NewChatLogic(context.Background(), sc).Chat(&types.ChatRequest{Session_id: "client-1", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "client-1", resp.Session_id)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	sc := newTestServiceContext()
	_, err := NewChatLogic(context.Background(), sc).Chat(&types.ChatRequest{Message: "   "})
	assert.Equal(t, errno.InvalidParam, codeOf(t, err))
}

func TestGenerateOutfitsInsufficientInventory(t *testing.T) {
	sc := newTestServiceContext(
		&product.Products{Id: "1", Title: "Formal Blazer", Category: "blazer", Price: 4000},
		&product.Products{Id: "2", Title: "Formal Trousers", Category: "trousers", Price: 2000},
	)
	_, err := NewGenerateOutfitsLogic(context.Background(), sc).GenerateOutfits(&types.GenerateOutfitsRequest{Occasion: "gym"})
	assert.Equal(t, errno.InsufficientInventory, codeOf(t, err))

	_, err = NewGenerateOutfitsLogic(context.Background(), sc).GenerateOutfits(&types.GenerateOutfitsRequest{})
	assert.Equal(t, errno.InvalidParam, codeOf(t, err))
}

func TestGenerateOutfits(t *testing.T) {
	sc := newTestServiceContext(
		&product.Products{Id: "1", Title: "Cotton T-Shirt", Category: "t-shirt", Price: 800, Rating: 4.2},
		&product.Products{Id: "2", Title: "Slim Jeans", Category: "jeans", Price: 1800, Rating: 4.0},
		&product.Products{Id: "3", Title: "White Sneakers", Category: "sneakers", Price: 2500, Rating: 4.5},
		&product.Products{Id: "4", Title: "Canvas Bag", Category: "bag", Price: 1200, Rating: 3.9},
	)
	resp, err := NewGenerateOutfitsLogic(context.Background(), sc).GenerateOutfits(&types.GenerateOutfitsRequest{Occasion: "casual"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Outfits)
	for _, o := range resp.Outfits {
		assert.Equal(t, "casual", o.Occasion)
		assert.GreaterOrEqual(t, len(o.Items), 3)
		assert.NotEmpty(t, o.Reasoning)
	}
}

func TestSearchProductsPriceCeiling(t *testing.T) {
	sc := newTestServiceContext(
		&product.Products{Id: "1", Title: "Blue Denim Jeans", Category: "jeans", Price: 1500},
		&product.Products{Id: "2", Title: "Black Skinny Jeans", Category: "jeans", Price: 3500},
	)
	resp, err := NewSearchProductsLogic(context.Background(), sc).SearchProducts(&types.SearchProductsRequest{Term: "jeans", Max_price: "2000"})
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "1", resp.Products[0].Id)
}
