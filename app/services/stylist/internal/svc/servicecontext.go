package svc

import (
	"context"
	"time"

	"StylistAI/app/common/snowflake"
	"StylistAI/app/dal/product"
	"StylistAI/app/dal/session"
	"StylistAI/app/services/stylist/internal/agent/chat"
	"StylistAI/app/services/stylist/internal/agent/completion"
	"StylistAI/app/services/stylist/internal/agent/outfit"
	"StylistAI/app/services/stylist/internal/agent/search"
	"StylistAI/app/services/stylist/internal/config"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type ServiceContext struct {
	Config config.Config

	ChatModel *ark.ChatModel
	Completer completion.Completer

	Catalog  product.CatalogModel
	Sessions session.SessionModel

	Ranker *search.Ranker
	Agent  *chat.Agent
	Outfit *outfit.Engine

	AsynqClient *asynq.Client

	SessionTTL time.Duration
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	if c.SnowflakeNode > 0 {
		if err := snowflake.SetNodeID(c.SnowflakeNode); err != nil {
			logx.Errorf("failed to set snowflake node id: %v", err)
		}
	}

	sc := &ServiceContext{
		Config:     c,
		SessionTTL: c.Session.IdleTTL,
	}

	sc.initCompleter(c)
	sc.Catalog = newCatalog(c)
	sc.Sessions = newSessionStore(c)

	sc.Ranker = search.NewRanker(sc.Catalog)
	sc.Agent = chat.NewAgent(sc.Ranker, sc.Completer)
	sc.Outfit = outfit.NewEngine(sc.Completer)

	if c.AsynqConf.Addr != "" {
		sc.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: c.AsynqConf.Addr})
	} else {
		logx.Infow("asynq client disabled, idle sessions are only expired by the store")
	}

	return sc
}

func (s *ServiceContext) initCompleter(c config.Config) {
	if c.ChatModel.Model == "" || c.ChatModel.APIKey == "" {
		logx.Infow("chat model disabled, missing model or api key")
		return
	}

	cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
		BaseURL: c.ChatModel.BaseUrl,
		APIKey:  c.ChatModel.APIKey,
		Model:   c.ChatModel.Model,
	})
	if err != nil {
		logx.Errorw("init ark chat model failed", logx.Field("err", err))
		return
	}
	s.ChatModel = cm
	logx.Infow("ark chat model initialized")

	completer, err := completion.NewChainCompleter(context.Background(), cm, c.Completion.Timeout)
	if err != nil {
		logx.Errorw("init completion chain failed", logx.Field("err", err))
		return
	}
	s.Completer = completer
}

func newCatalog(c config.Config) product.CatalogModel {
	if len(c.ElasticConf.Addresses) > 0 {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: c.ElasticConf.Addresses,
			Username:  c.ElasticConf.Username,
			Password:  c.ElasticConf.Password,
		})
		if err != nil {
			logx.Errorw("init elasticsearch client failed", logx.Field("err", err))
		} else {
			logx.Infow("elasticsearch catalog initialized", logx.Field("addresses", c.ElasticConf.Addresses))
			return product.NewESCatalogModel(client, c.ElasticConf.IndexName, c.ElasticConf.SearchSize)
		}
	}

	if c.Catalog.SeedFile != "" {
		catalog, err := product.LoadMemoryCatalogModel(c.Catalog.SeedFile)
		if err != nil {
			logx.Errorw("load catalog seed failed", logx.Field("file", c.Catalog.SeedFile), logx.Field("err", err))
		} else {
			logx.Infow("in-memory catalog initialized", logx.Field("file", c.Catalog.SeedFile))
			return catalog
		}
	}

	logx.Infow("catalog empty, no elasticsearch address or seed file configured")
	return product.NewMemoryCatalogModel()
}

func newSessionStore(c config.Config) session.SessionModel {
	if c.RedisConf.Host == "" {
		logx.Infow("redis disabled, sessions kept in memory")
		return session.NewMemorySessionModel()
	}
	return session.NewRedisSessionModel(redis.MustNewRedis(c.RedisConf), c.Session.IdleTTL)
}
