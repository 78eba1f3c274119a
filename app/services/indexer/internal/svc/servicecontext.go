package svc

import (
	"context"
	"strings"

	"StylistAI/app/common/consts/biz"
	"StylistAI/app/dal/product"
	"StylistAI/app/services/indexer/internal/config"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/zeromicro/go-zero/core/logx"
)

type ServiceContext struct {
	Config   config.Config
	ESClient *elasticsearch.Client
	Index    product.IndexModel
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	sc := &ServiceContext{Config: c}

	if len(c.ElasticConf.Addresses) == 0 {
		logx.Infow("elasticsearch client disabled, no addresses configured")
		return sc
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: c.ElasticConf.Addresses,
		Username:  c.ElasticConf.Username,
		Password:  c.ElasticConf.Password,
	})
	if err != nil {
		logx.Errorw("init elasticsearch client failed", logx.Field("err", err))
		return sc
	}
	logx.Infow("elasticsearch client initialized", logx.Field("addresses", c.ElasticConf.Addresses))

	created, err := product.EnsureIndex(context.Background(), client, product.IndexParams{
		IndexName:        sc.ProductIndexName(),
		NumberOfShards:   c.ElasticConf.NumberOfShards,
		NumberOfReplicas: c.ElasticConf.NumberOfReplicas,
	})
	if err != nil {
		logx.Errorw("ensure product index failed", logx.Field("index", sc.ProductIndexName()), logx.Field("err", err))
	} else if created {
		logx.Infow("product index created", logx.Field("index", sc.ProductIndexName()))
	}

	sc.ESClient = client
	sc.Index = product.NewESCatalogModel(client, sc.ProductIndexName(), 0)
	return sc
}

func (s *ServiceContext) ProductIndexName() string {
	if idx := strings.TrimSpace(s.Config.ElasticConf.IndexName); idx != "" {
		return idx
	}
	return biz.ProductIndex
}
