package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	ChatModel   ModelConf
	Completion  CompletionConf
	ElasticConf ElasticConf
	Catalog     CatalogConf
	RedisConf   redis.RedisConf `json:",optional"`
	Session     SessionConf
	AsynqConf   AsynqConf

	SnowflakeNode int64 `json:",optional"`

	LogConf logx.LogConf
}

type ModelConf struct {
	BaseUrl string `json:",optional"`
	APIKey  string `json:",optional"`
	Model   string `json:",optional"`
}

type CompletionConf struct {
	Timeout time.Duration `json:",default=8s"`
}

type ElasticConf struct {
	Addresses  []string `json:",optional"`
	Username   string   `json:",optional"`
	Password   string   `json:",optional"`
	IndexName  string   `json:",default=products"`
	SearchSize int      `json:",default=100"`
}

type CatalogConf struct {
	// SeedFile feeds the in-memory catalog when no Elasticsearch address is set.
	SeedFile     string `json:",optional"`
	SnapshotSize int    `json:",default=200"`
}

type SessionConf struct {
	IdleTTL time.Duration `json:",default=30m"`
}

type AsynqConf struct {
	Addr        string `json:",optional"`
	Concurrency int    `json:",default=4"`
}
