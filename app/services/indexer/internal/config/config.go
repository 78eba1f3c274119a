package config

import (
	"github.com/zeromicro/go-zero/core/logx"
)

type Config struct {
	LogConf     logx.LogConf
	KafkaConf   KafkaConf
	ElasticConf ElasticConf
}

type KafkaConf struct {
	Brokers       []string
	Group         string
	ProductsTopic string
}

type ElasticConf struct {
	Addresses        []string
	Username         string `json:",optional"`
	Password         string `json:",optional"`
	IndexName        string `json:",default=products"`
	NumberOfShards   int    `json:",default=1"`
	NumberOfReplicas int    `json:",default=0"`
}
