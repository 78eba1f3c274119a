package mq

import (
	"StylistAI/app/services/stylist/internal/svc"

	"github.com/hibiken/asynq"
)

func NewAsynqMux(sc *svc.ServiceContext) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskExpireSession, newExpireSessionHandler(sc))
	return mux
}
