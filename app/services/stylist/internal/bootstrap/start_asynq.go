package bootstrap

import (
	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"

	"StylistAI/app/services/stylist/internal/mq"
	"StylistAI/app/services/stylist/internal/svc"
)

// StartAsynq runs the idle-session worker. It is a no-op without an asynq address.
func StartAsynq(sc *svc.ServiceContext) func() {
	addr := sc.Config.AsynqConf.Addr
	if addr == "" {
		return func() {}
	}
	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: addr}, asynq.Config{
		Concurrency: sc.Config.AsynqConf.Concurrency,
	})
	mux := mq.NewAsynqMux(sc)
	go func() {
		if err := srv.Run(mux); err != nil {
			logx.Errorw("asynq server stopped", logx.Field("err", err))
		}
	}()
	return func() {
		srv.Shutdown()
	}
}
