package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"StylistAI/app/dal/session"
	"StylistAI/app/services/stylist/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

// EnqueueExpiry schedules an idle check for sess one ttl from now.
func EnqueueExpiry(ctx context.Context, client *asynq.Client, sess *session.Session, ttl time.Duration) error {
	if client == nil || sess == nil {
		return nil
	}
	payload, err := json.Marshal(ExpireSessionPayload{
		SessionId: sess.Id,
		UpdatedAt: sess.UpdatedAt.UnixMilli(),
	})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TaskExpireSession, payload)
	_, err = client.EnqueueContext(ctx, task, asynq.ProcessIn(ttl), asynq.Queue("default"))
	return err
}

func newExpireSessionHandler(sc *svc.ServiceContext) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p ExpireSessionPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			logx.WithContext(ctx).Errorw("decode expire session payload failed", logx.Field("err", err))
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}
		return ExpireSession(ctx, sc.Sessions, p.SessionId, sc.SessionTTL, time.Now())
	}
}

// ExpireSession deletes the session when it has been idle for at least ttl.
// A session touched since the task was queued is left for its newer task.
func ExpireSession(ctx context.Context, store session.SessionModel, id string, ttl time.Duration, now time.Time) error {
	sess, err := store.FindOne(ctx, id)
	if errors.Is(err, session.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if now.Sub(sess.UpdatedAt) < ttl {
		return nil
	}

	if err := store.Delete(ctx, id); err != nil && !errors.Is(err, session.ErrNotFound) {
		return err
	}
	logx.WithContext(ctx).Infow("idle session expired", logx.Field("session_id", id))
	return nil
}
