// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stylist

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"StylistAI/app/common/consts/errno"
	"StylistAI/app/dal/session"
	"StylistAI/app/services/stylist/internal/logic/helper"
	"StylistAI/app/services/stylist/internal/mq"
	"StylistAI/app/services/stylist/internal/svc"
	"StylistAI/app/services/stylist/internal/types"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChatLogic) Chat(req *types.ChatRequest) (resp *types.ChatResponse, err error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, errors.New(int(errno.InvalidParam), "message is required")
	}

	sess, err := l.loadOrCreate(strings.TrimSpace(req.Session_id))
	if err != nil {
		l.Logger.Errorf("logic: load session failed: %v", err)
		return nil, errors.New(int(errno.InternalError), "load session failed")
	}

	reply := l.svcCtx.Agent.Chat(l.ctx, sess, text)

	if err := l.svcCtx.Sessions.Save(l.ctx, sess); err != nil {
		l.Logger.Errorf("logic: save session %s failed: %v", sess.Id, err)
		return nil, errors.New(int(errno.InternalError), "save session failed")
	}

	if err := mq.EnqueueExpiry(l.ctx, l.svcCtx.AsynqClient, sess, l.svcCtx.SessionTTL); err != nil {
		l.Logger.Errorw("enqueue session expiry failed",
			logx.Field("session_id", sess.Id),
			logx.Field("err", err.Error()))
	}

	return &types.ChatResponse{
		Session_id: sess.Id,
		Reply:      helper.ToChatMessage(reply),
	}, nil
}

// loadOrCreate starts a conversation on the first message for an id.
func (l *ChatLogic) loadOrCreate(id string) (*session.Session, error) {
	if id == "" {
		return session.New(uuid.NewString(), time.Now()), nil
	}
	sess, err := l.svcCtx.Sessions.FindOne(l.ctx, id)
	if stderrors.Is(err, session.ErrNotFound) {
		return session.New(id, time.Now()), nil
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}
