// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stylist

import (
	"context"
	stderrors "errors"

	"StylistAI/app/common/consts/errno"
	"StylistAI/app/dal/session"
	"StylistAI/app/services/stylist/internal/logic/helper"
	"StylistAI/app/services/stylist/internal/svc"
	"StylistAI/app/services/stylist/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetSessionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetSessionLogic {
	return &GetSessionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetSessionLogic) GetSession(req *types.GetSessionRequest) (resp *types.GetSessionResponse, err error) {
	sess, err := l.svcCtx.Sessions.FindOne(l.ctx, req.Session_id)
	if stderrors.Is(err, session.ErrNotFound) {
		return nil, errors.New(int(errno.SessionNotFound), "session not found")
	}
	if err != nil {
		l.Logger.Errorf("logic: find session %s failed: %v", req.Session_id, err)
		return nil, errors.New(int(errno.InternalError), "load session failed")
	}

	messages := make([]types.ChatMessage, 0, len(sess.Messages))
	for _, m := range sess.Messages {
		messages = append(messages, helper.ToChatMessage(m))
	}

	return &types.GetSessionResponse{
		Session_id:  sess.Id,
		Preferences: helper.ToPreferences(sess.Preferences),
		Messages:    messages,
		Created_at:  sess.CreatedAt.UnixMilli(),
		Updated_at:  sess.UpdatedAt.UnixMilli(),
	}, nil
}
