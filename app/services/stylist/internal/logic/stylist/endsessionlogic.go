// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stylist

import (
	"context"
	stderrors "errors"

	"StylistAI/app/common/consts/errno"
	"StylistAI/app/dal/session"
	"StylistAI/app/services/stylist/internal/svc"
	"StylistAI/app/services/stylist/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type EndSessionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewEndSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *EndSessionLogic {
	return &EndSessionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *EndSessionLogic) EndSession(req *types.EndSessionRequest) (resp *types.EndSessionResponse, err error) {
	err = l.svcCtx.Sessions.Delete(l.ctx, req.Session_id)
	if stderrors.Is(err, session.ErrNotFound) {
		return nil, errors.New(int(errno.SessionNotFound), "session not found")
	}
	if err != nil {
		l.Logger.Errorf("logic: delete session %s failed: %v", req.Session_id, err)
		return nil, errors.New(int(errno.InternalError), "end session failed")
	}
	return &types.EndSessionResponse{Session_id: req.Session_id}, nil
}
