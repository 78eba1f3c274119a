// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stylist

import (
	"context"
	stderrors "errors"
	"strings"

	"StylistAI/app/common/consts/errno"
	"StylistAI/app/services/stylist/internal/agent/outfit"
	"StylistAI/app/services/stylist/internal/logic/helper"
	"StylistAI/app/services/stylist/internal/svc"
	"StylistAI/app/services/stylist/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GenerateOutfitsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGenerateOutfitsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GenerateOutfitsLogic {
	return &GenerateOutfitsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GenerateOutfitsLogic) GenerateOutfits(req *types.GenerateOutfitsRequest) (resp *types.GenerateOutfitsResponse, err error) {
	occasion := strings.TrimSpace(req.Occasion)
	if occasion == "" {
		return nil, errors.New(int(errno.InvalidParam), "occasion is required")
	}

	snapshot, err := l.svcCtx.Catalog.FetchBatchCtx(l.ctx, l.svcCtx.Config.Catalog.SnapshotSize, 0)
	if err != nil {
		l.Logger.Errorf("logic: fetch catalog snapshot failed: %v", err)
		return nil, errors.New(int(errno.CatalogUnavailable), "catalog unavailable")
	}

	in := outfit.Request{
		Occasion: occasion,
		Colors:   req.Colors,
		Style:    strings.TrimSpace(req.Style),
	}
	if req.Budget > 0 {
		budget := req.Budget
		in.Budget = &budget
	}

	outfits, err := l.svcCtx.Outfit.Generate(l.ctx, snapshot, in)
	if stderrors.Is(err, outfit.ErrInsufficientInventory) {
		return nil, errors.New(int(errno.InsufficientInventory), "not enough matching products for this occasion, try a different occasion")
	}
	if err != nil {
		l.Logger.Errorf("logic: generate outfits failed: %v", err)
		return nil, errors.New(int(errno.InternalError), "generate outfits failed")
	}

	return &types.GenerateOutfitsResponse{
		Outfits: helper.ToOutfits(outfits),
	}, nil
}
