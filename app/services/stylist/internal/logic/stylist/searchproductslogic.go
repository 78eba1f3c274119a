// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stylist

import (
	"context"
	"strings"

	"StylistAI/app/common/consts/errno"
	"StylistAI/app/services/stylist/internal/agent/extract"
	"StylistAI/app/services/stylist/internal/agent/search"
	"StylistAI/app/services/stylist/internal/logic/helper"
	"StylistAI/app/services/stylist/internal/svc"
	"StylistAI/app/services/stylist/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type SearchProductsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSearchProductsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SearchProductsLogic {
	return &SearchProductsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SearchProductsLogic) SearchProducts(req *types.SearchProductsRequest) (resp *types.SearchProductsResponse, err error) {
	var signals extract.Signals
	if term := strings.TrimSpace(req.Term); term != "" {
		signals, _ = extract.Extract(term)
	}
	if ceiling := search.ParsePriceCeiling(req.Max_price); ceiling != nil {
		signals.MaxPrice = ceiling
	}
	if colors := search.ParseColors(req.Colors); len(colors) > 0 {
		signals.Colors = colors
	}

	products, err := l.svcCtx.Ranker.Rank(l.ctx, signals)
	if err != nil {
		l.Logger.Errorf("logic: rank products failed: %v", err)
		return nil, errors.New(int(errno.CatalogUnavailable), "catalog unavailable")
	}

	return &types.SearchProductsResponse{
		Products: helper.ToProducts(products),
	}, nil
}
