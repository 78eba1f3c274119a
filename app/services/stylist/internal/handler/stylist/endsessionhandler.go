// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stylist

import (
	"net/http"

	"StylistAI/app/services/stylist/internal/logic/stylist"
	"StylistAI/app/services/stylist/internal/svc"
	"StylistAI/app/services/stylist/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func EndSessionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.EndSessionRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := stylist.NewEndSessionLogic(r.Context(), svcCtx)
		resp, err := l.EndSession(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
