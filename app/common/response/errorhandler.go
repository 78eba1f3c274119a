package response

import (
	"context"
	stderrors "errors"
	"net/http"

	"StylistAI/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

// ErrorHandlerCtx renders code errors as Response. Anything else reaching the
// handler comes from request parsing.
func ErrorHandlerCtx(_ context.Context, err error) (int, any) {
	var cm *errors.CodeMsg
	if stderrors.As(err, &cm) {
		return httpStatus(cm.Code), NewResponse(cm.Code, cm.Msg)
	}
	return http.StatusBadRequest, NewResponse(errno.InvalidParam, err.Error())
}

func httpStatus(code int) int {
	switch code {
	case errno.InvalidParam:
		return http.StatusBadRequest
	case errno.SessionNotFound:
		return http.StatusNotFound
	case errno.InsufficientInventory:
		return http.StatusUnprocessableEntity
	case errno.CatalogUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
