// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/portfolio/internal/content/internal/domain"
	"github.com/ecodeclub/portfolio/internal/content/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
)

type patchReq[P any] interface {
	toPatch() P
}

// collectionHandler 项目、工作经历、证书的管理接口，
// 直接返回记录本身，出错时返回 {"error": "..."}
type collectionHandler[T domain.Record[T], P domain.Patch[T], V any, R patchReq[P]] struct {
	// 单数和复数，用于错误信息
	one    string
	many   string
	svc    service.CollectionService[T, P]
	toVO   func(T) V
	logger *elog.Component
}

func (h *collectionHandler[T, P, V, R]) routes(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Detail)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *collectionHandler[T, P, V, R]) List(ctx *gin.Context) {
	items, err := h.svc.List(ctx)
	if err != nil {
		h.systemError(ctx, "failed to read "+h.many, err)
		return
	}
	ctx.JSON(http.StatusOK, slice.Map(items, func(idx int, src T) V {
		return h.toVO(src)
	}))
}

func (h *collectionHandler[T, P, V, R]) Detail(ctx *gin.Context) {
	item, err := h.svc.Detail(ctx, ctx.Param("id"))
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, h.toVO(item))
	case errors.Is(err, service.ErrRecordNotFound):
		h.notFound(ctx)
	default:
		h.systemError(ctx, "failed to read "+h.one, err)
	}
}

func (h *collectionHandler[T, P, V, R]) Create(ctx *gin.Context) {
	var req R
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.systemError(ctx, "failed to create "+h.one, err)
		return
	}
	item, err := h.svc.Create(ctx, req.toPatch())
	if err != nil {
		h.systemError(ctx, "failed to create "+h.one, err)
		return
	}
	ctx.JSON(http.StatusOK, h.toVO(item))
}

func (h *collectionHandler[T, P, V, R]) Update(ctx *gin.Context) {
	var req R
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.systemError(ctx, "failed to update "+h.one, err)
		return
	}
	item, err := h.svc.Update(ctx, ctx.Param("id"), req.toPatch())
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, h.toVO(item))
	case errors.Is(err, service.ErrRecordNotFound):
		h.notFound(ctx)
	default:
		h.systemError(ctx, "failed to update "+h.one, err)
	}
}

func (h *collectionHandler[T, P, V, R]) Delete(ctx *gin.Context) {
	err := h.svc.Delete(ctx, ctx.Param("id"))
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	case errors.Is(err, service.ErrRecordNotFound):
		h.notFound(ctx)
	default:
		h.systemError(ctx, "failed to delete "+h.one, err)
	}
}

func (h *collectionHandler[T, P, V, R]) notFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, gin.H{"error": h.one + " not found"})
}

func (h *collectionHandler[T, P, V, R]) systemError(ctx *gin.Context, msg string, err error) {
	h.logger.Error(msg,
		elog.String("method", ctx.Request.Method),
		elog.String("path", ctx.Request.URL.Path),
		elog.FieldErr(err))
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
