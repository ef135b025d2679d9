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

package middleware

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var adminPrefixes = []string{"/admin", "/api/admin"}

// CheckEnvironmentBuilder 在生产环境下隐藏整个管理后台（页面和接口），
// 命中的请求直接返回空的 404，不会进入后续的 handler
type CheckEnvironmentBuilder struct {
	production bool
	logger     *elog.Component
}

func NewCheckEnvironmentBuilder(production bool) *CheckEnvironmentBuilder {
	return &CheckEnvironmentBuilder{
		production: production,
		logger:     elog.DefaultLogger,
	}
}

func (b *CheckEnvironmentBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !b.production {
			return
		}
		p := ctx.Request.URL.Path
		if !isAdminPath(p) && !isAdminPath(path.Clean("/"+p)) {
			return
		}
		b.logger.Debug("生产环境隐藏管理后台", elog.String("path", p))
		ctx.AbortWithStatus(http.StatusNotFound)
	}
}

func isAdminPath(p string) bool {
	for _, prefix := range adminPrefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}
