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

package ioc

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ecodeclub/portfolio/config"
	"github.com/ecodeclub/portfolio/internal/content"
	"github.com/ecodeclub/portfolio/internal/pkg/middleware"
	"github.com/ecodeclub/portfolio/internal/upload"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func InitMetricsRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}

func InitWebServer(cfg config.PortfolioConfig,
	reg prometheus.Registerer,
	contentModule *content.Module,
	uploadModule *upload.Module,
) *egin.Component {
	res := egin.Load("web").Build()
	production := cfg.Production()
	if production {
		// 否则 /api/admin/projects/ 这种路径会先被重定向，不经过中间件
		res.RedirectTrailingSlash = false
		res.RedirectFixedPath = false
	}
	// 必须是第一个中间件，否则 cors 会直接响应 OPTIONS 预检请求
	res.Use(middleware.NewCheckEnvironmentBuilder(production).Build())
	res.Use(cors.New(cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			// 管理后台只在本地使用
			return strings.HasPrefix(origin, "http://localhost") ||
				strings.HasPrefix(origin, "http://127.0.0.1")
		},
	}))
	res.Use(middleware.NewMetricsBuilder(reg).Build())

	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	res.Static("/projects", filepath.Join(cfg.PublicDir, "projects"))
	res.Static("/certificates", filepath.Join(cfg.PublicDir, "certificates"))
	if cfg.AdminDir != "" && !production {
		res.Static("/admin", cfg.AdminDir)
	}

	contentModule.Hdl.PublicRoutes(res.Engine)
	contentModule.AdminHdl.PrivateRoutes(res.Engine)
	uploadModule.Hdl.PrivateRoutes(res.Engine)
	return res
}
