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
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCheckEnvironment(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	testCases := []struct {
		name       string
		production bool
		path       string

		wantCode   int
		wantCalled bool
	}{
		{
			name:       "生产环境-管理页面",
			production: true,
			path:       "/admin",
			wantCode:   http.StatusNotFound,
		},
		{
			name:       "生产环境-管理页面子路径",
			production: true,
			path:       "/admin/projects",
			wantCode:   http.StatusNotFound,
		},
		{
			name:       "生产环境-管理接口",
			production: true,
			path:       "/api/admin",
			wantCode:   http.StatusNotFound,
		},
		{
			name:       "生产环境-管理接口子路径",
			production: true,
			path:       "/api/admin/projects",
			wantCode:   http.StatusNotFound,
		},
		{
			name:       "生产环境-绕过前缀",
			production: true,
			path:       "/api/./admin/projects",
			wantCode:   http.StatusNotFound,
		},
		{
			name:       "生产环境-前缀相似的路径",
			production: true,
			path:       "/administrator",
			wantCode:   http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "生产环境-公开接口",
			production: true,
			path:       "/api/portfolio/projects",
			wantCode:   http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "开发环境-管理接口",
			production: false,
			path:       "/api/admin/projects",
			wantCode:   http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "开发环境-管理页面",
			production: false,
			path:       "/admin/projects",
			wantCode:   http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			server := gin.New()
			server.Use(NewCheckEnvironmentBuilder(tc.production).Build())
			server.NoRoute(func(ctx *gin.Context) {
				called = true
				ctx.String(http.StatusOK, "ok")
			})
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantCalled, called)
			if !tc.wantCalled {
				assert.Empty(t, recorder.Body.String())
			}
		})
	}
}
