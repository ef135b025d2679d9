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
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecodeclub/portfolio/config"
	testioc "github.com/ecodeclub/portfolio/internal/test/ioc"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInitPortfolioConfig(t *testing.T) {
	content := []byte(`
portfolio:
  dataDir: /srv/portfolio/data
  publicDir: /srv/portfolio/public
  env: development
`)
	require.NoError(t, econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal))

	t.Setenv(envKey, "")
	cfg := InitPortfolioConfig()
	assert.Equal(t, "/srv/portfolio/data", cfg.DataDir)
	assert.Equal(t, "/srv/portfolio/public", cfg.PublicDir)
	assert.False(t, cfg.Production())

	t.Setenv(envKey, "production")
	cfg = InitPortfolioConfig()
	assert.True(t, cfg.Production())
}

func newServer(t *testing.T, env string) (http.Handler, string) {
	gin.SetMode(gin.ReleaseMode)
	econf.Set("web", map[string]any{"contextTimeout": "10s"})
	store := testioc.InitStore(t)
	publicDir := t.TempDir()
	adminDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(adminDir, "app.js"), []byte("admin"), 0o644))
	cfg := config.PortfolioConfig{
		DataDir:   store.Dir(),
		PublicDir: publicDir,
		AdminDir:  adminDir,
		Env:       env,
	}
	server := InitWebServer(cfg, prometheus.NewRegistry(),
		initContentModule(InitDocumentStore(cfg)), initUploadModule(cfg))
	return server, publicDir
}

func TestWebServer_Production(t *testing.T) {
	server, _ := newServer(t, "production")
	hidden := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/admin"},
		{method: http.MethodGet, path: "/admin/app.js"},
		{method: http.MethodGet, path: "/admin/projects"},
		{method: http.MethodGet, path: "/api/admin"},
		{method: http.MethodGet, path: "/api/admin/projects"},
		{method: http.MethodGet, path: "/api/admin/projects/"},
		{method: http.MethodGet, path: "/api/admin/skills"},
		{method: http.MethodPost, path: "/api/admin/projects"},
		{method: http.MethodDelete, path: "/api/admin/projects/1"},
		{method: http.MethodPost, path: "/api/admin/upload"},
		{method: http.MethodOptions, path: "/admin"},
		{method: http.MethodOptions, path: "/api/admin/projects"},
		{method: http.MethodOptions, path: "/api/admin/projects/1"},
	}
	for _, h := range hidden {
		t.Run(h.method+" "+h.path, func(t *testing.T) {
			req := httptest.NewRequest(h.method, h.path, nil)
			// 本地管理后台的跨域请求
			req.Header.Set("Origin", "http://localhost:3000")
			req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, http.StatusNotFound, recorder.Code)
			assert.Empty(t, recorder.Body.String())
			assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/projects", nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestWebServer_Development(t *testing.T) {
	server, publicDir := newServer(t, "development")

	// 开发环境下本地管理后台可以跨域
	req := httptest.NewRequest(http.MethodOptions, "/api/admin/projects/1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil)
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/admin/app.js", nil)
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "admin", recorder.Body.String())

	// 上传之后返回的路径可以直接访问
	require.NoError(t, os.MkdirAll(filepath.Join(publicDir, "projects"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "projects", "cover-1.png"), []byte("png"), 0o644))
	req = httptest.NewRequest(http.MethodGet, "/projects/cover-1.png", nil)
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "png", recorder.Body.String())
}
