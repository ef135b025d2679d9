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
	"github.com/ecodeclub/portfolio/config"
	"github.com/ecodeclub/portfolio/internal/content"
	"github.com/ecodeclub/portfolio/internal/pkg/jsonstore"
	"github.com/ecodeclub/portfolio/internal/upload"
)

func InitDocumentStore(cfg config.PortfolioConfig) *jsonstore.Store {
	return jsonstore.NewStore(cfg.DataDir)
}

func initContentModule(store *jsonstore.Store) *content.Module {
	return content.InitModule(store)
}

func initUploadModule(cfg config.PortfolioConfig) *upload.Module {
	return upload.InitModule(cfg.PublicDir)
}
