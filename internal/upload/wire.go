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

//go:build wireinject

package upload

import (
	"github.com/ecodeclub/portfolio/internal/pkg/filename"
	"github.com/ecodeclub/portfolio/internal/upload/internal/service"
	"github.com/ecodeclub/portfolio/internal/upload/internal/web"
	"github.com/google/wire"
)

// InitModule publicDir 是 projects 和 certificates 两个目录的父目录
func InitModule(publicDir string) *Module {
	wire.Build(
		filename.NewGenerator,
		service.NewLocalSink,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
