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

package content

import (
	"github.com/ecodeclub/portfolio/internal/content/internal/repository"
	"github.com/ecodeclub/portfolio/internal/content/internal/repository/dao"
	"github.com/ecodeclub/portfolio/internal/content/internal/service"
	"github.com/ecodeclub/portfolio/internal/content/internal/web"
	"github.com/ecodeclub/portfolio/internal/pkg/jsonstore"
	"github.com/google/wire"
)

var ServiceSet = wire.NewSet(
	dao.NewProjectDAO,
	dao.NewExperienceDAO,
	dao.NewCertificateDAO,
	dao.NewSkillsDAO,
	repository.NewProjectRepository,
	repository.NewExperienceRepository,
	repository.NewCertificateRepository,
	repository.NewSkillsRepository,
	service.NewProjectService,
	service.NewExperienceService,
	service.NewCertificateService,
	service.NewSkillsService,
)

func InitModule(store *jsonstore.Store) *Module {
	wire.Build(
		ServiceSet,
		web.NewAdminHandler,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
