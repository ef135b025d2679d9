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

package content

import (
	"github.com/ecodeclub/portfolio/internal/content/internal/domain"
	"github.com/ecodeclub/portfolio/internal/content/internal/service"
	"github.com/ecodeclub/portfolio/internal/content/internal/web"
)

type Module struct {
	AdminHdl       *AdminHandler
	Hdl            *Handler
	ProjectSvc     ProjectService
	ExperienceSvc  ExperienceService
	CertificateSvc CertificateService
	SkillsSvc      SkillsService
}

type (
	AdminHandler       = web.AdminHandler
	Handler            = web.Handler
	ProjectService     = service.ProjectService
	ExperienceService  = service.ExperienceService
	CertificateService = service.CertificateService
	SkillsService      = service.SkillsService

	Project      = domain.Project
	Experience   = domain.Experience
	Certificate  = domain.Certificate
	Skills       = domain.Skills
	ProjectPatch = domain.ProjectPatch
)

var ErrRecordNotFound = service.ErrRecordNotFound
