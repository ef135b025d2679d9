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
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/portfolio/internal/content/internal/domain"
	"github.com/ecodeclub/portfolio/internal/content/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
)

// Handler 公开站点用的只读接口，生产环境下也可以访问
type Handler struct {
	projectSvc     service.ProjectService
	experienceSvc  service.ExperienceService
	certificateSvc service.CertificateService
	skillsSvc      service.SkillsService
	logger         *elog.Component
}

func NewHandler(
	projectSvc service.ProjectService,
	experienceSvc service.ExperienceService,
	certificateSvc service.CertificateService,
	skillsSvc service.SkillsService) *Handler {
	return &Handler{
		projectSvc:     projectSvc,
		experienceSvc:  experienceSvc,
		certificateSvc: certificateSvc,
		skillsSvc:      skillsSvc,
		logger:         elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/portfolio")
	g.GET("/projects", ginx.W(h.Projects))
	g.POST("/projects/detail", ginx.B[IdReq](h.ProjectDetail))
	g.GET("/experience", ginx.W(h.Experience))
	g.GET("/certificates", ginx.W(h.Certificates))
	g.GET("/skills", ginx.W(h.Skills))
	g.GET("/skills/featured", ginx.W(h.FeaturedSkills))
}

// Projects featured=true 时只返回精选项目
func (h *Handler) Projects(ctx *ginx.Context) (ginx.Result, error) {
	projects, err := h.projectSvc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	if ctx.Query("featured").StringOrDefault("") == "true" {
		projects = slice.FindAll(projects, func(src domain.Project) bool {
			return src.Featured
		})
	}
	return ginx.Result{
		Data: slice.Map(projects, func(idx int, src domain.Project) Project {
			return newProject(src)
		}),
	}, nil
}

func (h *Handler) ProjectDetail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	p, err := h.projectSvc.Detail(ctx, strconv.FormatInt(req.Id, 10))
	switch {
	case err == nil:
		return ginx.Result{
			Data: newProject(p),
		}, nil
	case errors.Is(err, service.ErrRecordNotFound):
		return recordNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Experience(ctx *ginx.Context) (ginx.Result, error) {
	items, err := h.experienceSvc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(items, func(idx int, src domain.Experience) Experience {
			return newExperience(src)
		}),
	}, nil
}

func (h *Handler) Certificates(ctx *ginx.Context) (ginx.Result, error) {
	items, err := h.certificateSvc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(items, func(idx int, src domain.Certificate) Certificate {
			return newCertificate(src)
		}),
	}, nil
}

func (h *Handler) Skills(ctx *ginx.Context) (ginx.Result, error) {
	skills, err := h.skillsSvc.Get(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSkills(skills),
	}, nil
}

func (h *Handler) FeaturedSkills(ctx *ginx.Context) (ginx.Result, error) {
	skills, err := h.skillsSvc.Get(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(skills.FeaturedItems(), func(idx int, src domain.FeaturedSkill) FeaturedSkill {
			return newFeaturedSkill(src)
		}),
	}, nil
}
