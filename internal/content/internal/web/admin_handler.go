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

	"github.com/ecodeclub/portfolio/internal/content/internal/domain"
	"github.com/ecodeclub/portfolio/internal/content/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// AdminHandler 管理后台用的接口，只在非生产环境下可以访问
type AdminHandler struct {
	projects     *collectionHandler[domain.Project, domain.ProjectPatch, Project, ProjectReq]
	experience   *collectionHandler[domain.Experience, domain.ExperiencePatch, Experience, ExperienceReq]
	certificates *collectionHandler[domain.Certificate, domain.CertificatePatch, Certificate, CertificateReq]

	projectSvc     service.ProjectService
	experienceSvc  service.ExperienceService
	certificateSvc service.CertificateService
	skillsSvc      service.SkillsService
	logger         *elog.Component
}

func NewAdminHandler(
	projectSvc service.ProjectService,
	experienceSvc service.ExperienceService,
	certificateSvc service.CertificateService,
	skillsSvc service.SkillsService) *AdminHandler {
	logger := elog.DefaultLogger
	return &AdminHandler{
		projects: &collectionHandler[domain.Project, domain.ProjectPatch, Project, ProjectReq]{
			one: "project", many: "projects",
			svc: projectSvc, toVO: newProject, logger: logger,
		},
		experience: &collectionHandler[domain.Experience, domain.ExperiencePatch, Experience, ExperienceReq]{
			one: "experience", many: "experiences",
			svc: experienceSvc, toVO: newExperience, logger: logger,
		},
		certificates: &collectionHandler[domain.Certificate, domain.CertificatePatch, Certificate, CertificateReq]{
			one: "certificate", many: "certificates",
			svc: certificateSvc, toVO: newCertificate, logger: logger,
		},
		projectSvc:     projectSvc,
		experienceSvc:  experienceSvc,
		certificateSvc: certificateSvc,
		skillsSvc:      skillsSvc,
		logger:         logger,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/admin")
	h.projects.routes(g.Group("/projects"))
	h.experience.routes(g.Group("/experience"))
	h.certificates.routes(g.Group("/certificates"))
	g.GET("/skills", h.Skills)
	g.PUT("/skills", h.ReplaceSkills)
	g.GET("/summary", h.Summary)
}

// Skills 返回按 Skills 结构解析之后的文档，不是文件原文：
// 未知字段会被丢弃，null 的列表会输出为 []
func (h *AdminHandler) Skills(ctx *gin.Context) {
	skills, err := h.skillsSvc.Get(ctx)
	if err != nil {
		h.systemError(ctx, "failed to read skills", err)
		return
	}
	ctx.JSON(http.StatusOK, newSkills(skills))
}

// ReplaceSkills 整个替换，不做合并，也不校验 level
func (h *AdminHandler) ReplaceSkills(ctx *gin.Context) {
	var req Skills
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.systemError(ctx, "failed to update skills", err)
		return
	}
	skills, err := h.skillsSvc.Replace(ctx, req.toDomain())
	if err != nil {
		h.systemError(ctx, "failed to update skills", err)
		return
	}
	ctx.JSON(http.StatusOK, newSkills(skills))
}

// Summary 并发读取四个文档，返回各自的数量
func (h *AdminHandler) Summary(ctx *gin.Context) {
	var (
		eg  errgroup.Group
		res Summary
	)
	eg.Go(func() error {
		projects, err := h.projectSvc.List(ctx)
		if err != nil {
			return err
		}
		res.Projects = len(projects)
		for _, p := range projects {
			if p.Featured {
				res.FeaturedProjects++
			}
		}
		return nil
	})
	eg.Go(func() error {
		experience, err := h.experienceSvc.List(ctx)
		res.Experience = len(experience)
		return err
	})
	eg.Go(func() error {
		certificates, err := h.certificateSvc.List(ctx)
		res.Certificates = len(certificates)
		return err
	})
	eg.Go(func() error {
		skills, err := h.skillsSvc.Get(ctx)
		res.Skills = skills.Count()
		return err
	})
	if err := eg.Wait(); err != nil {
		h.systemError(ctx, "failed to load summary", err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

func (h *AdminHandler) systemError(ctx *gin.Context, msg string, err error) {
	h.logger.Error(msg,
		elog.String("method", ctx.Request.Method),
		elog.String("path", ctx.Request.URL.Path),
		elog.FieldErr(err))
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
