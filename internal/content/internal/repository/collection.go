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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/portfolio/internal/content/internal/domain"
	"github.com/ecodeclub/portfolio/internal/content/internal/repository/dao"
)

type CollectionRepository[T any] interface {
	// List 按文件里的顺序返回
	List(ctx context.Context) ([]T, error)
	// Save 整体覆盖
	Save(ctx context.Context, items []T) error
	Lock() func()
}

type (
	ProjectRepository     = CollectionRepository[domain.Project]
	ExperienceRepository  = CollectionRepository[domain.Experience]
	CertificateRepository = CollectionRepository[domain.Certificate]
)

type collectionRepository[T any, E any] struct {
	dao      dao.DocumentDAO[E]
	toDomain func(E) T
	toEntity func(T) E
}

func NewProjectRepository(d dao.ProjectDAO) ProjectRepository {
	return &collectionRepository[domain.Project, dao.Project]{
		dao:      d,
		toDomain: toProjectDomain,
		toEntity: toProjectEntity,
	}
}

func NewExperienceRepository(d dao.ExperienceDAO) ExperienceRepository {
	return &collectionRepository[domain.Experience, dao.Experience]{
		dao:      d,
		toDomain: toExperienceDomain,
		toEntity: toExperienceEntity,
	}
}

func NewCertificateRepository(d dao.CertificateDAO) CertificateRepository {
	return &collectionRepository[domain.Certificate, dao.Certificate]{
		dao:      d,
		toDomain: toCertificateDomain,
		toEntity: toCertificateEntity,
	}
}

func (r *collectionRepository[T, E]) List(ctx context.Context) ([]T, error) {
	entities, err := r.dao.Find(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src E) T {
		return r.toDomain(src)
	}), nil
}

func (r *collectionRepository[T, E]) Save(ctx context.Context, items []T) error {
	return r.dao.Save(ctx, slice.Map(items, func(idx int, src T) E {
		return r.toEntity(src)
	}))
}

func (r *collectionRepository[T, E]) Lock() func() {
	return r.dao.Lock()
}

func toProjectDomain(p dao.Project) domain.Project {
	return domain.Project{
		Id:                p.Id,
		Title:             p.Title,
		Description:       p.Description,
		DescriptionEn:     p.DescriptionEn,
		Image:             p.Image,
		Technologies:      p.Technologies,
		GithubUrl:         p.GithubUrl,
		LiveUrl:           p.LiveUrl,
		Featured:          p.Featured,
		LongDescription:   p.LongDescription,
		LongDescriptionEn: p.LongDescriptionEn,
		Date:              p.Date,
		DateEn:            p.DateEn,
		Screenshots:       p.Screenshots,
		Challenges:        p.Challenges,
		ChallengesEn:      p.ChallengesEn,
		Solutions:         p.Solutions,
		SolutionsEn:       p.SolutionsEn,
	}
}

func toProjectEntity(p domain.Project) dao.Project {
	return dao.Project{
		Id:                p.Id,
		Title:             p.Title,
		Description:       p.Description,
		DescriptionEn:     p.DescriptionEn,
		Image:             p.Image,
		Technologies:      nonNil(p.Technologies),
		GithubUrl:         p.GithubUrl,
		LiveUrl:           p.LiveUrl,
		Featured:          p.Featured,
		LongDescription:   p.LongDescription,
		LongDescriptionEn: p.LongDescriptionEn,
		Date:              p.Date,
		DateEn:            p.DateEn,
		Screenshots:       p.Screenshots,
		Challenges:        p.Challenges,
		ChallengesEn:      p.ChallengesEn,
		Solutions:         p.Solutions,
		SolutionsEn:       p.SolutionsEn,
	}
}

func toExperienceDomain(e dao.Experience) domain.Experience {
	return domain.Experience{
		Id:            e.Id,
		Title:         e.Title,
		TitleEn:       e.TitleEn,
		Company:       e.Company,
		CompanyEn:     e.CompanyEn,
		Location:      e.Location,
		LocationEn:    e.LocationEn,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		Current:       e.Current,
		Description:   e.Description,
		DescriptionEn: e.DescriptionEn,
	}
}

func toExperienceEntity(e domain.Experience) dao.Experience {
	return dao.Experience{
		Id:            e.Id,
		Title:         e.Title,
		TitleEn:       e.TitleEn,
		Company:       e.Company,
		CompanyEn:     e.CompanyEn,
		Location:      e.Location,
		LocationEn:    e.LocationEn,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		Current:       e.Current,
		Description:   nonNil(e.Description),
		DescriptionEn: nonNil(e.DescriptionEn),
	}
}

func toCertificateDomain(c dao.Certificate) domain.Certificate {
	return domain.Certificate{
		Id:            c.Id,
		Title:         c.Title,
		TitleEn:       c.TitleEn,
		Issuer:        c.Issuer,
		IssuerEn:      c.IssuerEn,
		Date:          c.Date,
		DateEn:        c.DateEn,
		CredentialId:  c.CredentialId,
		CredentialUrl: c.CredentialUrl,
		Image:         c.Image,
		Description:   c.Description,
		DescriptionEn: c.DescriptionEn,
		Ects:          domain.Nullable{Set: c.Ects.Set, Val: c.Ects.Val},
	}
}

func toCertificateEntity(c domain.Certificate) dao.Certificate {
	return dao.Certificate{
		Id:            c.Id,
		Title:         c.Title,
		TitleEn:       c.TitleEn,
		Issuer:        c.Issuer,
		IssuerEn:      c.IssuerEn,
		Date:          c.Date,
		DateEn:        c.DateEn,
		CredentialId:  c.CredentialId,
		CredentialUrl: c.CredentialUrl,
		Image:         c.Image,
		Description:   c.Description,
		DescriptionEn: c.DescriptionEn,
		Ects:          dao.NullString{Set: c.Ects.Set, Val: c.Ects.Val},
	}
}

func nonNil[T any](src []T) []T {
	if src == nil {
		return []T{}
	}
	return src
}
