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

type SkillsRepository interface {
	Get(ctx context.Context) (domain.Skills, error)
	Save(ctx context.Context, skills domain.Skills) error
}

type skillsRepository struct {
	dao dao.SkillsDAO
}

func NewSkillsRepository(d dao.SkillsDAO) SkillsRepository {
	return &skillsRepository{dao: d}
}

func (r *skillsRepository) Get(ctx context.Context) (domain.Skills, error) {
	s, err := r.dao.Get(ctx)
	if err != nil {
		return domain.Skills{}, err
	}
	return domain.Skills{
		Featured:   nonNil(s.Featured),
		Languages:  r.toItemsDomain(s.Languages),
		Frameworks: r.toItemsDomain(s.Frameworks),
		Tools:      r.toItemsDomain(s.Tools),
		Learning:   r.toItemsDomain(s.Learning),
	}, nil
}

func (r *skillsRepository) Save(ctx context.Context, skills domain.Skills) error {
	return r.dao.Save(ctx, dao.Skills{
		Featured:   nonNil(skills.Featured),
		Languages:  r.toItemsEntity(skills.Languages),
		Frameworks: r.toItemsEntity(skills.Frameworks),
		Tools:      r.toItemsEntity(skills.Tools),
		Learning:   r.toItemsEntity(skills.Learning),
	})
}

func (r *skillsRepository) toItemsDomain(items []dao.SkillItem) []domain.SkillItem {
	return slice.Map(items, func(idx int, src dao.SkillItem) domain.SkillItem {
		return domain.SkillItem{Name: src.Name, Level: domain.SkillLevel(src.Level)}
	})
}

func (r *skillsRepository) toItemsEntity(items []domain.SkillItem) []dao.SkillItem {
	return slice.Map(items, func(idx int, src domain.SkillItem) dao.SkillItem {
		return dao.SkillItem{Name: src.Name, Level: string(src.Level)}
	})
}
