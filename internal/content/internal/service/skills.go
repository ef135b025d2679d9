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

package service

import (
	"context"

	"github.com/ecodeclub/portfolio/internal/content/internal/domain"
	"github.com/ecodeclub/portfolio/internal/content/internal/repository"
)

type SkillsService interface {
	Get(ctx context.Context) (domain.Skills, error)
	// Replace 整体替换，不做合并也不校验精选技能是否存在
	Replace(ctx context.Context, skills domain.Skills) (domain.Skills, error)
}

type skillsService struct {
	repo repository.SkillsRepository
}

func NewSkillsService(repo repository.SkillsRepository) SkillsService {
	return &skillsService{repo: repo}
}

func (s *skillsService) Get(ctx context.Context) (domain.Skills, error) {
	return s.repo.Get(ctx)
}

func (s *skillsService) Replace(ctx context.Context, skills domain.Skills) (domain.Skills, error) {
	err := s.repo.Save(ctx, skills)
	if err != nil {
		return domain.Skills{}, err
	}
	return skills, nil
}
